package driven

// Prompt names understood by the PromptStore.
const (
	// PromptNormalizeDocument reshapes document content into a template.
	// Takes two %s arguments: escaped template, original content.
	PromptNormalizeDocument = "normalize_document"

	// PromptValidateOutput grades a generated document against its
	// template and original. Takes three %s arguments: original,
	// escaped template, escaped generated output.
	PromptValidateOutput = "validate_output"

	// PromptSummarizeDocument extracts key information from a document.
	// Takes one %s argument: document content.
	PromptSummarizeDocument = "summarize_document"
)

// PromptStore loads prompt templates by name.
// Implementations may read user-editable files with embedded fallbacks.
type PromptStore interface {
	// Load returns the prompt template for a name.
	Load(name string) (string, error)
}
