package driving

import "context"

// NormalizationService reconciles document content with a template by
// delegating to the completion service.
type NormalizationService interface {
	// NormalizeWithTemplate produces template-shaped content from the
	// original. The returned warnings list any placeholder markers that
	// survived in the output; a surviving marker is a soft failure, not an
	// error, because the completion service's output is not syntactically
	// guaranteed.
	NormalizeWithTemplate(ctx context.Context, content, templateContent string) (string, []string, error)

	// ExtractDocumentInfo produces a structured summary of a document's
	// key information.
	ExtractDocumentInfo(ctx context.Context, content string) (string, error)
}
