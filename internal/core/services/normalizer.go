package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/core/ports/driving"
	"github.com/templar-labs/templar-cli/internal/logger"
)

// Ensure Normalizer implements the interface.
var _ driving.NormalizationService = (*Normalizer)(nil)

// Generation bounds for reconciliation and extraction calls.
// Low temperature keeps the output close to the template text.
const (
	normalizeMaxTokens   = 4000
	normalizeTemperature = 0.3
	summarizeMaxTokens   = 1000
)

// defaultNormalizePrompt is the fallback when no PromptStore is configured.
// The template is embedded in escaped [[placeholder]] form so the completion
// service cannot mistake tokens for executable instructions.
const defaultNormalizePrompt = `You are a document normalization expert. Your task is to transform the given document content to match the structure and format of the provided template.

IMPORTANT: The template contains placeholders in the format [[placeholder_name]]. You must:
1. Replace these placeholders with actual information extracted from the document
2. If information is not available in the document, use [TO BE PROVIDED] instead
3. When outputting the final document, convert [[placeholder]] back to the original format

TEMPLATE STRUCTURE:
%s

ORIGINAL DOCUMENT CONTENT:
%s

INSTRUCTIONS:
1. Analyze the template structure carefully
2. Extract relevant information from the original document
3. Fill in all [[placeholders]] with appropriate information from the document
4. Maintain the exact structure and formatting of the template
5. Ensure all sections from the template are present
6. Keep the language professional and consistent
7. Output ONLY the filled template, no explanations

Please provide the normalized document following the template structure exactly.`

// defaultSummarizePrompt is the fallback when no PromptStore is configured.
const defaultSummarizePrompt = `Extract and summarize the key information from the following document:

%s

Provide a structured summary including:
- Document type
- Main topic/purpose
- Key sections
- Important dates (if any)
- Parties involved (if applicable)
- Main points or requirements`

// Normalizer reconciles document content with a template through the
// completion service.
type Normalizer struct {
	completion driven.CompletionService
	prompts    driven.PromptStore
}

// NewNormalizer creates a normalizer. The prompt store may be nil, in which
// case embedded default prompts are used.
func NewNormalizer(completion driven.CompletionService, prompts driven.PromptStore) *Normalizer {
	return &Normalizer{
		completion: completion,
		prompts:    prompts,
	}
}

// NormalizeWithTemplate produces template-shaped content from the original.
// Placeholders are escaped before the template is embedded in the prompt,
// and the output is post-checked against the unescaped template: any marker
// surviving in either form is returned as a warning rather than an error.
func (n *Normalizer) NormalizeWithTemplate(ctx context.Context, content, templateContent string) (string, []string, error) {
	if n.completion == nil {
		return "", nil, domain.ErrCompletionUnavailable
	}

	escaped := domain.EscapePlaceholders(templateContent)
	promptTemplate := n.loadPrompt(driven.PromptNormalizeDocument, defaultNormalizePrompt)
	prompt := fmt.Sprintf(promptTemplate, escaped, content)

	logger.Debug("normalizing content (%d chars) against template (%d placeholders)",
		len(content), len(domain.ExtractPlaceholders(templateContent)))

	result, err := n.completion.Complete(ctx, prompt, driven.CompletionOptions{
		MaxTokens:   normalizeMaxTokens,
		Temperature: normalizeTemperature,
	})
	if err != nil {
		return "", nil, &domain.NormalizationError{Message: "completion call failed", Err: err}
	}

	result = strings.TrimSpace(result)
	if result == "" {
		return "", nil, &domain.NormalizationError{Message: "completion service returned empty output"}
	}

	var warnings []string
	for _, name := range domain.SurvivingPlaceholders(templateContent, result) {
		warnings = append(warnings, fmt.Sprintf("placeholder {{%s}} was not replaced", name))
	}

	return result, warnings, nil
}

// ExtractDocumentInfo produces a structured summary of a document's key
// information.
func (n *Normalizer) ExtractDocumentInfo(ctx context.Context, content string) (string, error) {
	if n.completion == nil {
		return "", domain.ErrCompletionUnavailable
	}

	promptTemplate := n.loadPrompt(driven.PromptSummarizeDocument, defaultSummarizePrompt)
	prompt := fmt.Sprintf(promptTemplate, content)

	result, err := n.completion.Complete(ctx, prompt, driven.CompletionOptions{
		MaxTokens:   summarizeMaxTokens,
		Temperature: normalizeTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("extract document info: %w", err)
	}

	return strings.TrimSpace(result), nil
}

// loadPrompt loads a prompt from the store, falling back to the default if
// unavailable.
func (n *Normalizer) loadPrompt(name, fallback string) string {
	if n.prompts == nil {
		return fallback
	}
	prompt, err := n.prompts.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
