package services

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/core/ports/driving"
	"github.com/templar-labs/templar-cli/internal/logger"
)

// Ensure OutputValidator implements the interface.
var _ driving.OutputValidator = (*OutputValidator)(nil)

// Grading call bounds.
const (
	validateMaxTokens   = 2000
	validateTemperature = 0.3
)

// defaultValidatePrompt is the fallback when no PromptStore is configured.
// Placeholders in the template and generated text are shown in [[escaped]]
// form so the completion service does not treat them as instructions.
const defaultValidatePrompt = `You are a document validation expert. Your task is to validate if a generated document correctly follows a template and contains all the information from the original document.

IMPORTANT: Templates use [[placeholder]] format (shown as double brackets to avoid conflicts). These are NOT function calls.

ORIGINAL DOCUMENT (unformatted):
%s

TEMPLATE USED:
%s

GENERATED DOCUMENT:
%s

Please analyze and provide a JSON response with the following structure:
{
    "isValid": true/false,
    "confidenceScore": 0.0-1.0,
    "summary": "Brief summary of validation results",
    "issues": [
        {
            "type": "Missing|Incorrect|Formatting|Other",
            "field": "field name or section",
            "description": "what is wrong",
            "severity": "Low|Medium|High"
        }
    ],
    "extractedFields": {
        "fieldName": "value extracted from generated document"
    },
    "recommendation": "What should be improved"
}

Consider:
1. All information from the original document should be present
2. The template structure should be followed
3. Placeholders should be properly replaced
4. Formatting should be professional
5. No information should be invented or missing`

// OutputValidator independently grades completed normalisations by
// re-reading the three artifacts and asking the completion service for a
// structured report. Every failure mode degrades to a low-confidence result;
// nothing escapes this boundary as an error.
type OutputValidator struct {
	completion driven.CompletionService
	reader     driven.DocumentReader
	prompts    driven.PromptStore
}

// NewOutputValidator creates an output validator. The prompt store may be
// nil, in which case the embedded default prompt is used.
func NewOutputValidator(completion driven.CompletionService, reader driven.DocumentReader, prompts driven.PromptStore) *OutputValidator {
	return &OutputValidator{
		completion: completion,
		reader:     reader,
		prompts:    prompts,
	}
}

// ValidateOutput grades a single generated output against its original
// document and template.
func (v *OutputValidator) ValidateOutput(ctx context.Context, originalPath, templatePath, generatedPath string) *domain.ValidationResult {
	if v.completion == nil {
		return failureResult("validation failed: " + domain.ErrCompletionUnavailable.Error())
	}

	original, err := v.reader.Read(ctx, originalPath)
	if err != nil {
		return failureResult(fmt.Sprintf("validation failed: %v", err))
	}
	template, err := v.reader.Read(ctx, templatePath)
	if err != nil {
		return failureResult(fmt.Sprintf("validation failed: %v", err))
	}
	generated, err := v.reader.Read(ctx, generatedPath)
	if err != nil {
		return failureResult(fmt.Sprintf("validation failed: %v", err))
	}

	promptTemplate := v.loadPrompt(driven.PromptValidateOutput, defaultValidatePrompt)
	prompt := fmt.Sprintf(promptTemplate,
		original,
		domain.EscapePlaceholders(template),
		domain.EscapePlaceholders(generated),
	)

	raw, err := v.completion.Complete(ctx, prompt, driven.CompletionOptions{
		MaxTokens:   validateMaxTokens,
		Temperature: validateTemperature,
	})
	if err != nil {
		return failureResult(fmt.Sprintf("validation failed: %v", err))
	}

	result := parseValidationResponse(raw)
	result.ValidatedAt = time.Now().UTC()
	result.RawResponse = raw
	logger.Debug("validated %s: valid=%t confidence=%.2f issues=%d",
		generatedPath, result.IsValid, result.ConfidenceScore, len(result.Issues))
	return result
}

// ValidateBatch grades every request concurrently and aggregates the
// results. The result list preserves input order; an empty batch yields
// zero counts and a zero average.
func (v *OutputValidator) ValidateBatch(ctx context.Context, requests []domain.ValidationRequest) *domain.BatchValidationResult {
	results := make([]domain.DocumentValidationResult, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		g.Go(func() error {
			results[i] = domain.DocumentValidationResult{
				DocumentPath: req.OriginalPath,
				TemplateName: filepath.Base(req.TemplatePath),
				Result:       *v.ValidateOutput(gctx, req.OriginalPath, req.TemplatePath, req.GeneratedPath),
			}
			return nil
		})
	}
	// Workers never return errors; ValidateOutput degrades internally.
	_ = g.Wait()

	batch := &domain.BatchValidationResult{
		TotalDocuments: len(results),
		Results:        results,
		CompletedAt:    time.Now().UTC(),
	}

	var confidenceSum float64
	for i := range results {
		if results[i].Result.IsValid {
			batch.ValidDocuments++
		}
		confidenceSum += results[i].Result.ConfidenceScore
	}
	batch.InvalidDocuments = batch.TotalDocuments - batch.ValidDocuments
	if batch.TotalDocuments > 0 {
		batch.AverageConfidenceScore = confidenceSum / float64(batch.TotalDocuments)
	}

	return batch
}

// parseValidationResponse strips optional code fences and decodes the
// grading schema. Field matching is case-insensitive. A parse failure falls
// back to a failure-mode result rather than erroring.
func parseValidationResponse(raw string) *domain.ValidationResult {
	cleaned := stripCodeFence(raw)

	var result domain.ValidationResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return failureResult("Failed to parse validation response")
	}
	return &result
}

// stripCodeFence removes triple-backtick wrapping, with or without a
// language tag.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	start := strings.Index(s, "```")
	if start == -1 {
		return s
	}
	s = s[start+3:]
	if nl := strings.Index(s, "\n"); nl != -1 {
		// Drop a language tag such as "json" on the fence line.
		if firstLine := strings.TrimSpace(s[:nl]); firstLine != "" && !strings.HasPrefix(firstLine, "{") {
			s = s[nl+1:]
		}
	}
	if end := strings.LastIndex(s, "```"); end != -1 {
		s = s[:end]
	}
	return strings.TrimSpace(s)
}

// failureResult builds the fully-populated failure-mode report.
func failureResult(summary string) *domain.ValidationResult {
	return &domain.ValidationResult{
		IsValid:         false,
		ConfidenceScore: 0,
		Summary:         summary,
		Issues: []domain.ValidationIssue{
			{
				Type:        "Error",
				Field:       "System",
				Description: summary,
				Severity:    "High",
			},
		},
		ValidatedAt: time.Now().UTC(),
	}
}

// loadPrompt loads a prompt from the store, falling back to the default if
// unavailable.
func (v *OutputValidator) loadPrompt(name, fallback string) string {
	if v.prompts == nil {
		return fallback
	}
	prompt, err := v.prompts.Load(name)
	if err != nil {
		return fallback
	}
	return prompt
}
