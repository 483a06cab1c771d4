package driving

import (
	"context"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

// OutputValidator independently grades completed normalisations.
// Implementations never return errors past this boundary: every failure
// mode degrades to a structured low-confidence result so batch grading can
// always complete.
type OutputValidator interface {
	// ValidateOutput grades a single generated output against its
	// original document and template.
	ValidateOutput(ctx context.Context, originalPath, templatePath, generatedPath string) *domain.ValidationResult

	// ValidateBatch grades every request concurrently and aggregates the
	// results, preserving input order.
	ValidateBatch(ctx context.Context, requests []domain.ValidationRequest) *domain.BatchValidationResult
}
