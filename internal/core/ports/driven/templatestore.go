package driven

import (
	"context"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

// TemplateStore persists reusable templates.
// Names are unique case-insensitively; GetByName resolves at most one
// template regardless of the casing of its argument. Update has
// last-writer-wins semantics.
type TemplateStore interface {
	// Get retrieves a template by ID.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Template, error)

	// GetByName retrieves a template by case-insensitive name.
	// Returns domain.ErrNotFound if absent.
	GetByName(ctx context.Context, name string) (*domain.Template, error)

	// List returns all stored templates.
	List(ctx context.Context) ([]domain.Template, error)

	// Add stores a new template.
	Add(ctx context.Context, tpl *domain.Template) error

	// Update replaces a stored template.
	// Returns domain.ErrNotFound if absent.
	Update(ctx context.Context, tpl *domain.Template) error

	// Delete removes a template by ID.
	// Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, id string) error
}
