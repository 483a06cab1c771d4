package driving

import (
	"context"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

// TemplateService manages stored templates.
type TemplateService interface {
	// List returns all templates.
	List(ctx context.Context) ([]domain.Template, error)

	// Get retrieves a template by ID.
	Get(ctx context.Context, id string) (*domain.Template, error)

	// GetByName retrieves a template by case-insensitive name.
	GetByName(ctx context.Context, name string) (*domain.Template, error)

	// Add creates a template. The name must not collide with an existing
	// template, compared case-insensitively.
	Add(ctx context.Context, name, content, description string, typ domain.TemplateType) (*domain.Template, error)

	// Update replaces an existing template's name, content and description.
	Update(ctx context.Context, id, name, content, description string) (*domain.Template, error)

	// Delete removes a template by ID.
	Delete(ctx context.Context, id string) error
}
