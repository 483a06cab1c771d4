package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/core/ports/driving"
)

// Ensure TemplateService implements the interface.
var _ driving.TemplateService = (*TemplateService)(nil)

// TemplateService manages stored templates.
type TemplateService struct {
	store driven.TemplateStore
}

// NewTemplateService creates a new template service.
func NewTemplateService(store driven.TemplateStore) *TemplateService {
	return &TemplateService{store: store}
}

// List returns all templates.
func (s *TemplateService) List(ctx context.Context) ([]domain.Template, error) {
	return s.store.List(ctx)
}

// Get retrieves a template by ID.
func (s *TemplateService) Get(ctx context.Context, id string) (*domain.Template, error) {
	return s.store.Get(ctx, id)
}

// GetByName retrieves a template by case-insensitive name.
func (s *TemplateService) GetByName(ctx context.Context, name string) (*domain.Template, error) {
	return s.store.GetByName(ctx, name)
}

// Add creates a template. Names are unique case-insensitively.
func (s *TemplateService) Add(ctx context.Context, name, content, description string, typ domain.TemplateType) (*domain.Template, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(content) == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.store.GetByName(ctx, name); err == nil {
		return nil, fmt.Errorf("template %q: %w", name, domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	tpl := domain.NewTemplate(name, content, description, typ)
	if err := s.store.Add(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Update replaces an existing template's name, content and description.
func (s *TemplateService) Update(ctx context.Context, id, name, content, description string) (*domain.Template, error) {
	tpl, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// A rename must not collide with another template's name.
	if !strings.EqualFold(tpl.Name, name) {
		if existing, err := s.store.GetByName(ctx, name); err == nil && existing.ID != id {
			return nil, fmt.Errorf("template %q: %w", name, domain.ErrAlreadyExists)
		} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	tpl.Update(name, content, description)
	if err := s.store.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// Delete removes a template by ID.
func (s *TemplateService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}
