package domain

import (
	"time"

	"github.com/google/uuid"
)

// TemplateType categorises templates for listing and selection.
type TemplateType string

// Known template categories.
const (
	TemplateLegal     TemplateType = "legal"
	TemplateMedical   TemplateType = "medical"
	TemplateBusiness  TemplateType = "business"
	TemplateTechnical TemplateType = "technical"
	TemplateGeneral   TemplateType = "general"
)

// Template is a reusable target structure containing {{placeholder}} tokens.
// Names are unique case-insensitively; lookups by name must resolve to at
// most one template.
type Template struct {
	// ID is the unique identifier.
	ID string

	// Name identifies the template for lookups. Compared case-insensitively.
	Name string

	// Content is the template text with {{placeholder}} tokens.
	Content string

	// Description is a short human-readable summary.
	Description string

	// Type is the template category.
	Type TemplateType

	// CreatedAt is when the template was created.
	CreatedAt time.Time

	// UpdatedAt is when the template was last updated. Nil if never.
	UpdatedAt *time.Time
}

// NewTemplate creates a template with a fresh identity.
func NewTemplate(name, content, description string, typ TemplateType) *Template {
	return &Template{
		ID:          uuid.New().String(),
		Name:        name,
		Content:     content,
		Description: description,
		Type:        typ,
		CreatedAt:   time.Now().UTC(),
	}
}

// Update replaces the template's name, content and description.
func (t *Template) Update(name, content, description string) {
	now := time.Now().UTC()
	t.Name = name
	t.Content = content
	t.Description = description
	t.UpdatedAt = &now
}
