package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// Ensure TemplateStore implements the interface.
var _ driven.TemplateStore = (*TemplateStore)(nil)

// TemplateStore is an in-memory implementation of driven.TemplateStore.
// Names resolve case-insensitively.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]domain.Template
}

// NewTemplateStore creates a new in-memory template store seeded with the
// built-in default templates.
func NewTemplateStore() *TemplateStore {
	s := &TemplateStore{
		templates: make(map[string]domain.Template),
	}
	for _, tpl := range defaultTemplates() {
		s.templates[tpl.ID] = *tpl
	}
	return s
}

// NewEmptyTemplateStore creates an in-memory template store without seeds.
// Useful for testing.
func NewEmptyTemplateStore() *TemplateStore {
	return &TemplateStore{
		templates: make(map[string]domain.Template),
	}
}

// Get retrieves a template by ID.
func (s *TemplateStore) Get(_ context.Context, id string) (*domain.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tpl, ok := s.templates[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &tpl, nil
}

// GetByName retrieves a template by case-insensitive name.
func (s *TemplateStore) GetByName(_ context.Context, name string) (*domain.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id := range s.templates {
		tpl := s.templates[id]
		if strings.EqualFold(tpl.Name, name) {
			return &tpl, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all stored templates.
func (s *TemplateStore) List(_ context.Context) ([]domain.Template, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Template, 0, len(s.templates))
	for id := range s.templates {
		result = append(result, s.templates[id])
	}
	return result, nil
}

// Add stores a new template.
func (s *TemplateStore) Add(_ context.Context, tpl *domain.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[tpl.ID] = *tpl
	return nil
}

// Update replaces a stored template. Last writer wins.
func (s *TemplateStore) Update(_ context.Context, tpl *domain.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[tpl.ID]; !ok {
		return domain.ErrNotFound
	}
	s.templates[tpl.ID] = *tpl
	return nil
}

// Delete removes a template by ID.
func (s *TemplateStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.templates[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.templates, id)
	return nil
}

// defaultTemplates are the built-in templates seeded at startup.
func defaultTemplates() []*domain.Template {
	return []*domain.Template{
		domain.NewTemplate(
			"legal-contract",
			`CONTRACT AGREEMENT

This Agreement is entered into on {{date}} between:

PARTY A: {{party_a}}
Address: {{party_a_address}}
Contact: {{party_a_contact}}

PARTY B: {{party_b}}
Address: {{party_b_address}}
Contact: {{party_b_contact}}

TERMS AND CONDITIONS:
{{terms}}

PAYMENT TERMS:
{{payment_details}}

DURATION:
This agreement shall commence on {{start_date}} and terminate on {{end_date}}.

SIGNATURES:
Party A: _________________ Date: _______
Party B: _________________ Date: _______`,
			"Standard legal contract template",
			domain.TemplateLegal,
		),
		domain.NewTemplate(
			"business-proposal",
			`BUSINESS PROPOSAL

Prepared for: {{client_name}}
Prepared by: {{company_name}}
Date: {{date}}

EXECUTIVE SUMMARY:
{{summary}}

PROJECT OVERVIEW:
{{project_description}}

OBJECTIVES:
{{objectives}}

DELIVERABLES:
{{deliverables}}

TIMELINE:
{{timeline}}

BUDGET:
{{budget}}

NEXT STEPS:
{{next_steps}}`,
			"Business proposal template",
			domain.TemplateBusiness,
		),
		domain.NewTemplate(
			"meeting-minutes",
			`MEETING MINUTES

Date: {{date}}
Attendees: {{attendees}}
Chair: {{chair}}

AGENDA:
{{agenda}}

DISCUSSION:
{{discussion}}

DECISIONS:
{{decisions}}

ACTION ITEMS:
{{action_items}}

NEXT MEETING:
{{next_meeting}}`,
			"Meeting minutes template",
			domain.TemplateGeneral,
		),
		domain.NewTemplate(
			"invoice",
			`INVOICE

Invoice Number: {{invoice_number}}
Date: {{date}}

Billed To: {{client_name}}
Address: {{client_address}}

From: {{company_name}}

ITEMS:
{{line_items}}

Subtotal: {{subtotal}}
Tax: {{tax}}
TOTAL: {{total}}

Payment Due: {{due_date}}
Payment Terms: {{payment_terms}}`,
			"Invoice template",
			domain.TemplateBusiness,
		),
	}
}
