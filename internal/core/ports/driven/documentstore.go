package driven

import (
	"context"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

// DocumentStore persists normalised documents.
// The store is the system of record; it never mutates records independently.
// Save is an upsert with last-writer-wins semantics.
type DocumentStore interface {
	// Save stores or updates a document.
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)
}
