package domain

import (
	"time"

	"github.com/google/uuid"
)

// DocumentStatus is the lifecycle state of a Document.
type DocumentStatus string

// Document lifecycle states. Normalized and Failed are terminal;
// re-normalisation creates a new Document rather than reusing one.
const (
	StatusPending    DocumentStatus = "pending"
	StatusNormalized DocumentStatus = "normalized"
	StatusFailed     DocumentStatus = "failed"
)

// Document represents one normalisation unit: an input file's text content
// and, once reconciliation succeeds, its template-shaped counterpart.
type Document struct {
	// ID is the unique identifier, assigned at creation and immutable.
	ID string

	// FileName is the base name of the input file.
	FileName string

	// OriginalContent is the text extracted from the input file.
	OriginalContent string

	// NormalizedContent is the template-shaped output.
	// Empty until the document transitions to StatusNormalized.
	NormalizedContent string

	// CreatedAt is when the document was created by the pipeline.
	CreatedAt time.Time

	// NormalizedAt is when normalisation completed. Nil until then.
	NormalizedAt *time.Time

	// Status tracks the lifecycle state.
	Status DocumentStatus
}

// NewDocument creates a pending document from a file name and its content.
func NewDocument(fileName, originalContent string) *Document {
	return &Document{
		ID:              uuid.New().String(),
		FileName:        fileName,
		OriginalContent: originalContent,
		CreatedAt:       time.Now().UTC(),
		Status:          StatusPending,
	}
}

// SetNormalizedContent transitions the document to StatusNormalized,
// setting content and timestamp atomically. Only valid from StatusPending.
func (d *Document) SetNormalizedContent(content string) error {
	if d.Status != StatusPending {
		return ErrInvalidTransition
	}
	now := time.Now().UTC()
	d.NormalizedContent = content
	d.NormalizedAt = &now
	d.Status = StatusNormalized
	return nil
}

// MarkFailed transitions the document to StatusFailed. Normalised content
// and timestamp are left unset. Only valid from StatusPending.
func (d *Document) MarkFailed() error {
	if d.Status != StatusPending {
		return ErrInvalidTransition
	}
	d.Status = StatusFailed
	return nil
}
