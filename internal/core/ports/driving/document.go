package driving

import (
	"context"
	"time"
)

// NormalizeRequest describes one normalisation run.
type NormalizeRequest struct {
	// DocumentPath is the input file to normalise.
	DocumentPath string

	// TemplateName identifies the template: an existing file path takes
	// precedence over a stored template name.
	TemplateName string

	// OutputPath, when set, renders the normalised content to a file.
	// The output kind is determined from the path's extension.
	OutputPath string
}

// DocumentInfo is the projection of a document returned to callers.
type DocumentInfo struct {
	ID                string
	FileName          string
	OriginalContent   string
	NormalizedContent string
	CreatedAt         time.Time
	NormalizedAt      *time.Time
	Status            string
}

// DocumentService orchestrates the normalisation pipeline and document
// lookups.
type DocumentService interface {
	// Normalize runs the full pipeline: validate, read, resolve template,
	// reconcile, optionally write output, persist.
	Normalize(ctx context.Context, req NormalizeRequest) (*DocumentInfo, error)

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*DocumentInfo, error)

	// List returns all documents, newest first.
	List(ctx context.Context) ([]DocumentInfo, error)

	// Summarize extracts key information from a stored document's
	// original content.
	Summarize(ctx context.Context, id string) (string, error)
}
