package driven

import "context"

// DocumentReader extracts text content from files on disk.
// Each reader handles specific file extensions; a composite dispatches to
// the first reader whose IsSupported predicate matches, in registration
// order.
type DocumentReader interface {
	// IsSupported reports whether this reader can handle the file.
	IsSupported(path string) bool

	// Read extracts the text content of the file.
	Read(ctx context.Context, path string) (string, error)
}
