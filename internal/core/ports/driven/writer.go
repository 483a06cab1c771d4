package driven

import (
	"context"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

// DocumentWriter renders text content into an output file.
// Each writer handles specific output kinds; a composite dispatches to the
// first writer that supports the requested kind.
type DocumentWriter interface {
	// SupportsKind reports whether this writer can render the output kind.
	SupportsKind(kind domain.OutputKind) bool

	// Save renders content to the given path in the requested kind.
	Save(ctx context.Context, content, path string, kind domain.OutputKind) error
}
