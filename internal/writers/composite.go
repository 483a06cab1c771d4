package writers

import (
	"context"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/writers/docx"
	"github.com/templar-labs/templar-cli/internal/writers/html"
	"github.com/templar-labs/templar-cli/internal/writers/pdf"
	"github.com/templar-labs/templar-cli/internal/writers/text"
)

// Ensure Composite implements the interface.
var _ driven.DocumentWriter = (*Composite)(nil)

// Composite dispatches to the first registered writer that supports the
// requested output kind.
type Composite struct {
	writers []driven.DocumentWriter
}

// NewComposite creates a composite over the given writers.
func NewComposite(writers ...driven.DocumentWriter) *Composite {
	return &Composite{writers: writers}
}

// Default returns a composite with every built-in writer registered.
func Default() *Composite {
	return NewComposite(
		text.New(),
		html.New(),
		docx.New(),
		pdf.New(),
	)
}

// SupportsKind reports whether any registered writer supports the kind.
func (c *Composite) SupportsKind(kind domain.OutputKind) bool {
	for _, w := range c.writers {
		if w.SupportsKind(kind) {
			return true
		}
	}
	return false
}

// Save renders with the first supporting writer.
// Returns UnsupportedFormatError when no writer supports the kind.
func (c *Composite) Save(ctx context.Context, content, path string, kind domain.OutputKind) error {
	for _, w := range c.writers {
		if w.SupportsKind(kind) {
			return w.Save(ctx, content, path, kind)
		}
	}
	return &domain.UnsupportedFormatError{Extension: string(kind)}
}
