package readers

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/readers/docx"
	"github.com/templar-labs/templar-cli/internal/readers/html"
	"github.com/templar-labs/templar-cli/internal/readers/pdf"
	"github.com/templar-labs/templar-cli/internal/readers/plaintext"
)

// Ensure Composite implements the interface.
var _ driven.DocumentReader = (*Composite)(nil)

// Composite dispatches to the first registered reader that supports the
// file. Registration order is the precedence order.
type Composite struct {
	readers []driven.DocumentReader
}

// NewComposite creates a composite over the given readers.
func NewComposite(readers ...driven.DocumentReader) *Composite {
	return &Composite{readers: readers}
}

// Default returns a composite with every built-in reader registered.
func Default() *Composite {
	return NewComposite(
		plaintext.New(),
		html.New(),
		docx.New(),
		pdf.New(),
	)
}

// IsSupported reports whether any registered reader supports the file.
func (c *Composite) IsSupported(path string) bool {
	for _, r := range c.readers {
		if r.IsSupported(path) {
			return true
		}
	}
	return false
}

// Read extracts text with the first supporting reader.
// Returns UnsupportedFormatError when no reader matches.
func (c *Composite) Read(ctx context.Context, path string) (string, error) {
	for _, r := range c.readers {
		if r.IsSupported(path) {
			return r.Read(ctx, path)
		}
	}
	return "", &domain.UnsupportedFormatError{Extension: strings.ToLower(filepath.Ext(path))}
}
