// Package text writes plain text and markdown output files.
package text

import (
	"context"
	"fmt"
	"os"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// Writer renders text and markdown outputs. The content is written as-is;
// normalised content is already shaped by its template.
type Writer struct{}

// New creates a new text writer.
func New() *Writer {
	return &Writer{}
}

// SupportsKind reports whether this writer can render the output kind.
func (w *Writer) SupportsKind(kind domain.OutputKind) bool {
	return kind == domain.OutputText || kind == domain.OutputMarkdown
}

// Save writes content to the given path.
func (w *Writer) Save(_ context.Context, content, path string, _ domain.OutputKind) error {
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing text file: %w", err)
	}
	return nil
}
