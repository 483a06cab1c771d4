// Package pdf reads PDF files using ledongthuc/pdf text extraction.
package pdf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader handles PDF documents.
type Reader struct{}

// New creates a new PDF reader.
func New() *Reader {
	return &Reader{}
}

// IsSupported reports whether this reader can handle the file.
func (r *Reader) IsSupported(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".pdf"
}

// Read extracts plain text from every page of the PDF.
func (r *Reader) Read(_ context.Context, path string) (string, error) {
	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	total := doc.NumPage()
	for page := 1; page <= total; page++ {
		p := doc.Page(page)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", page, err)
		}
		builder.WriteString(content)
		builder.WriteString("\n")
	}

	return strings.TrimSpace(builder.String()), nil
}
