// Package pdf writes generated documents as PDF files using go-pdf/fpdf.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// Writer renders PDF output, one wrapped cell per input line.
type Writer struct{}

// New creates a new PDF writer.
func New() *Writer {
	return &Writer{}
}

// SupportsKind reports whether this writer can render the output kind.
func (w *Writer) SupportsKind(kind domain.OutputKind) bool {
	return kind == domain.OutputPDF
}

const (
	fontFamily = "Helvetica"
	fontSize   = 11
	lineHeight = 5.5
)

// Save renders content to the given path as a PDF.
func (w *Writer) Save(_ context.Context, content, path string, _ domain.OutputKind) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetFont(fontFamily, "", fontSize)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	// Core fonts are cp1252; translate so accented text survives.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			doc.Ln(lineHeight)
			continue
		}
		doc.MultiCell(0, lineHeight, tr(line), "", "L", false)
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf file: %w", err)
	}
	return nil
}
