// Package docx writes generated documents as minimal OOXML packages.
//
// The package contains only the parts Word requires to open a document:
// content types, the package relationship, and word/document.xml with one
// paragraph per input line.
package docx

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// Writer renders Word output.
type Writer struct{}

// New creates a new DOCX writer.
func New() *Writer {
	return &Writer{}
}

// SupportsKind reports whether this writer can render the output kind.
func (w *Writer) SupportsKind(kind domain.OutputKind) bool {
	return kind == domain.OutputWord
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentFooter = `</w:body></w:document>`

// Save renders content to the given path as a DOCX package.
func (w *Writer) Save(_ context.Context, content, path string, _ domain.OutputKind) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating docx file: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	parts := map[string]string{
		"[Content_Types].xml": contentTypesXML,
		"_rels/.rels":         relsXML,
		"word/document.xml":   buildDocumentXML(content),
	}

	// Deterministic part order keeps the package reproducible.
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		part, err := zw.Create(name)
		if err != nil {
			zw.Close()
			return fmt.Errorf("creating docx part %s: %w", name, err)
		}
		if _, err := part.Write([]byte(parts[name])); err != nil {
			zw.Close()
			return fmt.Errorf("writing docx part %s: %w", name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalising docx package: %w", err)
	}
	return nil
}

// buildDocumentXML renders one <w:p> per input line.
func buildDocumentXML(content string) string {
	var b strings.Builder
	b.WriteString(documentHeader)
	for _, line := range strings.Split(content, "\n") {
		b.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		b.WriteString(escapeXML(line))
		b.WriteString(`</w:t></w:r></w:p>`)
	}
	b.WriteString(documentFooter)
	return b.String()
}

// escapeXML escapes text for embedding in the document part.
func escapeXML(s string) string {
	var b strings.Builder
	// EscapeText cannot fail when writing to a strings.Builder.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
