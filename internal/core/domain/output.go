package domain

import (
	"path/filepath"
	"strings"
)

// OutputKind is the rendering format for generated documents.
type OutputKind string

// Supported output formats.
const (
	OutputPDF      OutputKind = "pdf"
	OutputWord     OutputKind = "word"
	OutputHTML     OutputKind = "html"
	OutputText     OutputKind = "text"
	OutputMarkdown OutputKind = "markdown"
)

// OutputKindForPath determines the output kind from a path's extension.
// Unknown extensions default to PDF.
func OutputKindForPath(path string) OutputKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return OutputPDF
	case ".doc", ".docx", ".rtf", ".odt":
		return OutputWord
	case ".html", ".htm":
		return OutputHTML
	case ".txt":
		return OutputText
	case ".md":
		return OutputMarkdown
	default:
		return OutputPDF
	}
}
