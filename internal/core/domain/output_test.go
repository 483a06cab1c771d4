package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputKindForPath(t *testing.T) {
	tests := []struct {
		path string
		want OutputKind
	}{
		{"report.pdf", OutputPDF},
		{"report.PDF", OutputPDF},
		{"letter.doc", OutputWord},
		{"letter.docx", OutputWord},
		{"letter.rtf", OutputWord},
		{"letter.odt", OutputWord},
		{"page.html", OutputHTML},
		{"page.htm", OutputHTML},
		{"notes.txt", OutputText},
		{"notes.md", OutputMarkdown},
		{"archive.zip", OutputPDF}, // unknown defaults to PDF
		{"noextension", OutputPDF},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputKindForPath(tt.path))
		})
	}
}
