package docx

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

// writeTestDocx creates a minimal OOXML package with the given paragraphs.
func writeTestDocx(t *testing.T, paragraphs []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.docx")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)

	body := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	for _, p := range paragraphs {
		body += `<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`
	}
	body += `</w:body></w:document>`

	_, err = w.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

func TestIsSupported(t *testing.T) {
	r := New()
	assert.True(t, r.IsSupported("report.docx"))
	assert.True(t, r.IsSupported("report.DOCX"))
	assert.False(t, r.IsSupported("report.doc"))
}

func TestRead_ExtractsParagraphs(t *testing.T) {
	path := writeTestDocx(t, []string{"First paragraph", "Second paragraph"})

	content, err := New().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph\nSecond paragraph", content)
}

func TestRead_NotAZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.docx")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a zip"), 0600))

	_, err := New().Read(context.Background(), path)
	assert.Error(t, err)
}

func TestRead_MissingDocumentXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	_, err = zw.Create("word/other.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = New().Read(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
