package readers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

func TestDefault_SupportedExtensions(t *testing.T) {
	c := Default()

	for _, path := range []string{"a.txt", "a.md", "b.HTML", "c.docx", "d.pdf", "e.json"} {
		assert.True(t, c.IsSupported(path), path)
	}
	for _, path := range []string{"a.exe", "b.png", "noext"} {
		assert.False(t, c.IsSupported(path), path)
	}
}

func TestComposite_ReadsPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0600))

	content, err := Default().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}

func TestComposite_UnsupportedFormat(t *testing.T) {
	_, err := Default().Read(context.Background(), "image.png")
	require.Error(t, err)

	var ufe *domain.UnsupportedFormatError
	require.ErrorAs(t, err, &ufe)
	assert.Equal(t, ".png", ufe.Extension)
}

func TestComposite_FirstSupportingReaderWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body><p>Hi &amp; bye</p></body></html>"), 0600))

	content, err := Default().Read(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "Hi & bye", content)
}
