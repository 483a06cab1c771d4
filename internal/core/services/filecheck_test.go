package services

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

// writeTempFile creates a file with content under a test temp dir.
func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

func TestFileValidator_ValidatePath(t *testing.T) {
	v := NewFileValidator()

	t.Run("empty path", func(t *testing.T) {
		res := v.ValidatePath("")
		assert.False(t, res.OK)
		assert.Equal(t, domain.CheckEmptyPath, res.Code)
	})

	t.Run("blank path", func(t *testing.T) {
		res := v.ValidatePath("   ")
		assert.False(t, res.OK)
		assert.Equal(t, domain.CheckEmptyPath, res.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		res := v.ValidatePath(filepath.Join(t.TempDir(), "nope.txt"))
		assert.False(t, res.OK)
		assert.Equal(t, domain.CheckNotFound, res.Code)
	})

	t.Run("directory", func(t *testing.T) {
		res := v.ValidatePath(t.TempDir())
		assert.False(t, res.OK)
		assert.Equal(t, domain.CheckInvalidPath, res.Code)
	})

	t.Run("existing file", func(t *testing.T) {
		path := writeTempFile(t, "doc.txt", []byte("content"))
		assert.True(t, v.ValidatePath(path).OK)
	})
}

func TestFileValidator_ValidateSize(t *testing.T) {
	v := NewFileValidator()

	t.Run("within cap", func(t *testing.T) {
		path := writeTempFile(t, "small.txt", []byte("hello"))
		assert.True(t, v.ValidateSize(path, 1024).OK)
	})

	t.Run("too large with MB precision in message", func(t *testing.T) {
		path := writeTempFile(t, "big.txt", make([]byte, 2*1024*1024))
		res := v.ValidateSize(path, 1024*1024)
		assert.False(t, res.OK)
		assert.Equal(t, domain.CheckTooLarge, res.Code)
		assert.Contains(t, res.Reason, "2.00MB")
		assert.Contains(t, res.Reason, "1.00MB")
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeTempFile(t, "empty.txt", nil)
		res := v.ValidateSize(path, 1024)
		assert.False(t, res.OK)
		assert.Equal(t, domain.CheckEmptyFile, res.Code)
	})
}

func TestFileValidator_ValidateExtension(t *testing.T) {
	v := NewFileValidator()

	t.Run("dangerous extension always rejected", func(t *testing.T) {
		for _, name := range []string{"run.exe", "lib.dll", "job.bat", "job.cmd", "run.sh", "run.ps1", "macro.vbs", "code.js", "app.jar"} {
			res := v.ValidateExtension(name, nil)
			assert.False(t, res.OK, name)
			assert.Equal(t, domain.CheckDangerousExtension, res.Code, name)
		}
	})

	t.Run("dangerous beats allow-list", func(t *testing.T) {
		res := v.ValidateExtension("run.EXE", []string{".exe"})
		assert.False(t, res.OK)
		assert.Equal(t, domain.CheckDangerousExtension, res.Code)
	})

	t.Run("allow-list enforced case-insensitively", func(t *testing.T) {
		assert.True(t, v.ValidateExtension("doc.TXT", []string{".txt", ".pdf"}).OK)

		res := v.ValidateExtension("doc.csv", []string{".txt", ".pdf"})
		assert.False(t, res.OK)
		assert.Equal(t, domain.CheckExtensionNotAllowed, res.Code)
	})

	t.Run("empty allow-list accepts anything safe", func(t *testing.T) {
		assert.True(t, v.ValidateExtension("doc.anything", nil).OK)
	})
}

func TestFileValidator_ValidateDocument(t *testing.T) {
	v := NewFileValidator()
	opts := ValidationOptions{
		MaxFileSizeBytes:  1024 * 1024,
		AllowedExtensions: []string{".txt", ".md"},
		CheckContent:      true,
	}

	t.Run("valid document", func(t *testing.T) {
		path := writeTempFile(t, "doc.txt", []byte("plain text content"))
		summary := v.ValidateDocument(path, opts)

		assert.True(t, summary.IsValid)
		assert.Equal(t, int64(18), summary.FileSizeBytes)
		assert.Equal(t, ".txt", summary.FileExtension)
		assert.Empty(t, summary.Warnings)
	})

	t.Run("short-circuits on path failure", func(t *testing.T) {
		summary := v.ValidateDocument("", opts)
		assert.False(t, summary.IsValid)
		assert.Equal(t, domain.CheckEmptyPath, summary.Code)
	})

	t.Run("binary content in text file is a warning not a failure", func(t *testing.T) {
		path := writeTempFile(t, "odd.txt", []byte("text\x00with null"))
		summary := v.ValidateDocument(path, opts)

		assert.True(t, summary.IsValid)
		require.Len(t, summary.Warnings, 1)
		assert.Contains(t, summary.Warnings[0], "binary content")
	})

	t.Run("null bytes beyond the sniff window are ignored", func(t *testing.T) {
		content := append(bytes.Repeat([]byte{'a'}, 1500), 0)
		path := writeTempFile(t, "long.txt", content)

		summary := v.ValidateDocument(path, opts)
		assert.True(t, summary.IsValid)
		assert.Empty(t, summary.Warnings)
	})

	t.Run("disallowed extension fails before sniffing", func(t *testing.T) {
		path := writeTempFile(t, "doc.csv", []byte("a,b,c"))
		summary := v.ValidateDocument(path, opts)

		assert.False(t, summary.IsValid)
		assert.Equal(t, domain.CheckExtensionNotAllowed, summary.Code)
	})
}
