// Package plaintext reads plain text files verbatim.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader handles plain text formats.
type Reader struct{}

// New creates a new plain text reader.
func New() *Reader {
	return &Reader{}
}

// supportedExtensions are the formats read without any transformation.
var supportedExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".log":  true,
	".md":   true,
	".csv":  true,
	".json": true,
	".xml":  true,
}

// IsSupported reports whether this reader can handle the file.
func (r *Reader) IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// Read returns the file content as-is.
func (r *Reader) Read(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), nil
}
