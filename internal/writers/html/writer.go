// Package html writes generated documents as standalone HTML files.
package html

import (
	"context"
	"fmt"
	"html"
	"os"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.DocumentWriter = (*Writer)(nil)

// Writer renders HTML output. Content is escaped and wrapped in a <pre>
// block so the template's whitespace shape survives rendering.
type Writer struct{}

// New creates a new HTML writer.
func New() *Writer {
	return &Writer{}
}

// SupportsKind reports whether this writer can render the output kind.
func (w *Writer) SupportsKind(kind domain.OutputKind) bool {
	return kind == domain.OutputHTML
}

const page = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Generated Document</title>
<style>
body { font-family: Georgia, serif; margin: 2em auto; max-width: 50em; }
pre { white-space: pre-wrap; font-family: inherit; }
</style>
</head>
<body>
<pre>%s</pre>
</body>
</html>
`

// Save renders content to the given path as HTML.
func (w *Writer) Save(_ context.Context, content, path string, _ domain.OutputKind) error {
	rendered := fmt.Sprintf(page, html.EscapeString(content))
	if err := os.WriteFile(path, []byte(rendered), 0600); err != nil {
		return fmt.Errorf("writing html file: %w", err)
	}
	return nil
}
