// Package templatedir loads template files from a directory into the
// template store and optionally keeps them in sync with fsnotify.
//
// Files named *.txt or *.md become templates; the file name without
// extension is the template name. Store entries always track the latest
// file content (last writer wins).
package templatedir

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/templar-labs/templar-cli/internal/core/domain"
	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/logger"
)

// templateExtensions are the file types treated as templates.
var templateExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

// LoadDir upserts every template file in dir into the store.
// Returns the number of templates loaded. A missing directory is not an
// error; it simply loads nothing.
func LoadDir(ctx context.Context, dir string, store driven.TemplateStore) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading template directory: %w", err)
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !templateExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}

		if err := upsertFile(ctx, filepath.Join(dir, entry.Name()), store); err != nil {
			logger.Warn("skipping template file %s: %v", entry.Name(), err)
			continue
		}
		loaded++
	}

	return loaded, nil
}

// upsertFile reads one template file and adds or updates its store entry.
func upsertFile(ctx context.Context, path string, store driven.TemplateStore) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading template file: %w", err)
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("template file is empty")
	}

	name := templateName(path)
	existing, err := store.GetByName(ctx, name)
	if err == nil {
		existing.Update(existing.Name, content, existing.Description)
		return store.Update(ctx, existing)
	}

	tpl := domain.NewTemplate(name, content, "loaded from "+filepath.Base(path), domain.TemplateGeneral)
	return store.Add(ctx, tpl)
}

// templateName derives the template name from the file path.
func templateName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
