package templatedir

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/templar-labs/templar-cli/internal/core/ports/driven"
	"github.com/templar-labs/templar-cli/internal/logger"
)

// Watcher keeps the template store in sync with a directory of template
// files. Creates and writes upsert the corresponding template; removes and
// renames delete it.
type Watcher struct {
	dir     string
	store   driven.TemplateStore
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher over dir. Call Run to start processing
// events and Close to release the underlying notifier.
func NewWatcher(dir string, store driven.TemplateStore) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching template directory: %w", err)
	}

	return &Watcher{
		dir:     dir,
		store:   store,
		watcher: fw,
	}, nil
}

// Run processes filesystem events until the context is cancelled or the
// watcher is closed. It blocks; run it in a goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("template watcher error: %v", err)
		}
	}
}

// Close stops the underlying notifier.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) handleEvent(ctx context.Context, event fsnotify.Event) {
	if !templateExtensions[strings.ToLower(filepath.Ext(event.Name))] {
		return
	}

	switch {
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		if err := upsertFile(ctx, event.Name, w.store); err != nil {
			logger.Warn("template watcher: upsert %s: %v", filepath.Base(event.Name), err)
			return
		}
		logger.Debug("template watcher: upserted %s", filepath.Base(event.Name))

	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		name := templateName(event.Name)
		tpl, err := w.store.GetByName(ctx, name)
		if err != nil {
			return
		}
		if err := w.store.Delete(ctx, tpl.ID); err != nil {
			logger.Warn("template watcher: delete %s: %v", name, err)
			return
		}
		logger.Debug("template watcher: removed %s", name)
	}
}
