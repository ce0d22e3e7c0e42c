package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads the dataset at path whenever it changes and hands each new
// dataset to fn. fn runs on the watcher goroutine; callers that need the
// result on the frame thread must queue it themselves. Watch blocks until ctx
// is cancelled.
func Watch(ctx context.Context, path string, log *zap.Logger, fn func(*Dataset)) error {
	if log == nil {
		log = zap.NewNop()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	// Editors replace files on save, so watch the directory.
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			ds, err := Load(path)
			if err != nil {
				log.Warn("dataset reload failed", zap.String("path", path), zap.Error(err))
				continue
			}
			log.Info("dataset reloaded", zap.Int("works", len(ds.Works)), zap.Int("categories", len(ds.Categories)))
			fn(ds)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("dataset watcher error", zap.Error(err))
		}
	}
}
