package storage

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/eugenenazirov/landing/internal/content"
)

// Watcher reloads an overrides file into a store whenever it changes on disk.
type Watcher struct {
	path    string
	store   Storage
	logger  *zap.Logger
	watcher *fsnotify.Watcher
}

// LoadFile reads path and replaces the store contents with it.
func LoadFile(path string, store Storage) error {
	ov, err := content.LoadOverrides(path)
	if err != nil {
		return err
	}
	store.Replace(ov)
	return nil
}

// NewWatcher starts watching the directory holding path. Editors usually
// replace files instead of writing them in place, so the directory is watched
// rather than the file itself.
func NewWatcher(path string, store Storage, logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:    abs,
		store:   store,
		logger:  logger,
		watcher: fw,
	}, nil
}

// Run processes file events until ctx is cancelled or the watcher is closed.
// A file that fails to parse is logged and the previous overrides are kept.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := LoadFile(w.path, w.store); err != nil {
				w.logger.Warn("overrides reload failed, keeping previous content",
					zap.String("path", w.path),
					zap.Error(err),
				)
				continue
			}
			w.logger.Info("overrides reloaded", zap.String("path", w.path))
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("overrides watcher error", zap.Error(err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
