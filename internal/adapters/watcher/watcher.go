package watcher

import (
	"context"
	"io/fs"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// shouldSkipDirectories are directories that should not be watched.
var shouldSkipDirectories = map[string]bool{
	".git":         true,
	".jj":          true,
	"node_modules": true,
}

// Watcher implements file system watching using fsnotify.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	stream    *stream
	stopOnce  sync.Once
	stopErr   error
}

// NewWatcher creates a new native file system watcher.
func NewWatcher(window time.Duration, digests *DigestCache, logger ports.Logger) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	return &Watcher{
		fsWatcher: watcher,
		logger:    logger,
		stream:    newStream(window, digests),
	}, nil
}

// Start begins watching the given root directory recursively.
func (w *Watcher) Start(ctx context.Context, root string) error {
	var addErr error
	w.walk(root, func(path string, d fs.DirEntry) bool {
		if !d.IsDir() {
			w.stream.digests.Prime(path)
			return true
		}
		if err := w.fsWatcher.Add(path); err != nil {
			addErr = zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
			return false
		}
		return true
	})
	if addErr != nil {
		return addErr
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.stopOnce.Do(func() {
		w.stream.close()
		w.stopErr = w.fsWatcher.Close()
	})
	return w.stopErr
}

// Events returns an iterator of debounced change batches.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return w.stream.seq()
}

// walk visits every entry under root, skipping ignored directories.
// Unreadable entries are skipped. Returning false from fn ends the walk.
func (w *Watcher) walk(root string, fn func(path string, d fs.DirEntry) bool) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // skip problematic entries
		}
		if d.IsDir() && path != root && shouldSkipDirectories[d.Name()] {
			return fs.SkipDir
		}
		if !fn(path, d) {
			return filepath.SkipAll
		}
		return nil
	})
}

// processEvents feeds fsnotify events into the debouncer until ctx ends or
// the watcher is closed.
func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			_ = w.Stop()
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op == fsnotify.Chmod {
				continue
			}

			w.stream.add(event.Name)

			// Files written into a new directory before it was added produce
			// no events of their own.
			if event.Has(fsnotify.Create) {
				w.addDirectory(event.Name)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: " + err.Error())
		}
	}
}

// addDirectory watches a newly created directory and reports the files it
// already holds.
func (w *Watcher) addDirectory(path string) {
	if shouldSkipDirectories[filepath.Base(path)] {
		return
	}
	w.walk(path, func(p string, d fs.DirEntry) bool {
		if !d.IsDir() {
			if p != path {
				w.stream.add(p)
			}
			return true
		}
		_ = w.fsWatcher.Add(p)
		return true
	})
}
