package ports

import (
	"context"
	"iter"

	"go.trai.ch/assetpipe/internal/core/domain"
)

//go:generate mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks

// WatchEvent is a debounced batch of file system changes.
type WatchEvent struct {
	// Paths are the absolute paths that changed, without duplicates.
	Paths []string
}

// Watcher defines the interface for watching file system changes.
type Watcher interface {
	// Start begins watching the given root directory recursively.
	// It returns an error if the watcher fails to start.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of debounced change batches.
	// The iterator ends when the watcher stops.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates watchers for a watch configuration.
type WatcherFactory interface {
	New(cfg domain.WatchConfig) (Watcher, error)
}
