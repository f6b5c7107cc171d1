package watcher

import (
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
)

var _ ports.WatcherFactory = (*Factory)(nil)

// Factory creates the watcher selected by the watch configuration.
type Factory struct {
	hasher ports.Hasher
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(hasher ports.Hasher, logger ports.Logger) *Factory {
	return &Factory{hasher: hasher, logger: logger}
}

// New returns a polling watcher when cfg.Poll is set and a native one
// otherwise.
func (f *Factory) New(cfg domain.WatchConfig) (ports.Watcher, error) {
	digests := NewDigestCache(f.hasher)
	if cfg.Poll {
		return NewPoller(cfg.Interval, cfg.Debounce, digests, f.logger), nil
	}
	w, err := NewWatcher(cfg.Debounce, digests, f.logger)
	if err != nil {
		return nil, err
	}
	return w, nil
}
