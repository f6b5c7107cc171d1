package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	rwatcher "github.com/radovskyb/watcher"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Poller)(nil)

// Poller watches a tree by comparing snapshots at a fixed interval. It works
// where native events are unavailable, such as network and container mounts.
type Poller struct {
	poller   *rwatcher.Watcher
	interval time.Duration
	logger   ports.Logger
	stream   *stream
	stopOnce sync.Once
}

// NewPoller creates a polling watcher.
func NewPoller(interval, window time.Duration, digests *DigestCache, logger ports.Logger) *Poller {
	return &Poller{
		poller:   rwatcher.New(),
		interval: interval,
		logger:   logger,
		stream:   newStream(window, digests),
	}
}

// Start takes the first snapshot of root and begins polling.
func (p *Poller) Start(ctx context.Context, root string) error {
	p.poller.FilterOps(rwatcher.Create, rwatcher.Write, rwatcher.Remove, rwatcher.Rename, rwatcher.Move)

	for name := range shouldSkipDirectories {
		if err := p.poller.Ignore(filepath.Join(root, name)); err != nil {
			return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
		}
	}
	if err := p.poller.AddRecursive(root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", root)
	}
	for path, info := range p.poller.WatchedFiles() {
		if !info.IsDir() {
			p.stream.digests.Prime(path)
		}
	}

	failed := make(chan error, 1)
	started := make(chan struct{})
	go func() {
		if err := p.poller.Start(p.interval); err != nil {
			failed <- err
		}
	}()
	go func() {
		p.poller.Wait()
		close(started)
	}()

	select {
	case <-started:
		go p.pump(ctx)
		return nil
	case err := <-failed:
		p.stream.close()
		return zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
}

// Stop stops polling.
func (p *Poller) Stop() error {
	p.stopOnce.Do(func() {
		p.stream.close()
		p.poller.Close()
	})
	return nil
}

// Events returns an iterator of debounced change batches.
func (p *Poller) Events() iter.Seq[ports.WatchEvent] {
	return p.stream.seq()
}

// pump drains the poller's channels until it closes. The poller blocks on
// unread events, so draining continues while Stop runs.
func (p *Poller) pump(ctx context.Context) {
	stopping := ctx.Done()
	for {
		select {
		case <-stopping:
			stopping = nil
			go func() { _ = p.Stop() }()
		case event := <-p.poller.Event:
			p.stream.add(event.Path)
			if event.OldPath != "" {
				p.stream.add(event.OldPath)
			}
		case err := <-p.poller.Error:
			p.logger.Warn("watcher: " + err.Error())
		case <-p.poller.Closed:
			return
		}
	}
}
