package watcher

import (
	"iter"
	"sync"
	"time"

	"go.trai.ch/assetpipe/internal/core/ports"
)

const eventChannelBuffer = 100

// stream is the shared back half of both watchers: raw paths go in,
// debounced batches of changed content come out.
type stream struct {
	debouncer *Debouncer
	digests   *DigestCache
	events    chan ports.WatchEvent
	done      chan struct{}
	closeOnce sync.Once
}

func newStream(window time.Duration, digests *DigestCache) *stream {
	s := &stream{
		digests: digests,
		events:  make(chan ports.WatchEvent, eventChannelBuffer),
		done:    make(chan struct{}),
	}
	s.debouncer = NewDebouncer(window, s.emit)
	return s
}

func (s *stream) add(path string) {
	select {
	case <-s.done:
	default:
		s.debouncer.Add(path)
	}
}

func (s *stream) emit(paths []string) {
	changed := s.digests.Changed(paths)
	if len(changed) == 0 {
		return
	}
	select {
	case s.events <- ports.WatchEvent{Paths: changed}:
	case <-s.done:
	}
}

func (s *stream) close() {
	s.closeOnce.Do(func() {
		s.debouncer.Stop()
		close(s.done)
	})
}

func (s *stream) seq() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for {
			select {
			case <-s.done:
				return
			case event := <-s.events:
				if !yield(event) {
					return
				}
			}
		}
	}
}
