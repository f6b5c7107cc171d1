package app

import (
	"slices"
	"sync"
)

// changeQueue merges changed paths until the watch loop takes them.
type changeQueue struct {
	mu      sync.Mutex
	pending []string
	ready   chan struct{}
}

func newChangeQueue() *changeQueue {
	return &changeQueue{ready: make(chan struct{}, 1)}
}

func (q *changeQueue) push(paths []string) {
	if len(paths) == 0 {
		return
	}

	q.mu.Lock()
	for _, p := range paths {
		if !slices.Contains(q.pending, p) {
			q.pending = append(q.pending, p)
		}
	}
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// take returns every path pushed since the last take.
func (q *changeQueue) take() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	paths := q.pending
	q.pending = nil
	return paths
}
