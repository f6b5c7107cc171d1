package devserver

import (
	"sync"

	"go.trai.ch/assetpipe/internal/core/ports"
)

const subscriberBuffer = 16

// hub fans events out to every connected browser, whatever its transport.
type hub struct {
	mu      sync.Mutex
	nextID  int
	subs    map[int]chan []byte
	closed  bool
	metrics ports.Metrics
}

func newHub(metrics ports.Metrics) *hub {
	return &hub{
		subs:    make(map[int]chan []byte),
		metrics: metrics,
	}
}

// subscribe registers a client. The channel is closed when the client
// unsubscribes or the hub closes; ok is false once the hub is closed.
func (h *hub) subscribe() (id int, ch <-chan []byte, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return 0, nil, false
	}

	c := make(chan []byte, subscriberBuffer)
	id = h.nextID
	h.nextID++
	h.subs[id] = c
	h.metrics.ClientConnected()
	return id, c, true
}

func (h *hub) unsubscribe(id int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(c)
		h.metrics.ClientDisconnected()
	}
}

// broadcast queues msg for every client. A client whose queue is full misses
// the message rather than stalling the others.
func (h *hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, c := range h.subs {
		select {
		case c <- msg:
		default:
		}
	}
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// close disconnects every client and refuses new ones.
func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, c := range h.subs {
		delete(h.subs, id)
		close(c)
		h.metrics.ClientDisconnected()
	}
}
