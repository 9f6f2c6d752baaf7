package realtime

import (
	"log/slog"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const subscriberBuffer = 16

// Hub fans validated events out to subscribers. Slow subscribers drop
// events rather than block the listener; the view layer treats realtime as
// advisory and re-fetches on demand, so a dropped patch only delays
// reconciliation.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]chan Event
	closed bool
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]chan Event),
	}
}

func (h *Hub) Subscribe() (string, <-chan Event) {
	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		id = "sub"
	}

	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return id, ch
	}

	h.subs[id] = ch
	return id, ch
}

func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subs {
		select {
		case ch <- ev:
		default:
			slog.Info("dropping event for slow subscriber " + id)
		}
	}
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
