package realtime

import (
	"log"
	"log/slog"
	"time"

	"github.com/lib/pq"
)

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Listener bridges Postgres LISTEN/NOTIFY onto the hub.
type Listener struct {
	pgl  *pq.Listener
	hub  *Hub
	done chan struct{}
}

func NewListener(postgresURI string, hub *Hub) (*Listener, error) {
	pgl := pq.NewListener(postgresURI, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Info(err.Error())
		}
	})

	if err := pgl.Listen(ChannelContent); err != nil {
		pgl.Close()
		return nil, err
	}
	if err := pgl.Listen(ChannelLikes); err != nil {
		pgl.Close()
		return nil, err
	}

	return &Listener{
		pgl:  pgl,
		hub:  hub,
		done: make(chan struct{}),
	}, nil
}

// Run blocks, forwarding notifications until Close is called. Intended to
// run on its own goroutine.
func (l *Listener) Run() {
	for {
		select {
		case n := <-l.pgl.Notify:
			if n == nil {
				// connection reset; pq re-establishes LISTEN itself
				continue
			}

			ev, err := ParseNotification(n.Channel, n.Extra)
			if err != nil {
				slog.Info(err.Error())
				continue
			}
			l.hub.Publish(ev)

		case <-time.After(pingInterval):
			if err := l.pgl.Ping(); err != nil {
				log.Printf("Realtime listener ping failed: %v", err)
			}

		case <-l.done:
			return
		}
	}
}

func (l *Listener) Close() {
	close(l.done)
	if err := l.pgl.Close(); err != nil {
		slog.Info(err.Error())
	}
	l.hub.Close()
}
