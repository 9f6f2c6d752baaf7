package realtime_test

import (
	"testing"

	"github.com/celebrateug/media-api/internal/realtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscribers(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	_, ch1 := hub.Subscribe()
	_, ch2 := hub.Subscribe()

	hub.Publish(realtime.ContentUpdated{ID: "c1", LikeCount: 5})

	for _, ch := range []<-chan realtime.Event{ch1, ch2} {
		ev := <-ch
		content, ok := ev.(realtime.ContentUpdated)
		require.True(t, ok)
		assert.Equal(t, "c1", content.ID)
		assert.Equal(t, 5, content.LikeCount)
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open)

	// a second unsubscribe for the same id is a no-op
	hub.Unsubscribe(id)
}

func TestHub_PublishSkipsUnsubscribed(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	id, _ := hub.Subscribe()
	_, kept := hub.Subscribe()
	hub.Unsubscribe(id)

	hub.Publish(realtime.LikeChanged{UserID: "u1", ContentID: "c1"})

	ev := <-kept
	_, ok := ev.(realtime.LikeChanged)
	assert.True(t, ok)
}

func TestHub_SlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := realtime.NewHub()
	defer hub.Close()

	_, ch := hub.Subscribe()

	// fill the buffer and then some; Publish must never block
	for i := 0; i < 40; i++ {
		hub.Publish(realtime.ContentUpdated{ID: "c1", LikeCount: i})
	}

	assert.Equal(t, 16, len(ch))
}

func TestHub_CloseIsIdempotent(t *testing.T) {
	hub := realtime.NewHub()

	_, ch := hub.Subscribe()
	hub.Close()
	hub.Close()

	_, open := <-ch
	assert.False(t, open)

	// subscribing after close yields a closed channel
	_, late := hub.Subscribe()
	_, open = <-late
	assert.False(t, open)

	// publishing after close is a no-op
	hub.Publish(realtime.ContentUpdated{ID: "c1"})
}
