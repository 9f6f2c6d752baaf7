package mediaview

import (
	"sync"

	"github.com/celebrateug/media-api/internal/models"
)

// SessionCache is the in-process implementation of Cache: one snapshot per
// key, replaced wholesale, copied on both store and load so callers can
// never mutate the cached slice in place.
type SessionCache struct {
	mu        sync.Mutex
	snapshots map[string][]models.ContentItem
}

func NewSessionCache() *SessionCache {
	return &SessionCache{
		snapshots: make(map[string][]models.ContentItem),
	}
}

func (c *SessionCache) Load(key string) ([]models.ContentItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot, ok := c.snapshots[key]
	if !ok {
		return nil, false
	}

	items := make([]models.ContentItem, len(snapshot))
	copy(items, snapshot)
	return items, true
}

func (c *SessionCache) Store(key string, items []models.ContentItem) {
	snapshot := make([]models.ContentItem, len(items))
	copy(snapshot, items)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[key] = snapshot
}
