package mediaview

import (
	"context"
	"log/slog"
	"sync"

	"github.com/celebrateug/media-api/internal/models"
	"github.com/celebrateug/media-api/internal/realtime"
)

const durationSentinel = "0:00"

// DeleteTarget is the pending delete-confirmation state.
type DeleteTarget struct {
	ContentID string
	Title     string
}

// Store holds the Media view's local state: the content list, the
// signed-in user's like/follow sets, and the tab/category/query filter.
// Mutations are optimistic: the local flip happens synchronously before the
// backend call, and a failed call restores the captured snapshots in a
// single critical section. Realtime events and imperative fetches are two
// unsynchronized writers over the same list; last writer wins, which is the
// accepted eventual-consistency model here.
type Store struct {
	backend     Backend
	nav         Navigator
	cache       Cache
	hub         *realtime.Hub
	destination string
	userID      string

	mu           sync.Mutex
	items        []models.ContentItem
	likes        map[string]struct{}
	follows      map[string]struct{}
	activeTab    string
	category     string
	query        string
	loading      bool
	deleteTarget *DeleteTarget
	deleting     bool
	playing      *models.ContentItem

	subID  string
	closed bool
}

// NewStore builds a store for one view session. userID is empty for a
// signed-out visitor; the realtime subscription is only established for
// signed-in users and is torn down by Close.
func NewStore(backend Backend, nav Navigator, cache Cache, hub *realtime.Hub, destination, userID string) *Store {
	return &Store{
		backend:     backend,
		nav:         nav,
		cache:       cache,
		hub:         hub,
		destination: destination,
		userID:      userID,
		likes:       make(map[string]struct{}),
		follows:     make(map[string]struct{}),
		activeTab:   TabStream,
		category:    CategoryAll,
	}
}

// Open mounts the view: the advisory cache is shown immediately when
// present, a fresh fetch runs regardless, and signed-in users get their
// interaction sets and the realtime subscription.
func (s *Store) Open(ctx context.Context) {
	hasCache := false
	if cached, ok := s.cache.Load(s.cacheKey()); ok {
		s.mu.Lock()
		s.items = cached
		s.mu.Unlock()
		hasCache = true
	}

	if !hasCache {
		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()
	}

	s.Refresh(ctx)

	if s.userID != "" {
		s.RefreshInteractions(ctx)
		s.subscribe()
	}
}

func (s *Store) cacheKey() string {
	return s.destination + "_content_cache"
}

// Refresh replaces the list and the advisory cache from a fresh fetch.
// Items still carrying the duration sentinel get a detached backfill
// request each; completions patch the single matching item in place, in no
// particular order, and failures are logged and otherwise ignored.
func (s *Store) Refresh(ctx context.Context) {
	items, err := s.backend.FetchContent(ctx, s.destination)
	if err != nil {
		slog.Error("Error fetching content: " + err.Error())
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()

	s.cache.Store(s.cacheKey(), items)

	for _, item := range items {
		if !item.IsVideoLike() {
			continue
		}
		if item.Duration != "" && item.Duration != durationSentinel {
			continue
		}

		go func(id, url string) {
			duration, err := s.backend.RefreshDuration(context.Background(), id, url)
			if err != nil {
				slog.Error("Failed to auto-update duration for " + id + ": " + err.Error())
				return
			}
			if duration == "" {
				return
			}
			s.patchDuration(id, duration)
		}(item.ID, item.ContentURL)
	}
}

func (s *Store) patchDuration(contentID, duration string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == contentID {
			s.items[i].Duration = duration
			return
		}
	}
}

// RefreshInteractions replaces the like and follow sets wholesale.
func (s *Store) RefreshInteractions(ctx context.Context) {
	if s.userID == "" {
		return
	}

	likedIDs, followedCreators, err := s.backend.FetchInteractions(ctx, s.userID)
	if err != nil {
		slog.Error("Error fetching interactions: " + err.Error())
		return
	}

	likes := make(map[string]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		likes[id] = struct{}{}
	}
	follows := make(map[string]struct{}, len(followedCreators))
	for _, name := range followedCreators {
		follows[name] = struct{}{}
	}

	s.mu.Lock()
	s.likes = likes
	s.follows = follows
	s.mu.Unlock()
}

func (s *Store) subscribe() {
	id, ch := s.hub.Subscribe()

	s.mu.Lock()
	s.subID = id
	s.mu.Unlock()

	go func() {
		for ev := range ch {
			switch ev := ev.(type) {
			case realtime.ContentUpdated:
				s.applyContentUpdate(ev)
			case realtime.LikeChanged:
				s.RefreshInteractions(context.Background())
			}
		}
	}()
}

func (s *Store) applyContentUpdate(ev realtime.ContentUpdated) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == ev.ID {
			s.items[i].LikeCount = ev.LikeCount
			return
		}
	}
}

// ToggleLike flips the like relation for a content item. Signed-out users
// are redirected to sign-in with no mutation. The flip and the counter
// adjustment land locally before the backend call; on failure both captured
// snapshots are restored together.
func (s *Store) ToggleLike(ctx context.Context, contentID string) error {
	if s.userID == "" {
		s.nav.ToSignIn()
		return nil
	}

	s.mu.Lock()

	_, currentlyLiked := s.likes[contentID]
	previousLikes := cloneSet(s.likes)
	previousItems := cloneItems(s.items)

	if currentlyLiked {
		delete(s.likes, contentID)
	} else {
		s.likes[contentID] = struct{}{}
	}
	for i := range s.items {
		if s.items[i].ID == contentID {
			if currentlyLiked {
				s.items[i].LikeCount--
			} else {
				s.items[i].LikeCount++
			}
			break
		}
	}

	s.mu.Unlock()

	err := s.backend.ToggleLike(ctx, s.userID, contentID, currentlyLiked)
	if err != nil {
		slog.Error("Error toggling like: " + err.Error())
		s.mu.Lock()
		s.likes = previousLikes
		s.items = previousItems
		s.mu.Unlock()
		return err
	}

	return nil
}

// ToggleFollow mirrors ToggleLike for the follow set; there is no counter
// side effect.
func (s *Store) ToggleFollow(ctx context.Context, creatorName string) error {
	if s.userID == "" {
		s.nav.ToSignIn()
		return nil
	}

	s.mu.Lock()

	_, currentlyFollowing := s.follows[creatorName]
	previousFollows := cloneSet(s.follows)

	if currentlyFollowing {
		delete(s.follows, creatorName)
	} else {
		s.follows[creatorName] = struct{}{}
	}

	s.mu.Unlock()

	err := s.backend.ToggleFollow(ctx, s.userID, creatorName, currentlyFollowing)
	if err != nil {
		slog.Error("Error toggling follow: " + err.Error())
		s.mu.Lock()
		s.follows = previousFollows
		s.mu.Unlock()
		return err
	}

	return nil
}

// RequestDelete opens the confirmation dialog for an item.
func (s *Store) RequestDelete(contentID, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteTarget = &DeleteTarget{ContentID: contentID, Title: title}
}

// ConfirmDelete runs the confirmed removal. Success drops the item locally
// and closes the dialog; failure leaves both untouched so the user can
// retry.
func (s *Store) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	target := s.deleteTarget
	if target == nil {
		s.mu.Unlock()
		return nil
	}
	s.deleting = true
	s.mu.Unlock()

	err := s.backend.DeleteFromDestination(ctx, target.ContentID, s.destination)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleting = false

	if err != nil {
		slog.Error("Failed to delete from " + s.destination + ": " + err.Error())
		return err
	}

	kept := s.items[:0:0]
	for _, item := range s.items {
		if item.ID != target.ContentID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.deleteTarget = nil

	return nil
}

func (s *Store) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteTarget = nil
}

// Play opens the playback surface and fires the view-tracking call without
// awaiting it; a tracking failure never blocks or alters playback.
func (s *Store) Play(contentID string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == contentID {
			item := s.items[i]
			s.playing = &item
			break
		}
	}
	s.mu.Unlock()

	go func() {
		if err := s.backend.TrackView(context.Background(), contentID); err != nil {
			slog.Error("Failed to track view for " + contentID + ": " + err.Error())
		}
	}()
}

func (s *Store) ClosePlayer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = nil
}

// SetTab switches the active tab, resets the category to "all", and keeps
// the search query.
func (s *Store) SetTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
	s.category = CategoryAll
}

func (s *Store) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.category = category
}

func (s *Store) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
}

// VisibleItems applies the tab/category/query filter to the current list.
func (s *Store) VisibleItems() []models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Filter(s.items, s.activeTab, s.category, s.query)
}

func (s *Store) Items() []models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneItems(s.items)
}

func (s *Store) IsLiked(contentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.likes[contentID]
	return ok
}

func (s *Store) IsFollowing(creatorName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.follows[creatorName]
	return ok
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) ActiveTab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeTab
}

func (s *Store) SelectedCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.category
}

func (s *Store) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

func (s *Store) PendingDelete() *DeleteTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteTarget
}

func (s *Store) Deleting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleting
}

func (s *Store) Playing() *models.ContentItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Close tears down the realtime subscription. Safe to call more than once;
// in-flight fetch completions after Close are harmless no-op writes.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subID := s.subID
	s.mu.Unlock()

	if subID != "" {
		s.hub.Unsubscribe(subID)
	}
}

func cloneSet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}

func cloneItems(in []models.ContentItem) []models.ContentItem {
	out := make([]models.ContentItem, len(in))
	copy(out, in)
	return out
}
