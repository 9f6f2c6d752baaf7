package mediaview

import (
	"context"

	"github.com/celebrateug/media-api/internal/models"
)

// Backend is everything the Media view asks of the server side. The store
// never talks to the database or the bucket itself; it only issues these
// calls and reconciles their results into local state.
type Backend interface {
	FetchContent(ctx context.Context, destination string) ([]models.ContentItem, error)
	FetchInteractions(ctx context.Context, userID string) (likedIDs []string, followedCreators []string, err error)
	ToggleLike(ctx context.Context, userID, contentID string, currentlyLiked bool) error
	ToggleFollow(ctx context.Context, userID, creatorName string, currentlyFollowing bool) error
	DeleteFromDestination(ctx context.Context, contentID, destination string) error
	TrackView(ctx context.Context, contentID string) error
	RefreshDuration(ctx context.Context, contentID, contentURL string) (string, error)
}

// Navigator redirects a signed-out user to sign-in. Routing itself lives
// outside this package.
type Navigator interface {
	ToSignIn()
}

// Cache is the advisory session snapshot used to avoid a blank first
// render. It is never authoritative; every successful fetch overwrites it
// wholesale.
type Cache interface {
	Load(key string) ([]models.ContentItem, bool)
	Store(key string, items []models.ContentItem)
}
