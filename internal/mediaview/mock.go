package mediaview

import (
	"context"

	"github.com/celebrateug/media-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockBackend is a mock implementation of Backend
type MockBackend struct {
	mock.Mock
}

func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

func (m *MockBackend) FetchContent(ctx context.Context, destination string) ([]models.ContentItem, error) {
	args := m.Called(ctx, destination)
	items, _ := args.Get(0).([]models.ContentItem)
	return items, args.Error(1)
}

func (m *MockBackend) FetchInteractions(ctx context.Context, userID string) ([]string, []string, error) {
	args := m.Called(ctx, userID)
	likes, _ := args.Get(0).([]string)
	follows, _ := args.Get(1).([]string)
	return likes, follows, args.Error(2)
}

func (m *MockBackend) ToggleLike(ctx context.Context, userID, contentID string, currentlyLiked bool) error {
	args := m.Called(ctx, userID, contentID, currentlyLiked)
	return args.Error(0)
}

func (m *MockBackend) ToggleFollow(ctx context.Context, userID, creatorName string, currentlyFollowing bool) error {
	args := m.Called(ctx, userID, creatorName, currentlyFollowing)
	return args.Error(0)
}

func (m *MockBackend) DeleteFromDestination(ctx context.Context, contentID, destination string) error {
	args := m.Called(ctx, contentID, destination)
	return args.Error(0)
}

func (m *MockBackend) TrackView(ctx context.Context, contentID string) error {
	args := m.Called(ctx, contentID)
	return args.Error(0)
}

func (m *MockBackend) RefreshDuration(ctx context.Context, contentID, contentURL string) (string, error) {
	args := m.Called(ctx, contentID, contentURL)
	return args.String(0), args.Error(1)
}

// MockNavigator is a mock implementation of Navigator
type MockNavigator struct {
	mock.Mock
}

func NewMockNavigator() *MockNavigator {
	return &MockNavigator{}
}

func (m *MockNavigator) ToSignIn() {
	m.Called()
}
