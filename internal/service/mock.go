package service

import (
	"context"
	"time"

	"github.com/celebrateug/media-api/internal/models"
	"github.com/celebrateug/media-api/internal/transfer"
	"github.com/stretchr/testify/mock"
)

// MockB2Service is a mock implementation of B2Service
type MockB2Service struct {
	mock.Mock
}

func NewMockB2Service() *MockB2Service {
	return &MockB2Service{}
}

func (m *MockB2Service) Upload(ctx context.Context, key string, file []byte, contentType string) error {
	args := m.Called(ctx, key, file, contentType)
	return args.Error(0)
}

func (m *MockB2Service) SignedReadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	args := m.Called(ctx, key, expires)
	return args.String(0), args.Error(1)
}

func (m *MockB2Service) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

// MockMuxService is a mock implementation of MuxService
type MockMuxService struct {
	mock.Mock
}

func NewMockMuxService() *MockMuxService {
	return &MockMuxService{}
}

func (m *MockMuxService) CreateAsset(ctx context.Context, inputURL string) (*transfer.MuxAssetResponse, []byte, error) {
	args := m.Called(ctx, inputURL)
	resp, _ := args.Get(0).(*transfer.MuxAssetResponse)
	body, _ := args.Get(1).([]byte)
	return resp, body, args.Error(2)
}

func (m *MockMuxService) GetAsset(ctx context.Context, assetID string) (*transfer.MuxAsset, error) {
	args := m.Called(ctx, assetID)
	asset, _ := args.Get(0).(*transfer.MuxAsset)
	return asset, args.Error(1)
}

// MockUploadService is a mock implementation of UploadService
type MockUploadService struct {
	mock.Mock
}

func NewMockUploadService() *MockUploadService {
	return &MockUploadService{}
}

func (m *MockUploadService) Upload(ctx context.Context, filename string, file []byte, contentType string) (*transfer.UploadResult, error) {
	args := m.Called(ctx, filename, file, contentType)
	result, _ := args.Get(0).(*transfer.UploadResult)
	return result, args.Error(1)
}

func (m *MockUploadService) Process(ctx context.Context, filename, userID string) ([]byte, error) {
	args := m.Called(ctx, filename, userID)
	body, _ := args.Get(0).([]byte)
	return body, args.Error(1)
}

// MockContentService is a mock implementation of ContentService
type MockContentService struct {
	mock.Mock
}

func NewMockContentService() *MockContentService {
	return &MockContentService{}
}

func (m *MockContentService) ListByDestination(ctx context.Context, destination string) ([]*models.ContentItem, error) {
	args := m.Called(ctx, destination)
	items, _ := args.Get(0).([]*models.ContentItem)
	return items, args.Error(1)
}

func (m *MockContentService) Remove(ctx context.Context, userID, contentID, destination string) error {
	args := m.Called(ctx, userID, contentID, destination)
	return args.Error(0)
}

func (m *MockContentService) TrackView(ctx context.Context, contentID string) error {
	args := m.Called(ctx, contentID)
	return args.Error(0)
}

func (m *MockContentService) BackfillDuration(ctx context.Context, contentID string) (string, error) {
	args := m.Called(ctx, contentID)
	return args.String(0), args.Error(1)
}

// MockInteractionService is a mock implementation of InteractionService
type MockInteractionService struct {
	mock.Mock
}

func NewMockInteractionService() *MockInteractionService {
	return &MockInteractionService{}
}

func (m *MockInteractionService) ToggleLike(ctx context.Context, userID, contentID string, currentlyLiked bool) error {
	args := m.Called(ctx, userID, contentID, currentlyLiked)
	return args.Error(0)
}

func (m *MockInteractionService) ToggleFollow(ctx context.Context, userID, creatorName string, currentlyFollowing bool) error {
	args := m.Called(ctx, userID, creatorName, currentlyFollowing)
	return args.Error(0)
}

func (m *MockInteractionService) ListInteractions(ctx context.Context, userID string) (*transfer.Interactions, error) {
	args := m.Called(ctx, userID)
	interactions, _ := args.Get(0).(*transfer.Interactions)
	return interactions, args.Error(1)
}
