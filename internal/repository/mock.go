package repository

import (
	"context"
	"database/sql"

	"github.com/celebrateug/media-api/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockContentRepository is a mock implementation of ContentRepository
type MockContentRepository struct {
	mock.Mock
}

func NewMockContentRepository() *MockContentRepository {
	return &MockContentRepository{}
}

func (m *MockContentRepository) ListByDestination(ctx context.Context, destination string) ([]*models.ContentItem, error) {
	args := m.Called(ctx, destination)
	items, _ := args.Get(0).([]*models.ContentItem)
	return items, args.Error(1)
}

func (m *MockContentRepository) GetByID(ctx context.Context, id string) (*models.ContentItem, bool, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*models.ContentItem)
	return item, args.Bool(1), args.Error(2)
}

func (m *MockContentRepository) CheckByUserID(ctx context.Context, id, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContentRepository) AdjustLikeCount(ctx context.Context, tx *sql.Tx, id string, delta int) (int, error) {
	args := m.Called(ctx, tx, id, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockContentRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) UpdateDuration(ctx context.Context, id, duration string) error {
	args := m.Called(ctx, id, duration)
	return args.Error(0)
}

func (m *MockContentRepository) RemoveFromDestination(ctx context.Context, id, destination string) error {
	args := m.Called(ctx, id, destination)
	return args.Error(0)
}

// MockLikeRepository is a mock implementation of LikeRepository
type MockLikeRepository struct {
	mock.Mock
}

func NewMockLikeRepository() *MockLikeRepository {
	return &MockLikeRepository{}
}

func (m *MockLikeRepository) Create(ctx context.Context, tx *sql.Tx, like *models.Like) error {
	args := m.Called(ctx, tx, like)
	return args.Error(0)
}

func (m *MockLikeRepository) Remove(ctx context.Context, tx *sql.Tx, userID, contentID string) error {
	args := m.Called(ctx, tx, userID, contentID)
	return args.Error(0)
}

func (m *MockLikeRepository) ListContentIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

// MockFollowRepository is a mock implementation of FollowRepository
type MockFollowRepository struct {
	mock.Mock
}

func NewMockFollowRepository() *MockFollowRepository {
	return &MockFollowRepository{}
}

func (m *MockFollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

func (m *MockFollowRepository) Remove(ctx context.Context, followerID, creatorName string) error {
	args := m.Called(ctx, followerID, creatorName)
	return args.Error(0)
}

func (m *MockFollowRepository) ListCreatorsByFollowerID(ctx context.Context, followerID string) ([]string, error) {
	args := m.Called(ctx, followerID)
	creators, _ := args.Get(0).([]string)
	return creators, args.Error(1)
}

// MockVideoUploadRepository is a mock implementation of VideoUploadRepository
type MockVideoUploadRepository struct {
	mock.Mock
}

func NewMockVideoUploadRepository() *MockVideoUploadRepository {
	return &MockVideoUploadRepository{}
}

func (m *MockVideoUploadRepository) Create(ctx context.Context, vu *models.VideoUpload) (int64, error) {
	args := m.Called(ctx, vu)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoUploadRepository) GetByFilename(ctx context.Context, filename string) (*models.VideoUpload, bool, error) {
	args := m.Called(ctx, filename)
	vu, _ := args.Get(0).(*models.VideoUpload)
	return vu, args.Bool(1), args.Error(2)
}

func (m *MockVideoUploadRepository) ListByStatus(ctx context.Context, status string) ([]*models.VideoUpload, error) {
	args := m.Called(ctx, status)
	uploads, _ := args.Get(0).([]*models.VideoUpload)
	return uploads, args.Error(1)
}

func (m *MockVideoUploadRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
