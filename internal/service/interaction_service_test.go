package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/celebrateug/media-api/internal/models"
	"github.com/celebrateug/media-api/internal/repository"
	"github.com/celebrateug/media-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInteractionService() (service.InteractionService, *repository.MockLikeRepository, *repository.MockFollowRepository, *repository.MockContentRepository) {
	lr := repository.NewMockLikeRepository()
	fr := repository.NewMockFollowRepository()
	cr := repository.NewMockContentRepository()
	return service.NewInteractionService(nil, lr, fr, cr), lr, fr, cr
}

func TestInteractionService_ToggleLike_Validation(t *testing.T) {
	ctx := context.Background()
	is, lr, _, cr := newInteractionService()

	require.Error(t, is.ToggleLike(ctx, "", "c1", false))
	require.Error(t, is.ToggleLike(ctx, "u1", "", false))

	lr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	cr.AssertNotCalled(t, "AdjustLikeCount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInteractionService_ToggleFollow_Follow(t *testing.T) {
	ctx := context.Background()
	is, _, fr, _ := newInteractionService()

	fr.On("Create", ctx, &models.Follow{FollowerID: "u1", CreatorName: "Amara N."}).Return(nil)

	require.NoError(t, is.ToggleFollow(ctx, "u1", "Amara N.", false))
	fr.AssertExpectations(t)
	fr.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
}

func TestInteractionService_ToggleFollow_Unfollow(t *testing.T) {
	ctx := context.Background()
	is, _, fr, _ := newInteractionService()

	fr.On("Remove", ctx, "u1", "Amara N.").Return(nil)

	require.NoError(t, is.ToggleFollow(ctx, "u1", "Amara N.", true))
	fr.AssertExpectations(t)
	fr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestInteractionService_ToggleFollow_Validation(t *testing.T) {
	ctx := context.Background()
	is, _, fr, _ := newInteractionService()

	require.Error(t, is.ToggleFollow(ctx, "", "Amara N.", false))
	require.Error(t, is.ToggleFollow(ctx, "u1", "", false))

	fr.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fr.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
}

func TestInteractionService_ToggleFollow_RepositoryError(t *testing.T) {
	ctx := context.Background()
	is, _, fr, _ := newInteractionService()

	fr.On("Create", ctx, mock.Anything).Return(errors.New("connection reset"))

	err := is.ToggleFollow(ctx, "u1", "Amara N.", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error saving follow")
}

func TestInteractionService_ListInteractions(t *testing.T) {
	ctx := context.Background()
	is, lr, fr, _ := newInteractionService()

	lr.On("ListContentIDsByUserID", ctx, "u1").Return([]string{"c1", "c3"}, nil)
	fr.On("ListCreatorsByFollowerID", ctx, "u1").Return([]string{"Kato B."}, nil)

	got, err := is.ListInteractions(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c3"}, got.LikedContentIDs)
	assert.Equal(t, []string{"Kato B."}, got.FollowedCreators)
}

func TestInteractionService_ListInteractions_Validation(t *testing.T) {
	ctx := context.Background()
	is, lr, _, _ := newInteractionService()

	_, err := is.ListInteractions(ctx, "")
	require.Error(t, err)
	lr.AssertNotCalled(t, "ListContentIDsByUserID", mock.Anything, mock.Anything)
}

func TestInteractionService_ListInteractions_LikesError(t *testing.T) {
	ctx := context.Background()
	is, lr, fr, _ := newInteractionService()

	lr.On("ListContentIDsByUserID", ctx, "u1").Return(nil, errors.New("relation missing"))

	_, err := is.ListInteractions(ctx, "u1")
	require.Error(t, err)
	fr.AssertNotCalled(t, "ListCreatorsByFollowerID", mock.Anything, mock.Anything)
}
