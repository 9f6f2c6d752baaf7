package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/celebrateug/media-api/internal/api/handlers"
	"github.com/celebrateug/media-api/internal/service"
	"github.com/celebrateug/media-api/internal/transfer"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInteractionApp(is *service.MockInteractionService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "u1")
		return c.Next()
	})

	h := handlers.NewInteractionHandler(is)
	app.Get("/api/interactions", h.ListInteractions)
	app.Post("/api/likes/toggle", h.ToggleLike)
	app.Post("/api/follows/toggle", h.ToggleFollow)
	return app
}

func TestListInteractions(t *testing.T) {
	is := service.NewMockInteractionService()
	app := newInteractionApp(is)

	is.On("ListInteractions", mock.Anything, "u1").Return(&transfer.Interactions{
		LikedContentIDs:  []string{"c1"},
		FollowedCreators: []string{"Amara N."},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/interactions", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var interactions transfer.Interactions
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&interactions))
	assert.Equal(t, []string{"c1"}, interactions.LikedContentIDs)
	assert.Equal(t, []string{"Amara N."}, interactions.FollowedCreators)
}

func TestToggleLike(t *testing.T) {
	is := service.NewMockInteractionService()
	app := newInteractionApp(is)

	is.On("ToggleLike", mock.Anything, "u1", "c1", true).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/likes/toggle",
		strings.NewReader(`{"content_id":"c1","liked":true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	is.AssertExpectations(t)
}

func TestToggleLike_MissingContentID(t *testing.T) {
	is := service.NewMockInteractionService()
	app := newInteractionApp(is)

	req := httptest.NewRequest(http.MethodPost, "/api/likes/toggle",
		strings.NewReader(`{"liked":true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	is.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLike_ServiceFailure(t *testing.T) {
	is := service.NewMockInteractionService()
	app := newInteractionApp(is)

	is.On("ToggleLike", mock.Anything, "u1", "c1", false).Return(errors.New("tx aborted"))

	req := httptest.NewRequest(http.MethodPost, "/api/likes/toggle",
		strings.NewReader(`{"content_id":"c1","liked":false}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestToggleFollow(t *testing.T) {
	is := service.NewMockInteractionService()
	app := newInteractionApp(is)

	is.On("ToggleFollow", mock.Anything, "u1", "Amara N.", false).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/follows/toggle",
		strings.NewReader(`{"creator_name":"Amara N.","following":false}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	is.AssertExpectations(t)
}

func TestToggleFollow_MissingCreatorName(t *testing.T) {
	is := service.NewMockInteractionService()
	app := newInteractionApp(is)

	req := httptest.NewRequest(http.MethodPost, "/api/follows/toggle",
		strings.NewReader(`{"following":true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	is.AssertNotCalled(t, "ToggleFollow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
