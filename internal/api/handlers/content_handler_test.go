package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/celebrateug/media-api/internal/api/handlers"
	"github.com/celebrateug/media-api/internal/models"
	"github.com/celebrateug/media-api/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentApp(cs *service.MockContentService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", "u1")
		return c.Next()
	})

	h := handlers.NewContentHandler(cs, nil)
	app.Get("/api/content", h.ListContent)
	app.Post("/api/content/remove", h.RemoveContent)
	app.Post("/api/content/view", h.TrackView)
	app.Post("/api/content/duration", h.RefreshDuration)
	return app
}

func TestListContent(t *testing.T) {
	cs := service.NewMockContentService()
	app := newContentApp(cs)

	cs.On("ListByDestination", mock.Anything, "media").Return([]*models.ContentItem{
		{ID: "c1", Title: "Sunrise Sessions", Type: models.ContentTypeMusicVideo},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []*models.ContentItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].ID)
}

func TestListContent_CustomDestination(t *testing.T) {
	cs := service.NewMockContentService()
	app := newContentApp(cs)

	cs.On("ListByDestination", mock.Anything, "spotlight").Return([]*models.ContentItem{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/content?destination=spotlight", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cs.AssertExpectations(t)
}

func TestListContent_ServiceFailure(t *testing.T) {
	cs := service.NewMockContentService()
	app := newContentApp(cs)

	cs.On("ListByDestination", mock.Anything, "media").Return(nil, errors.New("db down"))

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRemoveContent(t *testing.T) {
	cs := service.NewMockContentService()
	app := newContentApp(cs)

	cs.On("Remove", mock.Anything, "u1", "c1", "media").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/content/remove",
		strings.NewReader(`{"content_id":"c1","destination":"media"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cs.AssertExpectations(t)
}

func TestRemoveContent_NotOwner(t *testing.T) {
	cs := service.NewMockContentService()
	app := newContentApp(cs)

	cs.On("Remove", mock.Anything, "u1", "c1", "media").Return(errors.New("content doesn't exist"))

	req := httptest.NewRequest(http.MethodPost, "/api/content/remove",
		strings.NewReader(`{"content_id":"c1","destination":"media"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestTrackView(t *testing.T) {
	cs := service.NewMockContentService()
	app := newContentApp(cs)

	cs.On("TrackView", mock.Anything, "c1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/content/view",
		strings.NewReader(`{"content_id":"c1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cs.AssertExpectations(t)
}

func TestRefreshDuration_MissingContentID(t *testing.T) {
	cs := service.NewMockContentService()
	app := newContentApp(cs)

	req := httptest.NewRequest(http.MethodPost, "/api/content/duration",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
