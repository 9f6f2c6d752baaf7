package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/celebrateug/media-api/configs"
	"github.com/celebrateug/media-api/internal/service"
	"github.com/celebrateug/media-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func muxTestConfig(baseURL string) config.Config {
	return config.Config{
		Mux: config.Mux{
			TokenID:     "token-id",
			TokenSecret: "token-secret",
			BaseURL:     baseURL,
		},
	}
}

func TestMuxService_CreateAsset(t *testing.T) {
	var gotAuth string
	var gotBody transfer.MuxAssetRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/video/v1/assets", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":"asset_123","status":"preparing"}}`))
	}))
	defer srv.Close()

	muxService := service.NewMuxService(muxTestConfig(srv.URL))

	resp, raw, err := muxService.CreateAsset(context.Background(), "https://bucket/signed")

	require.NoError(t, err)
	assert.Equal(t, "asset_123", resp.Data.ID)
	assert.JSONEq(t, `{"data":{"id":"asset_123","status":"preparing"}}`, string(raw))

	// basic auth is token id and secret, playback policy is public
	assert.Equal(t, "Basic dG9rZW4taWQ6dG9rZW4tc2VjcmV0", gotAuth)
	assert.Equal(t, "https://bucket/signed", gotBody.Input.URL)
	assert.Equal(t, []string{"public"}, gotBody.PlaybackPolicy)
}

func TestMuxService_CreateAsset_ErrorPayloadStillParses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"type":"unauthorized","messages":["bad credentials"]}}`))
	}))
	defer srv.Close()

	muxService := service.NewMuxService(muxTestConfig(srv.URL))

	resp, _, err := muxService.CreateAsset(context.Background(), "https://bucket/signed")

	// the caller decides what a missing asset id means
	require.NoError(t, err)
	assert.Empty(t, resp.Data.ID)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "unauthorized", resp.Error.Type)
}

func TestMuxService_GetAsset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/video/v1/assets/asset_123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":"asset_123","status":"ready","duration":192.5}}`))
	}))
	defer srv.Close()

	muxService := service.NewMuxService(muxTestConfig(srv.URL))

	asset, err := muxService.GetAsset(context.Background(), "asset_123")

	require.NoError(t, err)
	assert.Equal(t, "ready", asset.Status)
	assert.Equal(t, 192.5, asset.Duration)
}

func TestMuxService_GetAsset_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	muxService := service.NewMuxService(muxTestConfig(srv.URL))

	_, err := muxService.GetAsset(context.Background(), "asset_missing")
	require.Error(t, err)
}

func TestMuxService_GetAsset_EmptyID(t *testing.T) {
	muxService := service.NewMuxService(muxTestConfig("http://localhost:0"))

	_, err := muxService.GetAsset(context.Background(), "")
	require.Error(t, err)
}
