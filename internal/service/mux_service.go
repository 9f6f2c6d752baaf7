package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	cfg "github.com/celebrateug/media-api/configs"
	"github.com/celebrateug/media-api/internal/transfer"
)

// MuxService is the transcoding-provider client. Asset creation hands the
// provider a signed read URL; the provider pulls the file and processes it
// asynchronously.
type MuxService interface {
	CreateAsset(ctx context.Context, inputURL string) (*transfer.MuxAssetResponse, []byte, error)
	GetAsset(ctx context.Context, assetID string) (*transfer.MuxAsset, error)
}

type muxService struct {
	cfg    cfg.Config
	client *http.Client
}

func NewMuxService(c cfg.Config) MuxService {
	return &muxService{
		cfg: c,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (m *muxService) CreateAsset(ctx context.Context, inputURL string) (*transfer.MuxAssetResponse, []byte, error) {
	reqBody := transfer.MuxAssetRequest{
		Input:          transfer.MuxInput{URL: inputURL},
		PlaybackPolicy: []string{"public"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		slog.Info(err.Error())
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Mux.BaseURL+"/video/v1/assets", bytes.NewReader(payload))
	if err != nil {
		slog.Info(err.Error())
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+m.basicAuth())

	resp, err := m.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, nil, fmt.Errorf("failed to reach transcoding provider: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Info(err.Error())
		return nil, nil, err
	}

	var assetResp transfer.MuxAssetResponse
	if err := json.Unmarshal(body, &assetResp); err != nil {
		slog.Info(err.Error())
		return nil, nil, fmt.Errorf("invalid provider response: %w", err)
	}

	return &assetResp, body, nil
}

func (m *muxService) GetAsset(ctx context.Context, assetID string) (*transfer.MuxAsset, error) {
	if assetID == "" {
		err := errors.New("asset id is empty")
		slog.Info(err.Error())
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.cfg.Mux.BaseURL+"/video/v1/assets/"+assetID, nil)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	req.Header.Set("Authorization", "Basic "+m.basicAuth())

	resp, err := m.client.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("provider returned status %d for asset %s", resp.StatusCode, assetID)
		slog.Info(err.Error())
		return nil, err
	}

	var assetResp transfer.MuxAssetResponse
	if err := json.NewDecoder(resp.Body).Decode(&assetResp); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	if assetResp.Data.ID == "" {
		err = errors.New("provider response has no asset")
		slog.Info(err.Error())
		return nil, err
	}

	return &assetResp.Data, nil
}

func (m *muxService) basicAuth() string {
	return base64.StdEncoding.EncodeToString([]byte(m.cfg.Mux.TokenID + ":" + m.cfg.Mux.TokenSecret))
}
