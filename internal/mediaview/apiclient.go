package mediaview

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/celebrateug/media-api/internal/models"
	"github.com/celebrateug/media-api/internal/transfer"
)

// APIClient implements Backend over the content API. The duration refresh
// endpoint only enqueues the backfill, so RefreshDuration reports no value;
// the store skips empty durations and the patched row arrives with the next
// fetch.
type APIClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewAPIClient(baseURL, token string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		token:   token,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (a *APIClient) FetchContent(ctx context.Context, destination string) ([]models.ContentItem, error) {
	var items []models.ContentItem
	err := a.get(ctx, "/api/content?destination="+destination, &items)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (a *APIClient) FetchInteractions(ctx context.Context, userID string) ([]string, []string, error) {
	var interactions transfer.Interactions
	err := a.get(ctx, "/api/interactions", &interactions)
	if err != nil {
		return nil, nil, err
	}
	return interactions.LikedContentIDs, interactions.FollowedCreators, nil
}

func (a *APIClient) ToggleLike(ctx context.Context, userID, contentID string, currentlyLiked bool) error {
	return a.post(ctx, "/api/likes/toggle", transfer.ToggleLikeRequest{
		ContentID: contentID,
		Liked:     currentlyLiked,
	}, nil)
}

func (a *APIClient) ToggleFollow(ctx context.Context, userID, creatorName string, currentlyFollowing bool) error {
	return a.post(ctx, "/api/follows/toggle", transfer.ToggleFollowRequest{
		CreatorName: creatorName,
		Following:   currentlyFollowing,
	}, nil)
}

func (a *APIClient) DeleteFromDestination(ctx context.Context, contentID, destination string) error {
	return a.post(ctx, "/api/content/remove", transfer.RemoveContentRequest{
		ContentID:   contentID,
		Destination: destination,
	}, nil)
}

func (a *APIClient) TrackView(ctx context.Context, contentID string) error {
	return a.post(ctx, "/api/content/view", transfer.ContentIDRequest{ContentID: contentID}, nil)
}

func (a *APIClient) RefreshDuration(ctx context.Context, contentID, contentURL string) (string, error) {
	err := a.post(ctx, "/api/content/duration", transfer.ContentIDRequest{ContentID: contentID}, nil)
	if err != nil {
		return "", err
	}
	return "", nil
}

func (a *APIClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return err
	}
	return a.do(req, out)
}

func (a *APIClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return a.do(req, out)
}

func (a *APIClient) do(req *http.Request, out any) error {
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		body, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("api error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("api error (%d)", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
