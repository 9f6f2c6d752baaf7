package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	cfg "github.com/celebrateug/media-api/configs"
	"github.com/celebrateug/media-api/internal/models"
	"github.com/celebrateug/media-api/internal/repository"
)

type ContentService interface {
	ListByDestination(ctx context.Context, destination string) ([]*models.ContentItem, error)
	Remove(ctx context.Context, userID, contentID, destination string) error
	TrackView(ctx context.Context, contentID string) error
	BackfillDuration(ctx context.Context, contentID string) (string, error)
}

type contentService struct {
	cfg cfg.Config
	cr  repository.ContentRepository
	vu  repository.VideoUploadRepository
	mx  MuxService
}

func NewContentService(c cfg.Config, cr repository.ContentRepository, vu repository.VideoUploadRepository, mx MuxService) ContentService {
	return &contentService{
		cfg: c,
		cr:  cr,
		vu:  vu,
		mx:  mx,
	}
}

func (s *contentService) ListByDestination(ctx context.Context, destination string) ([]*models.ContentItem, error) {
	if destination == "" {
		err := errors.New("destination is empty")
		slog.Info(err.Error())
		return nil, err
	}

	items, err := s.cr.ListByDestination(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("error listing content: %w", err)
	}

	return items, nil
}

func (s *contentService) Remove(ctx context.Context, userID, contentID, destination string) error {
	var err error

	if userID == "" {
		err = errors.New("user is not valid")
		slog.Info(err.Error())
		return err
	}

	if contentID == "" || destination == "" {
		err = errors.New("content id or destination is empty")
		slog.Info(err.Error())
		return err
	}

	isOwner, err := s.cr.CheckByUserID(ctx, contentID, userID)
	if err != nil {
		return err
	}

	if !isOwner {
		err = errors.New("content doesn't exist")
		slog.Info(err.Error())
		return err
	}

	err = s.cr.RemoveFromDestination(ctx, contentID, destination)
	if err != nil {
		return fmt.Errorf("error removing content")
	}

	return nil
}

func (s *contentService) TrackView(ctx context.Context, contentID string) error {
	if contentID == "" {
		err := errors.New("content id is empty")
		slog.Info(err.Error())
		return err
	}

	return s.cr.IncrementViews(ctx, contentID)
}

// BackfillDuration resolves the real playback duration of a video-like item
// whose row still carries the "0:00" sentinel. It maps the item's public
// URL back to its upload key, follows the tracking record to the provider
// asset, and writes the formatted duration into the content row. The row
// update emits the usual content notification, so connected views pick the
// new value up without a re-fetch.
func (s *contentService) BackfillDuration(ctx context.Context, contentID string) (string, error) {
	item, found, err := s.cr.GetByID(ctx, contentID)
	if err != nil {
		return "", err
	}
	if !found {
		err = errors.New("content doesn't exist")
		slog.Info(err.Error())
		return "", err
	}

	if !item.IsVideoLike() {
		err = fmt.Errorf("content %s is not video-like", contentID)
		slog.Info(err.Error())
		return "", err
	}

	filename := strings.TrimPrefix(item.ContentURL, s.cfg.B2.PublicURL+"/")
	upload, found, err := s.vu.GetByFilename(ctx, filename)
	if err != nil {
		return "", err
	}
	if !found {
		err = fmt.Errorf("no tracking record for %s", filename)
		slog.Info(err.Error())
		return "", err
	}

	asset, err := s.mx.GetAsset(ctx, upload.AssetID)
	if err != nil {
		return "", err
	}

	if asset.Duration <= 0 {
		err = fmt.Errorf("asset %s has no duration yet", upload.AssetID)
		slog.Info(err.Error())
		return "", err
	}

	duration := FormatDuration(asset.Duration)
	if err := s.cr.UpdateDuration(ctx, contentID, duration); err != nil {
		return "", err
	}

	return duration, nil
}
