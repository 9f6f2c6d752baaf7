package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	cfg "github.com/celebrateug/media-api/configs"
	"github.com/celebrateug/media-api/internal/models"
	"github.com/celebrateug/media-api/internal/repository"
	"github.com/celebrateug/media-api/internal/transfer"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

// signed read URLs handed to the transcoding provider stay valid for 15
// minutes, long enough for the provider to start pulling the file
const signedReadURLTTL = 900 * time.Second

var ErrAssetCreateFailed = errors.New("failed to create Mux asset")

type UploadService interface {
	Upload(ctx context.Context, filename string, file []byte, contentType string) (*transfer.UploadResult, error)
	Process(ctx context.Context, filename, userID string) ([]byte, error)
}

type uploadService struct {
	cfg cfg.Config
	b2  B2Service
	mx  MuxService
	vu  repository.VideoUploadRepository
}

func NewUploadService(c cfg.Config, b2 B2Service, mx MuxService, vu repository.VideoUploadRepository) UploadService {
	return &uploadService{
		cfg: c,
		b2:  b2,
		mx:  mx,
		vu:  vu,
	}
}

// BuildUploadKey derives the bucket key for a fresh upload. The millisecond
// timestamp prefix keeps repeated uploads of the same file from colliding.
func BuildUploadKey(folder, originalName string) string {
	return fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), originalName)
}

func (s *uploadService) Upload(ctx context.Context, filename string, file []byte, contentType string) (*transfer.UploadResult, error) {
	if filename == "" {
		err := errors.New("filename is empty")
		slog.Info(err.Error())
		return nil, err
	}
	if len(file) == 0 {
		err := errors.New("file is empty")
		slog.Info(err.Error())
		return nil, err
	}

	if contentType == "" {
		contentType = sniffContentType(file)
	}

	// bare names get a fresh key under the configured folder; callers
	// that already computed a key pass it through untouched
	key := filename
	if !strings.Contains(filename, "/") {
		key = BuildUploadKey(s.cfg.UploadFolder, filename)
	}

	if err := s.b2.Upload(ctx, key, file, contentType); err != nil {
		return nil, fmt.Errorf("error uploading file: %w", err)
	}

	return &transfer.UploadResult{
		Success:   true,
		PublicURL: s.b2.PublicURL(key),
		Filename:  key,
	}, nil
}

// Process asks the bucket for a short-lived read URL, creates the
// transcoding asset from it, and records the tracking row. If the tracking
// insert fails after the provider call succeeded, the asset exists upstream
// with no local record; the status sweep logs such orphans but never
// invents rows for them.
func (s *uploadService) Process(ctx context.Context, filename, userID string) ([]byte, error) {
	if filename == "" {
		err := errors.New("filename is empty")
		slog.Info(err.Error())
		return nil, err
	}
	if userID == "" {
		err := errors.New("user id is empty")
		slog.Info(err.Error())
		return nil, err
	}

	signedURL, err := s.b2.SignedReadURL(ctx, filename, signedReadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("error signing read url: %w", err)
	}

	assetResp, rawBody, err := s.mx.CreateAsset(ctx, signedURL)
	if err != nil {
		return nil, err
	}

	if assetResp.Data.ID == "" {
		slog.Info(ErrAssetCreateFailed.Error())
		return nil, ErrAssetCreateFailed
	}

	vu := models.VideoUpload{
		UserID:   userID,
		Filename: filename,
		B2URL:    signedURL,
		AssetID:  assetResp.Data.ID,
		Status:   models.UploadStatusProcessing,
	}

	if _, err := s.vu.Create(ctx, &vu); err != nil {
		return nil, err
	}

	return rawBody, nil
}

func sniffContentType(file []byte) string {
	kind, err := filetype.Match(file)
	if err != nil || kind == types.Unknown {
		return "application/octet-stream"
	}
	return kind.MIME.Value
}
