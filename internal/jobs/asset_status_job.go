package job

import (
	"context"
	"log/slog"
	"sync"

	"github.com/celebrateug/media-api/internal/models"
	"github.com/celebrateug/media-api/internal/repository"
	"github.com/celebrateug/media-api/internal/service"
)

// AssetStatusJob reconciles `processing` tracking records against the
// transcoding provider. The provider reports asset readiness on its own
// schedule; this sweep pulls that state back into the tracking table.
type AssetStatusJob struct {
	vu repository.VideoUploadRepository
	mx service.MuxService
}

func NewAssetStatusJob(vu repository.VideoUploadRepository, mx service.MuxService) *AssetStatusJob {
	return &AssetStatusJob{
		vu: vu,
		mx: mx,
	}
}

func (c *AssetStatusJob) SweepStatuses() {
	ctx := context.Background()

	uploads, err := c.vu.ListByStatus(ctx, models.UploadStatusProcessing)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, upload := range uploads {

		wg.Add(1)
		semaphore <- struct{}{}

		go func(upload *models.VideoUpload) {
			defer wg.Done()
			defer func() { <-semaphore }()

			asset, err := c.mx.GetAsset(ctx, upload.AssetID)
			if err != nil {
				slog.Info("Unable to fetch asset status for " + upload.AssetID)
				return
			}

			switch asset.Status {
			case "ready":
				if err := c.vu.UpdateStatus(ctx, upload.ID, models.UploadStatusReady); err != nil {
					slog.Info("Unable to mark upload ready: " + err.Error())
				}
			case "errored":
				if err := c.vu.UpdateStatus(ctx, upload.ID, models.UploadStatusErrored); err != nil {
					slog.Info("Unable to mark upload errored: " + err.Error())
				}
			}
		}(upload)
	}

	wg.Wait()
}
