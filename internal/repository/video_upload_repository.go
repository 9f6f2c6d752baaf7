package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/celebrateug/media-api/internal/models"
)

type VideoUploadRepository interface {
	Create(ctx context.Context, vu *models.VideoUpload) (int64, error)
	GetByFilename(ctx context.Context, filename string) (*models.VideoUpload, bool, error)
	ListByStatus(ctx context.Context, status string) ([]*models.VideoUpload, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type videoUploadRepository struct {
	db *sql.DB
}

func NewVideoUploadRepository(db *sql.DB) VideoUploadRepository {
	return &videoUploadRepository{db: db}
}

func (r *videoUploadRepository) Create(ctx context.Context, vu *models.VideoUpload) (int64, error) {
	query := `
		INSERT INTO video_uploads (user_id, filename, b2_url, asset_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, vu.UserID, vu.Filename, vu.B2URL, vu.AssetID, vu.Status).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *videoUploadRepository) GetByFilename(ctx context.Context, filename string) (*models.VideoUpload, bool, error) {
	query := `
		SELECT id, user_id, filename, b2_url, asset_id, status, created_at
		FROM video_uploads
		WHERE filename = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var vu models.VideoUpload
	err := r.db.QueryRowContext(ctx, query, filename).Scan(
		&vu.ID,
		&vu.UserID,
		&vu.Filename,
		&vu.B2URL,
		&vu.AssetID,
		&vu.Status,
		&vu.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &vu, true, nil
}

func (r *videoUploadRepository) ListByStatus(ctx context.Context, status string) ([]*models.VideoUpload, error) {
	query := `
		SELECT id, user_id, filename, b2_url, asset_id, status, created_at
		FROM video_uploads
		WHERE status = $1
	`

	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var uploads []*models.VideoUpload
	for rows.Next() {
		var vu models.VideoUpload
		err := rows.Scan(
			&vu.ID,
			&vu.UserID,
			&vu.Filename,
			&vu.B2URL,
			&vu.AssetID,
			&vu.Status,
			&vu.CreatedAt,
		)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		uploads = append(uploads, &vu)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return uploads, nil
}

func (r *videoUploadRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `
		UPDATE video_uploads
		SET status = $1,
			updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
