package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/celebrateug/media-api/internal/models"
)

type ContentRepository interface {
	ListByDestination(ctx context.Context, destination string) ([]*models.ContentItem, error)
	GetByID(ctx context.Context, id string) (*models.ContentItem, bool, error)
	CheckByUserID(ctx context.Context, id, userID string) (bool, error)
	AdjustLikeCount(ctx context.Context, tx *sql.Tx, id string, delta int) (int, error)
	IncrementViews(ctx context.Context, id string) error
	UpdateDuration(ctx context.Context, id, duration string) error
	RemoveFromDestination(ctx context.Context, id, destination string) error
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) ListByDestination(ctx context.Context, destination string) ([]*models.ContentItem, error) {
	query := `
		SELECT id, user_id, title, creator, COALESCE(description, ''),
			thumbnail_url, content_url, like_count, views_count,
			COALESCE(duration, ''), COALESCE(read_time, ''), COALESCE(category, ''),
			is_premium, type, created_at
		FROM get_content_by_destination($1)
	`

	rows, err := r.db.QueryContext(ctx, query, destination)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var items []*models.ContentItem
	for rows.Next() {
		var item models.ContentItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Title,
			&item.Creator,
			&item.Description,
			&item.ThumbnailURL,
			&item.ContentURL,
			&item.LikeCount,
			&item.ViewsCount,
			&item.Duration,
			&item.ReadTime,
			&item.Category,
			&item.IsPremium,
			&item.Type,
			&item.CreatedAt,
		)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return items, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*models.ContentItem, bool, error) {
	query := `
		SELECT id, user_id, title, creator, content_url, like_count,
			COALESCE(duration, ''), type, created_at
		FROM media_page_content
		WHERE id = $1
	`

	var item models.ContentItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.UserID,
		&item.Title,
		&item.Creator,
		&item.ContentURL,
		&item.LikeCount,
		&item.Duration,
		&item.Type,
		&item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &item, true, nil
}

func (r *contentRepository) CheckByUserID(ctx context.Context, id, userID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM media_page_content WHERE id = $1 AND user_id = $2)"
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&exists)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}
	return exists, nil
}

// AdjustLikeCount bumps the counter and emits the row-change notification
// in the same statement, so listeners always see the committed value.
func (r *contentRepository) AdjustLikeCount(ctx context.Context, tx *sql.Tx, id string, delta int) (int, error) {
	query := `
		WITH updated AS (
			UPDATE media_page_content
			SET like_count = GREATEST(like_count + $2, 0)
			WHERE id = $1
			RETURNING id, like_count
		)
		SELECT like_count, pg_notify('media_page_content',
			json_build_object('id', id, 'like_count', like_count)::text)
		FROM updated
	`

	var likeCount int
	var notify any

	var err error
	if tx != nil {
		err = tx.QueryRowContext(ctx, query, id, delta).Scan(&likeCount, &notify)
	} else {
		err = r.db.QueryRowContext(ctx, query, id, delta).Scan(&likeCount, &notify)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return likeCount, nil
}

func (r *contentRepository) IncrementViews(ctx context.Context, id string) error {
	query := `
		UPDATE media_page_content
		SET views_count = COALESCE(views_count, 0) + 1
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *contentRepository) UpdateDuration(ctx context.Context, id, duration string) error {
	query := `
		WITH updated AS (
			UPDATE media_page_content
			SET duration = $2
			WHERE id = $1
			RETURNING id, like_count
		)
		SELECT pg_notify('media_page_content',
			json_build_object('id', id, 'like_count', like_count)::text)
		FROM updated
	`
	_, err := r.db.ExecContext(ctx, query, id, duration)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *contentRepository) RemoveFromDestination(ctx context.Context, id, destination string) error {
	query := `
		DELETE FROM media_page_content
		WHERE id = $1 AND destination = $2
	`
	_, err := r.db.ExecContext(ctx, query, id, destination)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
