package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/celebrateug/media-api/internal/models"
)

type LikeRepository interface {
	Create(ctx context.Context, tx *sql.Tx, like *models.Like) error
	Remove(ctx context.Context, tx *sql.Tx, userID, contentID string) error
	ListContentIDsByUserID(ctx context.Context, userID string) ([]string, error)
}

type likeRepository struct {
	db *sql.DB
}

func NewLikeRepository(db *sql.DB) LikeRepository {
	return &likeRepository{db: db}
}

// ON CONFLICT DO NOTHING keeps the (user, content) pair unique even when
// the same toggle lands twice.
func (r *likeRepository) Create(ctx context.Context, tx *sql.Tx, like *models.Like) error {
	query := `
		INSERT INTO media_page_likes (user_id, content_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, content_id) DO NOTHING
	`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, like.UserID, like.ContentID)
	} else {
		_, err = r.db.ExecContext(ctx, query, like.UserID, like.ContentID)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return r.notifyChange(ctx, tx, like.UserID, like.ContentID)
}

func (r *likeRepository) Remove(ctx context.Context, tx *sql.Tx, userID, contentID string) error {
	query := `
		DELETE FROM media_page_likes
		WHERE user_id = $1 AND content_id = $2
	`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, userID, contentID)
	} else {
		_, err = r.db.ExecContext(ctx, query, userID, contentID)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return r.notifyChange(ctx, tx, userID, contentID)
}

func (r *likeRepository) ListContentIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT content_id
		FROM media_page_likes
		WHERE user_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return ids, nil
}

func (r *likeRepository) notifyChange(ctx context.Context, tx *sql.Tx, userID, contentID string) error {
	query := `
		SELECT pg_notify('media_page_likes',
			json_build_object('user_id', $1::text, 'content_id', $2::text)::text)
	`

	var err error
	if tx != nil {
		_, err = tx.ExecContext(ctx, query, userID, contentID)
	} else {
		_, err = r.db.ExecContext(ctx, query, userID, contentID)
	}
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
