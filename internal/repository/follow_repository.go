package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/celebrateug/media-api/internal/models"
)

type FollowRepository interface {
	Create(ctx context.Context, follow *models.Follow) error
	Remove(ctx context.Context, followerID, creatorName string) error
	ListCreatorsByFollowerID(ctx context.Context, followerID string) ([]string, error)
}

type followRepository struct {
	db *sql.DB
}

func NewFollowRepository(db *sql.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	query := `
		INSERT INTO media_page_follows (follower_id, creator_name)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, creator_name) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, follow.FollowerID, follow.CreatorName)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *followRepository) Remove(ctx context.Context, followerID, creatorName string) error {
	query := `
		DELETE FROM media_page_follows
		WHERE follower_id = $1 AND creator_name = $2
	`
	_, err := r.db.ExecContext(ctx, query, followerID, creatorName)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *followRepository) ListCreatorsByFollowerID(ctx context.Context, followerID string) ([]string, error) {
	query := `
		SELECT creator_name
		FROM media_page_follows
		WHERE follower_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, followerID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var creators []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		creators = append(creators, name)
	}

	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return creators, nil
}
