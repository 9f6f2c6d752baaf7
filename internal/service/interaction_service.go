package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/celebrateug/media-api/internal/models"
	"github.com/celebrateug/media-api/internal/repository"
	"github.com/celebrateug/media-api/internal/transfer"
)

type InteractionService interface {
	ToggleLike(ctx context.Context, userID, contentID string, currentlyLiked bool) error
	ToggleFollow(ctx context.Context, userID, creatorName string, currentlyFollowing bool) error
	ListInteractions(ctx context.Context, userID string) (*transfer.Interactions, error)
}

type interactionService struct {
	db *sql.DB
	lr repository.LikeRepository
	fr repository.FollowRepository
	cr repository.ContentRepository
}

func NewInteractionService(db *sql.DB, lr repository.LikeRepository, fr repository.FollowRepository, cr repository.ContentRepository) InteractionService {
	return &interactionService{
		db: db,
		lr: lr,
		fr: fr,
		cr: cr,
	}
}

// ToggleLike flips the (user, content) like relation and moves the item's
// counter by one inside a single transaction, so the relation and the
// counter can never drift from each other.
func (s *interactionService) ToggleLike(ctx context.Context, userID, contentID string, currentlyLiked bool) error {
	var err error

	if userID == "" {
		err = errors.New("user is not valid")
		slog.Info(err.Error())
		return err
	}

	if contentID == "" {
		err = errors.New("content id is empty")
		slog.Info(err.Error())
		return err
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	if currentlyLiked {
		if err = s.lr.Remove(ctx, tx, userID, contentID); err != nil {
			return fmt.Errorf("error removing like: %w", err)
		}
		if _, err = s.cr.AdjustLikeCount(ctx, tx, contentID, -1); err != nil {
			return fmt.Errorf("error adjusting like count: %w", err)
		}
	} else {
		like := models.Like{UserID: userID, ContentID: contentID}
		if err = s.lr.Create(ctx, tx, &like); err != nil {
			return fmt.Errorf("error saving like: %w", err)
		}
		if _, err = s.cr.AdjustLikeCount(ctx, tx, contentID, 1); err != nil {
			return fmt.Errorf("error adjusting like count: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *interactionService) ToggleFollow(ctx context.Context, userID, creatorName string, currentlyFollowing bool) error {
	var err error

	if userID == "" {
		err = errors.New("user is not valid")
		slog.Info(err.Error())
		return err
	}

	if creatorName == "" {
		err = errors.New("creator name is empty")
		slog.Info(err.Error())
		return err
	}

	if currentlyFollowing {
		if err = s.fr.Remove(ctx, userID, creatorName); err != nil {
			return fmt.Errorf("error removing follow: %w", err)
		}
		return nil
	}

	follow := models.Follow{FollowerID: userID, CreatorName: creatorName}
	if err = s.fr.Create(ctx, &follow); err != nil {
		return fmt.Errorf("error saving follow: %w", err)
	}

	return nil
}

func (s *interactionService) ListInteractions(ctx context.Context, userID string) (*transfer.Interactions, error) {
	if userID == "" {
		err := errors.New("user is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	likes, err := s.lr.ListContentIDsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing likes: %w", err)
	}

	follows, err := s.fr.ListCreatorsByFollowerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing follows: %w", err)
	}

	return &transfer.Interactions{
		LikedContentIDs:  likes,
		FollowedCreators: follows,
	}, nil
}
