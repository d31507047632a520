package repository

import (
	"context"

	"finbay/internal/cache"
	"finbay/internal/models"

	"gorm.io/gorm"
)

// LikeRepository defines persistence operations for item likes.
type LikeRepository interface {
	Like(ctx context.Context, userID, itemID uint) (bool, error)
	Unlike(ctx context.Context, userID, itemID uint) error
	HasLiked(ctx context.Context, userID, itemID uint) (bool, error)
	CountForItem(ctx context.Context, itemID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository returns a new LikeRepository implementation.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Like records a like edge. The insert is idempotent: a repeated like hits
// the composite unique index and is silently dropped. Returns true when a
// new row was written.
func (r *likeRepository) Like(ctx context.Context, userID, itemID uint) (bool, error) {
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO likes (user_id, item_id, created_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, item_id) DO NOTHING`,
		userID, itemID,
	)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateItem(ctx, itemID)
		return true, nil
	}
	return false, nil
}

// Unlike removes the like edge. Removing an absent like is a no-op.
func (r *likeRepository) Unlike(ctx context.Context, userID, itemID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Delete(&models.Like{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		cache.InvalidateItem(ctx, itemID)
	}
	return nil
}

// HasLiked is an existence probe against the composite unique index.
func (r *likeRepository) HasLiked(ctx context.Context, userID, itemID uint) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(
		`SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = ? AND item_id = ?)`,
		userID, itemID,
	).Scan(&exists).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return exists, nil
}

func (r *likeRepository) CountForItem(ctx context.Context, itemID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("item_id = ?", itemID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
