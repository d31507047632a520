package repository

import (
	"context"

	"finbay/internal/cache"
	"finbay/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines persistence operations for transaction reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ExistsForTransaction(ctx context.Context, transactionID uint) (bool, error)
	ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a new ReviewRepository implementation.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a review. The unique index on transaction_id backstops the
// one-review-per-transaction rule against concurrent submissions.
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Transaction has already been reviewed")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, review.RecipientID)
	return nil
}

func (r *reviewRepository) ExistsForTransaction(ctx context.Context, transactionID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *reviewRepository) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}
