package repository

import (
	"context"
	"errors"
	"time"

	"finbay/internal/models"

	"gorm.io/gorm"
)

// PinRepository defines persistence operations for password-reset pins.
type PinRepository interface {
	Create(ctx context.Context, pin *models.PasswordPin) error
	LatestForUser(ctx context.Context, userID uint) (*models.PasswordPin, error)
	MarkUsed(ctx context.Context, id uint) error
}

type pinRepository struct {
	db *gorm.DB
}

// NewPinRepository returns a new PinRepository implementation.
func NewPinRepository(db *gorm.DB) PinRepository {
	return &pinRepository{db: db}
}

func (r *pinRepository) Create(ctx context.Context, pin *models.PasswordPin) error {
	if err := r.db.WithContext(ctx).Create(pin).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// LatestForUser returns the most recently issued pin for the user, or nil
// when none has ever been issued. Older pins are never consulted; reissuing
// supersedes them.
func (r *pinRepository) LatestForUser(ctx context.Context, userID uint) (*models.PasswordPin, error) {
	var pin models.PasswordPin
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&pin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &pin, nil
}

func (r *pinRepository) MarkUsed(ctx context.Context, id uint) error {
	now := time.Now()
	err := r.db.WithContext(ctx).
		Model(&models.PasswordPin{}).
		Where("id = ?", id).
		Update("used_at", &now).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
