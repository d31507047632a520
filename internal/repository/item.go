package repository

import (
	"context"
	"errors"
	"strings"

	"finbay/internal/cache"
	"finbay/internal/models"

	"gorm.io/gorm"
)

// ItemRepository defines persistence operations for marketplace listings.
type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Item, error)
	ListAvailable(ctx context.Context, viewerID uint, category models.ItemCategory, limit, offset int) ([]models.Item, error)
	ListByOwner(ctx context.Context, ownerID uint, viewerID uint, limit, offset int) ([]models.Item, error)
	Search(ctx context.Context, query string, viewerID uint, limit, offset int) ([]models.Item, error)
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id uint) error
	LikedBy(ctx context.Context, userID uint, limit, offset int) ([]models.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository returns a new ItemRepository implementation.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// withLikeCounts selects items together with their like count and whether
// the viewing user has liked each one. viewerID 0 means anonymous.
func (r *itemRepository) withLikeCounts(ctx context.Context, viewerID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Select(`items.*,
			(SELECT COUNT(*) FROM likes WHERE likes.item_id = items.id) AS likes_count,
			(SELECT COUNT(*) FROM likes WHERE likes.item_id = items.id AND likes.user_id = ?) > 0 AS liked`,
			viewerID)
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Item, error) {
	var item models.Item
	err := r.withLikeCounts(ctx, viewerID).
		Preload("User").
		Where("items.id = ?", id).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Item", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &item, nil
}

func (r *itemRepository) ListAvailable(ctx context.Context, viewerID uint, category models.ItemCategory, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	q := r.withLikeCounts(ctx, viewerID).
		Preload("User").
		Where("items.status = ?", models.ItemStatusAvailable)
	if category != "" {
		q = q.Where("items.category = ?", category)
	}
	err := q.Order("items.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID uint, viewerID uint, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	err := r.withLikeCounts(ctx, viewerID).
		Where("items.user_id = ?", ownerID).
		Order("items.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) Search(ctx context.Context, query string, viewerID uint, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + strings.ToLower(query) + "%"
	err := r.withLikeCounts(ctx, viewerID).
		Preload("User").
		Where("items.status = ?", models.ItemStatusAvailable).
		Where("LOWER(items.name) LIKE ? OR LOWER(items.description) LIKE ?", pattern, pattern).
		Order("items.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, item *models.Item) error {
	if err := r.db.WithContext(ctx).Save(item).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateItem(ctx, item.ID)
	return nil
}

// Delete removes the item and its like edges in one transaction. The edge
// table has no FK cascade, so the edges go first.
func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Item{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateItem(ctx, id)
	return nil
}

// LikedBy lists the items a user has liked, most recently liked first.
func (r *itemRepository) LikedBy(ctx context.Context, userID uint, limit, offset int) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Model(&models.Item{}).
		Select(`items.*,
			(SELECT COUNT(*) FROM likes WHERE likes.item_id = items.id) AS likes_count,
			1 AS liked`).
		Joins("JOIN likes ON likes.item_id = items.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&items).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return items, nil
}
