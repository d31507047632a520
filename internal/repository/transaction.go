package repository

import (
	"context"
	"errors"

	"finbay/internal/cache"
	"finbay/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository defines persistence operations for the purchase ledger.
type TransactionRepository interface {
	PurchaseItem(ctx context.Context, buyerID, itemID uint) (*models.Transaction, error)
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	ListByBuyer(ctx context.Context, buyerID uint, limit, offset int) ([]models.Transaction, error)
	ListBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Transaction, error)
	AllBySeller(ctx context.Context, sellerID uint) ([]models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns a new TransactionRepository implementation.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// PurchaseItem atomically marks the item sold and writes the ledger entry.
// The status flip is a conditional update; if another buyer got there first
// RowsAffected is zero and the whole transaction rolls back with a conflict.
func (r *transactionRepository) PurchaseItem(ctx context.Context, buyerID, itemID uint) (*models.Transaction, error) {
	var txn *models.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Item", itemID)
			}
			return models.NewInternalError(err)
		}
		if item.UserID == buyerID {
			return models.NewValidationError("You cannot buy your own item")
		}

		res := tx.Model(&models.Item{}).
			Where("id = ? AND status = ?", itemID, models.ItemStatusAvailable).
			Update("status", models.ItemStatusBought)
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewConflictError("Item is no longer available")
		}

		txn = &models.Transaction{
			BuyerID:  buyerID,
			SellerID: item.UserID,
			ItemID:   item.ID,
			Value:    item.BasePrice,
		}
		if err := tx.Create(txn).Error; err != nil {
			return models.NewInternalError(err)
		}
		item.Status = models.ItemStatusBought
		txn.Item = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	cache.InvalidateItem(ctx, itemID)
	cache.InvalidateSellerStats(ctx, txn.SellerID)
	return txn, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var txn models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Item").
		First(&txn, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Transaction", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &txn, nil
}

// withReviewed selects transactions together with whether a review exists.
func (r *transactionRepository) withReviewed(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Transaction{}).
		Select(`transactions.*,
			(SELECT COUNT(*) FROM reviews WHERE reviews.transaction_id = transactions.id) > 0 AS reviewed`)
}

func (r *transactionRepository) ListByBuyer(ctx context.Context, buyerID uint, limit, offset int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.withReviewed(ctx).
		Preload("Item").
		Preload("Seller").
		Where("transactions.buyer_id = ?", buyerID).
		Order("transactions.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return txns, nil
}

func (r *transactionRepository) ListBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.withReviewed(ctx).
		Preload("Item").
		Preload("Buyer").
		Where("transactions.seller_id = ?", sellerID).
		Order("transactions.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&txns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return txns, nil
}

// AllBySeller returns the full ledger for a seller in chronological order.
// Used by analytics, which aggregates in memory.
func (r *transactionRepository) AllBySeller(ctx context.Context, sellerID uint) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("seller_id = ?", sellerID).
		Order("created_at ASC").
		Find(&txns).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return txns, nil
}
