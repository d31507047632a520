package service

import (
	"context"
	"strings"
	"time"

	"finbay/internal/middleware"
	"finbay/internal/models"
	"finbay/internal/repository"
)

// CheckoutService handles purchases and post-purchase reviews.
type CheckoutService struct {
	txnRepo    repository.TransactionRepository
	reviewRepo repository.ReviewRepository
}

type SubmitReviewInput struct {
	BuyerID       uint
	TransactionID uint
	Rating        int
	Comment       string
}

func NewCheckoutService(txnRepo repository.TransactionRepository, reviewRepo repository.ReviewRepository) *CheckoutService {
	return &CheckoutService{txnRepo: txnRepo, reviewRepo: reviewRepo}
}

// Purchase buys an item on behalf of buyerID. The underlying status flip and
// ledger insert are atomic; losing a race surfaces as a conflict.
func (s *CheckoutService) Purchase(ctx context.Context, buyerID, itemID uint) (*models.Transaction, error) {
	txn, err := s.txnRepo.PurchaseItem(ctx, buyerID, itemID)
	if err != nil {
		return nil, err
	}
	middleware.PurchasesTotal.WithLabelValues(string(txn.Item.Category)).Inc()
	txn.Item.Decorate(time.Now())
	return txn, nil
}

func (s *CheckoutService) PurchaseHistory(ctx context.Context, buyerID uint, limit, offset int) ([]models.Transaction, error) {
	txns, err := s.txnRepo.ListByBuyer(ctx, buyerID, limit, offset)
	if err != nil {
		return nil, err
	}
	decorateTransactions(txns)
	return txns, nil
}

func (s *CheckoutService) SalesHistory(ctx context.Context, sellerID uint, limit, offset int) ([]models.Transaction, error) {
	txns, err := s.txnRepo.ListBySeller(ctx, sellerID, limit, offset)
	if err != nil {
		return nil, err
	}
	decorateTransactions(txns)
	return txns, nil
}

// SubmitReview writes the buyer's review of a completed transaction. Only the
// buyer may review, a transaction is reviewed at most once, and author and
// recipient are taken from the ledger rather than the request.
func (s *CheckoutService) SubmitReview(ctx context.Context, in SubmitReviewInput) (*models.Review, error) {
	if in.Rating < models.ReviewRatingMin || in.Rating > models.ReviewRatingMax {
		return nil, models.NewValidationError("Rating must be between 1 and 5")
	}
	comment := strings.TrimSpace(in.Comment)
	if len(comment) < models.ReviewCommentMinLen {
		return nil, models.NewValidationError("Comment must be at least 5 characters")
	}
	if len(comment) > models.ReviewCommentMaxLen {
		return nil, models.NewValidationError("Comment too long (max 500 characters)")
	}

	txn, err := s.txnRepo.GetByID(ctx, in.TransactionID)
	if err != nil {
		return nil, err
	}
	if txn.BuyerID != in.BuyerID {
		return nil, models.NewUnauthorizedError("Only the buyer can review this transaction")
	}

	review := &models.Review{
		TransactionID: txn.ID,
		AuthorID:      txn.BuyerID,
		RecipientID:   txn.SellerID,
		Rating:        in.Rating,
		Comment:       comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	middleware.ReviewsTotal.WithLabelValues(ratingLabel(in.Rating)).Inc()
	return review, nil
}

func (s *CheckoutService) ReviewsFor(ctx context.Context, recipientID uint, limit, offset int) ([]models.Review, error) {
	return s.reviewRepo.ListByRecipient(ctx, recipientID, limit, offset)
}

func decorateTransactions(txns []models.Transaction) {
	now := time.Now()
	for i := range txns {
		txns[i].Item.Decorate(now)
	}
}

func ratingLabel(rating int) string {
	return [6]string{"0", "1", "2", "3", "4", "5"}[rating]
}
