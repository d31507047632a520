package service

import (
	"context"

	"finbay/internal/models"
)

type userRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByIDWithItemsFn func(context.Context, uint, int) (*models.User, error)
	getByEmailFn       func(context.Context, string) (*models.User, error)
	getByUsernameFn    func(context.Context, string) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	updatePasswordFn   func(context.Context, uint, string) error
	deleteFn           func(context.Context, uint) error
	listFn             func(context.Context, int, int) ([]models.User, error)
	ratingSummaryFn    func(context.Context, uint) (float64, int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithItems(ctx context.Context, id uint, limit int) (*models.User, error) {
	return s.getByIDWithItemsFn(ctx, id, limit)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) UpdatePassword(ctx context.Context, id uint, hash string) error {
	return s.updatePasswordFn(ctx, id, hash)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *userRepoStub) RatingSummary(ctx context.Context, userID uint) (float64, int64, error) {
	return s.ratingSummaryFn(ctx, userID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:          func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByIDWithItemsFn: func(context.Context, uint, int) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:       func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:           func(context.Context, *models.User) error { return nil },
		updateFn:           func(context.Context, *models.User) error { return nil },
		updatePasswordFn:   func(context.Context, uint, string) error { return nil },
		deleteFn:           func(context.Context, uint) error { return nil },
		listFn:             func(context.Context, int, int) ([]models.User, error) { return nil, nil },
		ratingSummaryFn:    func(context.Context, uint) (float64, int64, error) { return 0, 0, nil },
	}
}

type itemRepoStub struct {
	createFn        func(context.Context, *models.Item) error
	getByIDFn       func(context.Context, uint, uint) (*models.Item, error)
	listAvailableFn func(context.Context, uint, models.ItemCategory, int, int) ([]models.Item, error)
	listByOwnerFn   func(context.Context, uint, uint, int, int) ([]models.Item, error)
	searchFn        func(context.Context, string, uint, int, int) ([]models.Item, error)
	updateFn        func(context.Context, *models.Item) error
	deleteFn        func(context.Context, uint) error
	likedByFn       func(context.Context, uint, int, int) ([]models.Item, error)
}

func (s *itemRepoStub) Create(ctx context.Context, item *models.Item) error {
	return s.createFn(ctx, item)
}
func (s *itemRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Item, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *itemRepoStub) ListAvailable(ctx context.Context, viewerID uint, category models.ItemCategory, limit, offset int) ([]models.Item, error) {
	return s.listAvailableFn(ctx, viewerID, category, limit, offset)
}
func (s *itemRepoStub) ListByOwner(ctx context.Context, ownerID, viewerID uint, limit, offset int) ([]models.Item, error) {
	return s.listByOwnerFn(ctx, ownerID, viewerID, limit, offset)
}
func (s *itemRepoStub) Search(ctx context.Context, query string, viewerID uint, limit, offset int) ([]models.Item, error) {
	return s.searchFn(ctx, query, viewerID, limit, offset)
}
func (s *itemRepoStub) Update(ctx context.Context, item *models.Item) error {
	return s.updateFn(ctx, item)
}
func (s *itemRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *itemRepoStub) LikedBy(ctx context.Context, userID uint, limit, offset int) ([]models.Item, error) {
	return s.likedByFn(ctx, userID, limit, offset)
}

func noopItemRepo() *itemRepoStub {
	return &itemRepoStub{
		createFn:  func(context.Context, *models.Item) error { return nil },
		getByIDFn: func(context.Context, uint, uint) (*models.Item, error) { return &models.Item{}, nil },
		listAvailableFn: func(context.Context, uint, models.ItemCategory, int, int) ([]models.Item, error) {
			return nil, nil
		},
		listByOwnerFn: func(context.Context, uint, uint, int, int) ([]models.Item, error) { return nil, nil },
		searchFn:      func(context.Context, string, uint, int, int) ([]models.Item, error) { return nil, nil },
		updateFn:      func(context.Context, *models.Item) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		likedByFn:     func(context.Context, uint, int, int) ([]models.Item, error) { return nil, nil },
	}
}

type likeRepoStub struct {
	likeFn         func(context.Context, uint, uint) (bool, error)
	unlikeFn       func(context.Context, uint, uint) error
	hasLikedFn     func(context.Context, uint, uint) (bool, error)
	countForItemFn func(context.Context, uint) (int64, error)
}

func (s *likeRepoStub) Like(ctx context.Context, userID, itemID uint) (bool, error) {
	return s.likeFn(ctx, userID, itemID)
}
func (s *likeRepoStub) Unlike(ctx context.Context, userID, itemID uint) error {
	return s.unlikeFn(ctx, userID, itemID)
}
func (s *likeRepoStub) HasLiked(ctx context.Context, userID, itemID uint) (bool, error) {
	return s.hasLikedFn(ctx, userID, itemID)
}
func (s *likeRepoStub) CountForItem(ctx context.Context, itemID uint) (int64, error) {
	return s.countForItemFn(ctx, itemID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		likeFn:         func(context.Context, uint, uint) (bool, error) { return true, nil },
		unlikeFn:       func(context.Context, uint, uint) error { return nil },
		hasLikedFn:     func(context.Context, uint, uint) (bool, error) { return false, nil },
		countForItemFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type followRepoStub struct {
	followFn      func(context.Context, uint, uint) (bool, error)
	unfollowFn    func(context.Context, uint, uint) error
	isFollowingFn func(context.Context, uint, uint) (bool, error)
	followersFn   func(context.Context, uint, int, int) ([]models.User, error)
	followingFn   func(context.Context, uint, int, int) ([]models.User, error)
	countsFn      func(context.Context, uint) (int64, int64, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	return s.unfollowFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.followersFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	return s.followingFn(ctx, userID, limit, offset)
}
func (s *followRepoStub) Counts(ctx context.Context, userID uint) (int64, int64, error) {
	return s.countsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		unfollowFn:    func(context.Context, uint, uint) error { return nil },
		isFollowingFn: func(context.Context, uint, uint) (bool, error) { return false, nil },
		followersFn:   func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
		followingFn:   func(context.Context, uint, int, int) ([]models.User, error) { return nil, nil },
		countsFn:      func(context.Context, uint) (int64, int64, error) { return 0, 0, nil },
	}
}

type txnRepoStub struct {
	purchaseItemFn func(context.Context, uint, uint) (*models.Transaction, error)
	getByIDFn      func(context.Context, uint) (*models.Transaction, error)
	listByBuyerFn  func(context.Context, uint, int, int) ([]models.Transaction, error)
	listBySellerFn func(context.Context, uint, int, int) ([]models.Transaction, error)
	allBySellerFn  func(context.Context, uint) ([]models.Transaction, error)
}

func (s *txnRepoStub) PurchaseItem(ctx context.Context, buyerID, itemID uint) (*models.Transaction, error) {
	return s.purchaseItemFn(ctx, buyerID, itemID)
}
func (s *txnRepoStub) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	return s.getByIDFn(ctx, id)
}
func (s *txnRepoStub) ListByBuyer(ctx context.Context, buyerID uint, limit, offset int) ([]models.Transaction, error) {
	return s.listByBuyerFn(ctx, buyerID, limit, offset)
}
func (s *txnRepoStub) ListBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Transaction, error) {
	return s.listBySellerFn(ctx, sellerID, limit, offset)
}
func (s *txnRepoStub) AllBySeller(ctx context.Context, sellerID uint) ([]models.Transaction, error) {
	return s.allBySellerFn(ctx, sellerID)
}

func noopTxnRepo() *txnRepoStub {
	return &txnRepoStub{
		purchaseItemFn: func(context.Context, uint, uint) (*models.Transaction, error) {
			return &models.Transaction{}, nil
		},
		getByIDFn:      func(context.Context, uint) (*models.Transaction, error) { return &models.Transaction{}, nil },
		listByBuyerFn:  func(context.Context, uint, int, int) ([]models.Transaction, error) { return nil, nil },
		listBySellerFn: func(context.Context, uint, int, int) ([]models.Transaction, error) { return nil, nil },
		allBySellerFn:  func(context.Context, uint) ([]models.Transaction, error) { return nil, nil },
	}
}

type reviewRepoStub struct {
	createFn               func(context.Context, *models.Review) error
	existsForTransactionFn func(context.Context, uint) (bool, error)
	listByRecipientFn      func(context.Context, uint, int, int) ([]models.Review, error)
}

func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review) error {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) ExistsForTransaction(ctx context.Context, transactionID uint) (bool, error) {
	return s.existsForTransactionFn(ctx, transactionID)
}
func (s *reviewRepoStub) ListByRecipient(ctx context.Context, recipientID uint, limit, offset int) ([]models.Review, error) {
	return s.listByRecipientFn(ctx, recipientID, limit, offset)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		createFn:               func(context.Context, *models.Review) error { return nil },
		existsForTransactionFn: func(context.Context, uint) (bool, error) { return false, nil },
		listByRecipientFn:      func(context.Context, uint, int, int) ([]models.Review, error) { return nil, nil },
	}
}

type pinRepoStub struct {
	createFn        func(context.Context, *models.PasswordPin) error
	latestForUserFn func(context.Context, uint) (*models.PasswordPin, error)
	markUsedFn      func(context.Context, uint) error
}

func (s *pinRepoStub) Create(ctx context.Context, pin *models.PasswordPin) error {
	return s.createFn(ctx, pin)
}
func (s *pinRepoStub) LatestForUser(ctx context.Context, userID uint) (*models.PasswordPin, error) {
	return s.latestForUserFn(ctx, userID)
}
func (s *pinRepoStub) MarkUsed(ctx context.Context, id uint) error {
	return s.markUsedFn(ctx, id)
}

func noopPinRepo() *pinRepoStub {
	return &pinRepoStub{
		createFn:        func(context.Context, *models.PasswordPin) error { return nil },
		latestForUserFn: func(context.Context, uint) (*models.PasswordPin, error) { return nil, nil },
		markUsedFn:      func(context.Context, uint) error { return nil },
	}
}

// recorderMailer captures outgoing mail for assertions.
type recorderMailer struct {
	to   []string
	pins []string
	err  error
}

func (m *recorderMailer) SendResetPin(_ context.Context, to, _ string, pin string) error {
	if m.err != nil {
		return m.err
	}
	m.to = append(m.to, to)
	m.pins = append(m.pins, pin)
	return nil
}
