// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"finbay/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		opts: opts,
		// #nosec G404: acceptable for seeding
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

var fishNames = []string{
	"Neon Tetra", "Betta Splendens", "Fancy Guppy", "Corydoras Panda",
	"Angelfish Pair", "Cherry Shrimp Colony", "Zebra Danio", "Kuhli Loach",
	"Dwarf Gourami", "Bristlenose Pleco", "Harlequin Rasbora", "German Blue Ram",
}

var itemNamesByCategory = map[models.ItemCategory][]string{
	models.CategoryFish: fishNames,
	models.CategoryFood: {
		"Tropical Flakes 250g", "Frozen Bloodworms", "Algae Wafers",
		"Brine Shrimp Cubes", "Betta Pellets", "Spirulina Mix",
	},
	models.CategoryTank: {
		"60L Starter Tank", "120L Rimless Tank", "Nano Cube 30L",
		"Breeding Tank 20L", "Display Tank 240L",
	},
	models.CategoryDecoration: {
		"Driftwood Centerpiece", "Dragon Stone Set", "Java Fern on Rock",
		"Ceramic Cave", "Anubias Bundle", "Sunken Ship Ornament",
	},
	models.CategoryUtilities: {
		"Canister Filter", "50W Heater", "Air Pump Kit", "LED Light Bar",
		"Gravel Vacuum", "Water Test Kit", "CO2 Diffuser",
	},
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Bio:      gofakeit.Sentence(10),
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateItem constructs and persists a sample listing for the given seller.
func (f *Factory) CreateItem(seller *models.User, overrides ...func(*models.Item)) (*models.Item, error) {
	category := models.Categories[f.rng.Intn(len(models.Categories))]
	names := itemNamesByCategory[category]

	item := &models.Item{
		UserID:      seller.ID,
		Name:        names[f.rng.Intn(len(names))],
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		Category:    category,
		BasePrice:   float64(gofakeit.Number(200, 15000)) / 100,
		Status:      models.ItemStatusAvailable,
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)
	item.CreatedAt = time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)

	for _, override := range overrides {
		override(item)
	}

	if err := f.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// CreateLike persists a like from `user` on `item`.
func (f *Factory) CreateLike(user *models.User, item *models.Item) error {
	like := &models.Like{
		UserID: user.ID,
		ItemID: item.ID,
	}
	return f.db.Create(like).Error
}

// CreateFollow persists a follow edge from `follower` to `followee`.
func (f *Factory) CreateFollow(follower, followee *models.User) error {
	follow := &models.Follow{
		FollowerID: follower.ID,
		FolloweeID: followee.ID,
	}
	return f.db.Create(follow).Error
}

// CreatePurchase marks the item bought and persists the matching ledger row.
func (f *Factory) CreatePurchase(buyer *models.User, item *models.Item) (*models.Transaction, error) {
	if err := f.db.Model(item).Update("status", models.ItemStatusBought).Error; err != nil {
		return nil, err
	}
	item.Status = models.ItemStatusBought

	txn := &models.Transaction{
		BuyerID:  buyer.ID,
		SellerID: item.UserID,
		ItemID:   item.ID,
		Value:    item.BasePrice,
	}
	if err := f.db.Create(txn).Error; err != nil {
		return nil, err
	}
	return txn, nil
}

// CreateReview persists the buyer's review of a transaction.
func (f *Factory) CreateReview(txn *models.Transaction, overrides ...func(*models.Review)) (*models.Review, error) {
	review := &models.Review{
		TransactionID: txn.ID,
		AuthorID:      txn.BuyerID,
		RecipientID:   txn.SellerID,
		Rating:        gofakeit.Number(models.ReviewRatingMin, models.ReviewRatingMax),
		Comment:       gofakeit.Sentence(12),
	}

	for _, override := range overrides {
		override(review)
	}

	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func logStep(format string, args ...any) {
	log.Printf(format, args...)
}
