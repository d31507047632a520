package seed

import (
	"fmt"

	"finbay/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers   int
	NumItems   int
	SkipBcrypt bool
	MaxDays    int
}

// Seeder populates the database with marketplace test data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll removes all seeded data. Deletion order follows foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Review{},
		&models.Transaction{},
		&models.PasswordPin{},
		&models.Like{},
		&models.Follow{},
		&models.Item{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", table, err)
		}
	}
	logStep("✓ Database cleared")
	return nil
}

// SeedMarketplace creates users and available listings.
func (s *Seeder) SeedMarketplace(numUsers, numItems int) ([]models.User, []models.Item, error) {
	users := make([]models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, *user)
	}
	logStep("✓ %d test users created", len(users))

	items := make([]models.Item, 0, numItems)
	for i := 0; i < numItems; i++ {
		seller := &users[s.factory.rng.Intn(len(users))]
		item, err := s.factory.CreateItem(seller)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create item: %w", err)
		}
		items = append(items, *item)
	}
	logStep("✓ %d listings created", len(items))

	return users, items, nil
}

// SeedEngagement wires likes, follows, purchases and reviews between the
// given users and items. Roughly a third of the listings are sold.
func (s *Seeder) SeedEngagement(users []models.User, items []models.Item) error {
	if len(users) < 2 || len(items) == 0 {
		return nil
	}

	likes := 0
	for i := range items {
		for _, u := range pickUsers(s.factory.rng.Intn(4), users, items[i].UserID, s.factory) {
			if err := s.factory.CreateLike(u, &items[i]); err != nil {
				return fmt.Errorf("failed to create like: %w", err)
			}
			likes++
		}
	}
	logStep("✓ %d likes created", likes)

	follows := 0
	for i := range users {
		for _, u := range pickUsers(s.factory.rng.Intn(5), users, users[i].ID, s.factory) {
			if err := s.factory.CreateFollow(u, &users[i]); err != nil {
				return fmt.Errorf("failed to create follow: %w", err)
			}
			follows++
		}
	}
	logStep("✓ %d follows created", follows)

	sold := 0
	reviewed := 0
	for i := range items {
		if s.factory.rng.Intn(3) != 0 {
			continue
		}
		buyers := pickUsers(1, users, items[i].UserID, s.factory)
		if len(buyers) == 0 {
			continue
		}
		txn, err := s.factory.CreatePurchase(buyers[0], &items[i])
		if err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}
		sold++

		if s.factory.rng.Intn(2) == 0 {
			if _, err := s.factory.CreateReview(txn); err != nil {
				return fmt.Errorf("failed to create review: %w", err)
			}
			reviewed++
		}
	}
	logStep("✓ %d purchases created (%d reviewed)", sold, reviewed)

	return nil
}

// pickUsers selects up to n distinct users, excluding the given user ID.
func pickUsers(n int, users []models.User, exclude uint, f *Factory) []*models.User {
	order := f.rng.Perm(len(users))
	picked := make([]*models.User, 0, n)
	for _, idx := range order {
		if len(picked) == n {
			break
		}
		if users[idx].ID == exclude {
			continue
		}
		picked = append(picked, &users[idx])
	}
	return picked
}
