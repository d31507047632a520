package service

import (
	"context"
	"strings"
	"time"

	"finbay/internal/models"
	"finbay/internal/repository"
)

type ItemService struct {
	itemRepo repository.ItemRepository
}

type CreateListingInput struct {
	UserID      uint
	Name        string
	Description string
	Category    models.ItemCategory
	BasePrice   float64
	ImageURL    string
}

type UpdateListingInput struct {
	UserID      uint
	ItemID      uint
	Name        string
	Description string
	Category    models.ItemCategory
	BasePrice   float64
	ImageURL    string
}

const (
	maxItemNameLen        = 100
	maxItemDescriptionLen = 2000
)

func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

func validateListing(name, description string, category models.ItemCategory, price float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.NewValidationError("Name is required")
	}
	if len(name) > maxItemNameLen {
		return models.NewValidationError("Name too long (max 100 characters)")
	}
	if strings.TrimSpace(description) == "" {
		return models.NewValidationError("Description is required")
	}
	if len(description) > maxItemDescriptionLen {
		return models.NewValidationError("Description too long (max 2000 characters)")
	}
	if !models.ValidCategory(category) {
		return models.NewValidationError("Unknown category")
	}
	if price <= 0 {
		return models.NewValidationError("Price must be greater than zero")
	}
	return nil
}

func (s *ItemService) CreateListing(ctx context.Context, in CreateListingInput) (*models.Item, error) {
	if err := validateListing(in.Name, in.Description, in.Category, in.BasePrice); err != nil {
		return nil, err
	}

	item := &models.Item{
		UserID:      in.UserID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    in.Category,
		BasePrice:   in.BasePrice,
		ImageURL:    in.ImageURL,
		Status:      models.ItemStatusAvailable,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Decorate(time.Now())
	return item, nil
}

func (s *ItemService) GetItem(ctx context.Context, id, viewerID uint) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id, viewerID)
	if err != nil {
		return nil, err
	}
	item.Decorate(time.Now())
	return item, nil
}

// Browse lists available items, optionally filtered by category.
func (s *ItemService) Browse(ctx context.Context, viewerID uint, category models.ItemCategory, limit, offset int) ([]models.Item, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, models.NewValidationError("Unknown category")
	}
	items, err := s.itemRepo.ListAvailable(ctx, viewerID, category, limit, offset)
	if err != nil {
		return nil, err
	}
	decorateItems(items)
	return items, nil
}

func (s *ItemService) Search(ctx context.Context, query string, viewerID uint, limit, offset int) ([]models.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	items, err := s.itemRepo.Search(ctx, query, viewerID, limit, offset)
	if err != nil {
		return nil, err
	}
	decorateItems(items)
	return items, nil
}

// ListingsOf lists another user's items as seen by viewerID.
func (s *ItemService) ListingsOf(ctx context.Context, ownerID, viewerID uint, limit, offset int) ([]models.Item, error) {
	items, err := s.itemRepo.ListByOwner(ctx, ownerID, viewerID, limit, offset)
	if err != nil {
		return nil, err
	}
	decorateItems(items)
	return items, nil
}

// LikedItems lists the items the user has liked.
func (s *ItemService) LikedItems(ctx context.Context, userID uint, limit, offset int) ([]models.Item, error) {
	items, err := s.itemRepo.LikedBy(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	decorateItems(items)
	return items, nil
}

func (s *ItemService) UpdateListing(ctx context.Context, in UpdateListingInput) (*models.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, in.ItemID, in.UserID)
	if err != nil {
		return nil, err
	}
	if item.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only edit your own listings")
	}
	if item.Status != models.ItemStatusAvailable {
		return nil, models.NewConflictError("Sold listings cannot be edited")
	}
	if err := validateListing(in.Name, in.Description, in.Category, in.BasePrice); err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(in.Name)
	item.Description = strings.TrimSpace(in.Description)
	item.Category = in.Category
	item.BasePrice = in.BasePrice
	if in.ImageURL != "" {
		item.ImageURL = in.ImageURL
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	item.Decorate(time.Now())
	return item, nil
}

func (s *ItemService) DeleteListing(ctx context.Context, userID, itemID uint) error {
	item, err := s.itemRepo.GetByID(ctx, itemID, userID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return models.NewUnauthorizedError("You can only delete your own listings")
	}
	if item.Status != models.ItemStatusAvailable {
		return models.NewConflictError("Sold listings cannot be deleted")
	}
	return s.itemRepo.Delete(ctx, itemID)
}

func decorateItems(items []models.Item) {
	now := time.Now()
	for i := range items {
		items[i].Decorate(now)
	}
}
