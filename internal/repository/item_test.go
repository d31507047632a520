package repository

import (
	"context"
	"testing"

	"finbay/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepository_GetByID(t *testing.T) {
	items := NewItemRepository(testDB)
	likes := NewLikeRepository(testDB)
	ctx := context.Background()

	owner := createTestUser(t)
	viewer := createTestUser(t)
	item := createTestItem(t, owner.ID, 6.50)

	_, err := likes.Like(ctx, viewer.ID, item.ID)
	require.NoError(t, err)

	got, err := items.GetByID(ctx, item.ID, viewer.ID)
	require.NoError(t, err)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, 1, got.LikesCount)
	assert.True(t, got.Liked)
	assert.Equal(t, owner.Username, got.User.Username)

	// Anonymous viewer sees the count but no liked flag
	got, err = items.GetByID(ctx, item.ID, 0)
	require.NoError(t, err)
	assert.False(t, got.Liked)
	assert.Equal(t, 1, got.LikesCount)
}

func TestItemRepository_GetByID_NotFound(t *testing.T) {
	items := NewItemRepository(testDB)

	_, err := items.GetByID(context.Background(), 99999999, 0)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestItemRepository_ListAvailable_ExcludesSold(t *testing.T) {
	items := NewItemRepository(testDB)
	txns := NewTransactionRepository(testDB)
	ctx := context.Background()

	seller := createTestUser(t)
	buyer := createTestUser(t)
	kept := createTestItem(t, seller.ID, 10.00)
	sold := createTestItem(t, seller.ID, 11.00)

	_, err := txns.PurchaseItem(ctx, buyer.ID, sold.ID)
	require.NoError(t, err)

	got, err := items.ListByOwner(ctx, seller.ID, 0, 50, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	available, err := items.ListAvailable(ctx, 0, "", 1000, 0)
	require.NoError(t, err)
	ids := make(map[uint]bool, len(available))
	for _, it := range available {
		ids[it.ID] = true
	}
	assert.True(t, ids[kept.ID])
	assert.False(t, ids[sold.ID])
}

func TestItemRepository_Search(t *testing.T) {
	items := NewItemRepository(testDB)
	ctx := context.Background()

	owner := createTestUser(t)
	item := &models.Item{
		UserID:      owner.ID,
		Name:        "Majestic Betta Splendens",
		Description: "Crowntail male with vivid blue fins",
		Category:    models.CategoryFish,
		BasePrice:   25.00,
	}
	require.NoError(t, items.Create(ctx, item))

	got, err := items.Search(ctx, "BETTA", 0, 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	found := false
	for _, it := range got {
		if it.ID == item.ID {
			found = true
		}
	}
	assert.True(t, found)

	// Description matches too
	got, err = items.Search(ctx, "vivid blue", 0, 10, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestItemRepository_DeleteRemovesLikeEdges(t *testing.T) {
	items := NewItemRepository(testDB)
	likes := NewLikeRepository(testDB)
	ctx := context.Background()

	owner := createTestUser(t)
	liker := createTestUser(t)
	item := createTestItem(t, owner.ID, 7.00)

	_, err := likes.Like(ctx, liker.ID, item.ID)
	require.NoError(t, err)

	require.NoError(t, items.Delete(ctx, item.ID))

	var edges int64
	require.NoError(t, testDB.Model(&models.Like{}).
		Where("item_id = ?", item.ID).
		Count(&edges).Error)
	assert.Zero(t, edges)
}
