package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix        = "user:%d"
	ItemKeyPrefix        = "item:%d"
	SellerStatsKeyPrefix = "seller:%d:stats"
	RatingKeyPrefix      = "user:%d:rating"
)

const (
	UserTTL        = 5 * time.Minute
	ItemTTL        = 10 * time.Minute
	SellerStatsTTL = 2 * time.Minute
	RatingTTL      = 5 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func ItemKey(itemID uint) string {
	return fmt.Sprintf(ItemKeyPrefix, itemID)
}

func SellerStatsKey(sellerID uint) string {
	return fmt.Sprintf(SellerStatsKeyPrefix, sellerID)
}

func RatingKey(userID uint) string {
	return fmt.Sprintf(RatingKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, RatingKey(userID))
}

func InvalidateItem(ctx context.Context, itemID uint) {
	Invalidate(ctx, ItemKey(itemID))
}

func InvalidateSellerStats(ctx context.Context, sellerID uint) {
	Invalidate(ctx, SellerStatsKey(sellerID))
}
