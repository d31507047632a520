package service

import (
	"context"
	"errors"
	"testing"

	"finbay/internal/models"
)

func TestSocialService_FollowUser_SelfFollow(t *testing.T) {
	svc := NewSocialService(noopLikeRepo(), noopFollowRepo(), noopItemRepo(), noopUserRepo())

	err := svc.FollowUser(context.Background(), 1, 1)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestSocialService_FollowUser_UnknownFollowee(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return nil, models.NewNotFoundError("User", id)
	}

	svc := NewSocialService(noopLikeRepo(), noopFollowRepo(), noopItemRepo(), users)

	err := svc.FollowUser(context.Background(), 1, 2)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestSocialService_FollowUser_RepeatIsNoop(t *testing.T) {
	follows := noopFollowRepo()
	follows.followFn = func(context.Context, uint, uint) (bool, error) {
		// Edge already existed
		return false, nil
	}

	svc := NewSocialService(noopLikeRepo(), follows, noopItemRepo(), noopUserRepo())

	if err := svc.FollowUser(context.Background(), 1, 2); err != nil {
		t.Fatalf("repeated follow should not error: %v", err)
	}
}

func TestSocialService_LikeItem_ReturnsCount(t *testing.T) {
	likes := noopLikeRepo()
	likes.countForItemFn = func(context.Context, uint) (int64, error) { return 3, nil }

	svc := NewSocialService(likes, noopFollowRepo(), noopItemRepo(), noopUserRepo())

	count, err := svc.LikeItem(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}
}

func TestSocialService_LikeItem_UnknownItem(t *testing.T) {
	items := noopItemRepo()
	items.getByIDFn = func(_ context.Context, id, _ uint) (*models.Item, error) {
		return nil, models.NewNotFoundError("Item", id)
	}

	svc := NewSocialService(noopLikeRepo(), noopFollowRepo(), items, noopUserRepo())

	_, err := svc.LikeItem(context.Background(), 1, 99)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestSocialService_UnlikeItem(t *testing.T) {
	unliked := false
	likes := noopLikeRepo()
	likes.unlikeFn = func(context.Context, uint, uint) error {
		unliked = true
		return nil
	}

	svc := NewSocialService(likes, noopFollowRepo(), noopItemRepo(), noopUserRepo())

	if _, err := svc.UnlikeItem(context.Background(), 1, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !unliked {
		t.Fatal("unlike was not delegated to the repository")
	}
}
