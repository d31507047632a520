package service

import (
	"context"
	"errors"
	"testing"

	"finbay/internal/models"
)

func TestUserService_GetProfile(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 1, Username: "finn"}, nil
	}
	users.ratingSummaryFn = func(context.Context, uint) (float64, int64, error) {
		return 4.26, 4, nil
	}
	follows := noopFollowRepo()
	follows.countsFn = func(context.Context, uint) (int64, int64, error) {
		return 12, 3, nil
	}

	svc := NewUserService(users, follows)

	user, err := svc.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Rating != "4.3" {
		t.Fatalf("rating = %q, want one decimal place", user.Rating)
	}
	if user.Ratings != 4 {
		t.Fatalf("ratings = %d, want 4", user.Ratings)
	}
	if user.FollowerCount != 12 || user.FollowingCount != 3 {
		t.Fatalf("counts = %d/%d, want 12/3", user.FollowerCount, user.FollowingCount)
	}
}

func TestUserService_GetProfile_NoReviews(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 1, Username: "finn"}, nil
	}

	svc := NewUserService(users, noopFollowRepo())

	user, err := svc.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Rating != models.NoReviewsSentinel {
		t.Fatalf("rating = %q, want sentinel", user.Rating)
	}
}

func TestUserService_UpdateProfile_BadUsername(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 1, Username: "finn"}, nil
	}

	svc := NewUserService(users, noopFollowRepo())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Username: "-bad-"})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUserService_UpdateProfile_UsernameTaken(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 1, Username: "finn"}, nil
	}
	users.getByUsernameFn = func(context.Context, string) (*models.User, error) {
		return &models.User{ID: 2, Username: "gill"}, nil
	}

	svc := NewUserService(users, noopFollowRepo())

	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Username: "gill"})
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	var saved *models.User
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 1, Username: "finn", Bio: "old"}, nil
	}
	users.updateFn = func(_ context.Context, u *models.User) error {
		saved = u
		return nil
	}

	svc := NewUserService(users, noopFollowRepo())

	bio := "Keeper of bettas"
	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Bio: &bio})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved == nil || user.Bio != "Keeper of bettas" {
		t.Fatalf("bio not updated: %+v", user)
	}
}

func TestUserService_UpdateProfile_ClearsBio(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 1, Username: "finn", Bio: "old"}, nil
	}

	svc := NewUserService(users, noopFollowRepo())

	empty := ""
	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Bio: &empty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Bio != "" {
		t.Fatalf("bio = %q, want cleared", user.Bio)
	}
}

func TestUserService_UpdateProfile_OmittedBioKept(t *testing.T) {
	users := noopUserRepo()
	users.getByIDFn = func(context.Context, uint) (*models.User, error) {
		return &models.User{ID: 1, Username: "finn", Bio: "old"}, nil
	}

	svc := NewUserService(users, noopFollowRepo())

	user, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Avatar: "/media/a.jpg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Bio != "old" {
		t.Fatalf("bio = %q, want untouched", user.Bio)
	}
}
