package service

import (
	"context"

	"finbay/internal/models"
	"finbay/internal/repository"
	"finbay/internal/validation"
)

type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// UpdateProfileInput carries a profile edit. Bio is a pointer so an absent
// field and an explicit empty string (clear the bio) stay distinguishable.
type UpdateProfileInput struct {
	UserID   uint
	Username string
	Bio      *string
	Avatar   string
}

func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{userRepo: userRepo, followRepo: followRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// GetProfile returns a user with their derived rating and follow counts filled in.
func (s *UserService) GetProfile(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	average, count, err := s.userRepo.RatingSummary(ctx, id)
	if err != nil {
		return nil, err
	}
	user.ApplyRating(average, count)

	followers, following, err := s.followRepo.Counts(ctx, id)
	if err != nil {
		return nil, err
	}
	user.FollowerCount = followers
	user.FollowingCount = following

	return user, nil
}

const maxBioLen = 500

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Username != "" && in.Username != user.Username {
		if err := validation.ValidateUsername(in.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		existing, err := s.userRepo.GetByUsername(ctx, in.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, models.NewValidationError("Username already taken")
		}
		user.Username = in.Username
	}
	if in.Bio != nil {
		if len(*in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = *in.Bio
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
