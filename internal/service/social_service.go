package service

import (
	"context"

	"finbay/internal/models"
	"finbay/internal/repository"
)

// SocialService manages the like and follow graphs.
type SocialService struct {
	likeRepo   repository.LikeRepository
	followRepo repository.FollowRepository
	itemRepo   repository.ItemRepository
	userRepo   repository.UserRepository
}

func NewSocialService(
	likeRepo repository.LikeRepository,
	followRepo repository.FollowRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) *SocialService {
	return &SocialService{
		likeRepo:   likeRepo,
		followRepo: followRepo,
		itemRepo:   itemRepo,
		userRepo:   userRepo,
	}
}

// LikeItem records a like and returns the item's current like count.
// Liking twice is a no-op, never an error.
func (s *SocialService) LikeItem(ctx context.Context, userID, itemID uint) (int64, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID, userID); err != nil {
		return 0, err
	}
	if _, err := s.likeRepo.Like(ctx, userID, itemID); err != nil {
		return 0, err
	}
	return s.likeRepo.CountForItem(ctx, itemID)
}

// UnlikeItem removes a like and returns the item's current like count.
func (s *SocialService) UnlikeItem(ctx context.Context, userID, itemID uint) (int64, error) {
	if _, err := s.itemRepo.GetByID(ctx, itemID, userID); err != nil {
		return 0, err
	}
	if err := s.likeRepo.Unlike(ctx, userID, itemID); err != nil {
		return 0, err
	}
	return s.likeRepo.CountForItem(ctx, itemID)
}

// FollowUser records a follow edge. Self-follows are rejected; following an
// already-followed user is a no-op.
func (s *SocialService) FollowUser(ctx context.Context, followerID, followeeID uint) error {
	if followerID == followeeID {
		return models.NewValidationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	_, err := s.followRepo.Follow(ctx, followerID, followeeID)
	return err
}

func (s *SocialService) UnfollowUser(ctx context.Context, followerID, followeeID uint) error {
	if followerID == followeeID {
		return models.NewValidationError("You cannot unfollow yourself")
	}
	return s.followRepo.Unfollow(ctx, followerID, followeeID)
}

func (s *SocialService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followeeID)
}

func (s *SocialService) Followers(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Followers(ctx, userID, limit, offset)
}

func (s *SocialService) Following(ctx context.Context, userID uint, limit, offset int) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.followRepo.Following(ctx, userID, limit, offset)
}
