package server

import (
	"finbay/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LikeItem handles POST /api/items/:id/like
// @Summary Like a listing
// @Description Idempotent; returns the current like count
// @Tags social
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} object{liked=bool,likes_count=int}
// @Failure 404 {object} object{error=string}
// @Router /items/{id}/like [post]
func (s *Server) LikeItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	itemID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.socialService.LikeItem(c.Context(), userID, itemID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"liked":       true,
		"likes_count": count,
	})
}

// UnlikeItem handles DELETE /api/items/:id/like
func (s *Server) UnlikeItem(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	itemID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	count, err := s.socialService.UnlikeItem(c.Context(), userID, itemID)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"liked":       false,
		"likes_count": count,
	})
}

// FollowUser handles POST /api/users/:id/follow
// @Summary Follow a user
// @Description Idempotent; following twice is a no-op
// @Tags social
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{following=bool}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id}/follow [post]
func (s *Server) FollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.FollowUser(c.Context(), userID, targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"following": true})
}

// UnfollowUser handles DELETE /api/users/:id/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.socialService.UnfollowUser(c.Context(), userID, targetID); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{"following": false})
}

// GetFollowers handles GET /api/users/:id/followers
func (s *Server) GetFollowers(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	users, err := s.socialService.Followers(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(users)
}

// GetFollowing handles GET /api/users/:id/following
func (s *Server) GetFollowing(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	page := parsePagination(c, 50)

	users, err := s.socialService.Following(c.Context(), id, page.Limit, page.Offset)
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(users)
}
