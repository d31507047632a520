package server

import (
	"strings"

	"finbay/internal/models"

	"github.com/gofiber/fiber/v2"
)

// All three reset endpoints accept the email in the body so the pin stays
// bound to a single account.

// ForgotPassword handles POST /api/auth/forgot-password
// @Summary Request a password reset pin
// @Description Emails a 6-digit reset pin to a registered address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string} true "Account email"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /auth/forgot-password [post]
func (s *Server) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email is required"))
	}

	if err := s.resetService.RequestPin(c.UserContext(), email); err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "A reset pin has been sent to your email",
	})
}

// VerifyPin handles POST /api/auth/verify-pin
// @Summary Verify a password reset pin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,pin=string} true "Email and pin"
// @Success 200 {object} object{valid=bool}
// @Failure 401 {object} object{error=string}
// @Router /auth/verify-pin [post]
func (s *Server) VerifyPin(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
		Pin   string `json:"pin"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.resetService.VerifyPin(c.UserContext(), strings.TrimSpace(req.Email), strings.TrimSpace(req.Pin)); err != nil {
		return models.RespondWithError(c, mapVerifyError(err), err)
	}

	return c.JSON(fiber.Map{"valid": true})
}

// ResetPassword handles POST /api/auth/reset-password
// @Summary Reset password with a verified pin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,pin=string,password=string} true "Email, pin and new password"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/reset-password [post]
func (s *Server) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Pin      string `json:"pin"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	err := s.resetService.ResetPassword(c.UserContext(),
		strings.TrimSpace(req.Email), strings.TrimSpace(req.Pin), req.Password)
	if err != nil {
		return models.RespondWithError(c, mapVerifyError(err), err)
	}

	return c.JSON(fiber.Map{"message": "Password has been reset"})
}

// mapVerifyError keeps pin failures at 401 rather than the 403 used for
// ownership checks elsewhere.
func mapVerifyError(err error) int {
	status := mapServiceError(err)
	if status == fiber.StatusForbidden {
		return fiber.StatusUnauthorized
	}
	return status
}
