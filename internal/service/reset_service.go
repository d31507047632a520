package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"finbay/internal/mail"
	"finbay/internal/middleware"
	"finbay/internal/models"
	"finbay/internal/repository"
	"finbay/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// ResetService runs the pin-based password reset flow: request a pin by
// email, verify it, then set a new password. Only the most recently issued
// pin is ever accepted.
type ResetService struct {
	userRepo repository.UserRepository
	pinRepo  repository.PinRepository
	mailer   mail.Mailer
}

func NewResetService(userRepo repository.UserRepository, pinRepo repository.PinRepository, mailer mail.Mailer) *ResetService {
	return &ResetService{userRepo: userRepo, pinRepo: pinRepo, mailer: mailer}
}

// generatePin returns a random six-digit code with no leading zero.
func generatePin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// RequestPin issues a fresh pin and mails it. Older pins stay on record;
// only the newest one verifies.
func (s *ResetService) RequestPin(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewValidationError("No account with that email")
	}

	code, err := generatePin()
	if err != nil {
		return models.NewInternalError(err)
	}

	pin := &models.PasswordPin{UserID: user.ID, Code: code}
	if err := s.pinRepo.Create(ctx, pin); err != nil {
		return err
	}
	middleware.PinsIssuedTotal.Inc()

	if err := s.mailer.SendResetPin(ctx, user.Email, user.Username, code); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// VerifyPin checks the submitted code against the most recently issued pin.
func (s *ResetService) VerifyPin(ctx context.Context, email, code string) error {
	if err := validation.ValidatePin(code); err != nil {
		return models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewUnauthorizedError("Invalid pin")
	}

	pin, err := s.pinRepo.LatestForUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if pin == nil || pin.Code != code || pin.UsedAt != nil {
		return models.NewUnauthorizedError("Invalid pin")
	}
	return nil
}

// ResetPassword re-verifies the pin, stores the new password hash, and
// consumes the pin so it cannot be replayed.
func (s *ResetService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.VerifyPin(ctx, email, code); err != nil {
		return err
	}
	if err := validation.ValidatePassword(newPassword); err != nil {
		return models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewUnauthorizedError("Invalid pin")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return models.NewInternalError(err)
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, string(hashed)); err != nil {
		return err
	}

	pin, err := s.pinRepo.LatestForUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if pin != nil {
		if err := s.pinRepo.MarkUsed(ctx, pin.ID); err != nil {
			return err
		}
	}
	return nil
}
