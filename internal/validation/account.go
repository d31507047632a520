// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
)

// Password length bounds for signup and reset.
const (
	PasswordMinLen = 8
	PasswordMaxLen = 30
)

// ValidatePassword checks if a password meets the account policy.
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLen {
		return fmt.Errorf("password must be at least %d characters long", PasswordMinLen)
	}

	if len(password) > PasswordMaxLen {
		return fmt.Errorf("password must not exceed %d characters", PasswordMaxLen)
	}

	return nil
}

// ValidateUsername checks if a username meets requirements
func ValidateUsername(username string) error {
	if len(username) < 1 {
		return fmt.Errorf("username is required")
	}

	if len(username) > 20 {
		return fmt.Errorf("username must not exceed 20 characters")
	}

	// Only allow alphanumeric and underscores
	if !regexp.MustCompile(`^[a-zA-Z0-9_-]+$`).MatchString(username) {
		return fmt.Errorf("username can only contain letters, numbers, underscores, and hyphens")
	}

	// Cannot start or end with underscore/hyphen
	if username[0] == '_' || username[0] == '-' || username[len(username)-1] == '_' || username[len(username)-1] == '-' {
		return fmt.Errorf("username cannot start or end with underscore or hyphen")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	// Simple email validation - regex approach
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidatePin checks that a reset pin candidate is exactly six digits.
func ValidatePin(pin string) error {
	if !regexp.MustCompile(`^[0-9]{6}$`).MatchString(pin) {
		return fmt.Errorf("pin must be a six-digit code")
	}
	return nil
}
