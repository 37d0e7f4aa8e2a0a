package auth

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// NormalizeEmail lower-cases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignupRequest represents the payload for creating an account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r SignupRequest) Validate() error {
	if len(strings.TrimSpace(r.Name)) < 2 {
		return fmt.Errorf("name must be at least 2 characters")
	}
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("email address is not valid")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if !emailRegex.MatchString(r.Email) {
		return fmt.Errorf("email address is not valid")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type FindIDRequest struct {
	Name string `json:"name"`
}

func (r FindIDRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// ResetPasswordRequest is the unauthenticated recovery path. It proves
// identity only by a matching name+email pair; a known weakness carried over
// from the existing behavior.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	NewPassword string `json:"newPassword"`
}

func (r ResetPasswordRequest) Validate() error {
	if r.Email == "" || r.Name == "" || r.NewPassword == "" {
		return fmt.Errorf("email, name and newPassword are required")
	}
	if len(r.NewPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" || r.NewPassword == "" {
		return fmt.Errorf("currentPassword and newPassword are required")
	}
	if len(r.NewPassword) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
