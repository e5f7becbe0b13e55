// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
)

const defaultBcryptCost = 10

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy *config.PasswordStrengthConfig // nil disables strength checks
}

// NewBcryptHasher builds the hasher from auth.bcryptCost and the passwordStrength section.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost, cfg.PasswordStrength)
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost factor and policy.
func NewBcryptHasherWithCost(cost int, policy *config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WithDetails(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	return err == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if h.policy == nil {
		return nil
	}

	length := len([]rune(password))
	switch {
	case h.policy.MinLength > 0 && length < h.policy.MinLength:
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at least %d characters long", h.policy.MinLength))
	case h.policy.MaxLength > 0 && length > h.policy.MaxLength:
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("must be at most %d characters long", h.policy.MaxLength))
	case h.policy.RequireLowercase && !h.hasLowercase(password):
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one lowercase letter")
	case h.policy.RequireUppercase && !h.hasUppercase(password):
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one uppercase letter")
	case h.policy.RequireNumbers && !h.hasNumbers(password):
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one number")
	case h.policy.RequireSpecial && !h.hasSpecialChars(password):
		return domainerrors.ErrPasswordStrength.WithDetails("must contain at least one special character")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}

	return false
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}

	return false
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}

	return false
}
