// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a local account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// LoginInput defines the data required for a user to log in with a password.
type LoginInput struct {
	Email    string
	Password string
}

// OAuthLoginInput carries a credential issued by an external provider.
type OAuthLoginInput struct {
	Provider entity.ProviderType
	Token    string
}

// --- Output DTOs ---

// TokenOutput returns the session token issued after a successful authentication.
type TokenOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase is the single entry point for every way of signing in.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*TokenOutput, error)
	PasswordLogin(ctx context.Context, input LoginInput) (*TokenOutput, error)
	OAuthLogin(ctx context.Context, input OAuthLoginInput) (*TokenOutput, error)
}
