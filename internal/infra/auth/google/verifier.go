// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/api/idtoken"

	"blog/config"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/errors"
)

// ValidateFunc checks an ID token's signature, expiry and audience.
type ValidateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Verifier implements service.CredentialVerifier for Google ID tokens.
type Verifier struct {
	clientID string
	validate ValidateFunc
	logger   *slog.Logger
}

// NewVerifier creates a verifier whose audience is googleOAuth.clientId.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.CredentialVerifier, error) {
	verifier, err := NewVerifierWithValidator(cfg, idtoken.Validate, logger)
	if err != nil {
		return nil, err
	}

	return verifier, nil
}

// NewVerifierWithValidator creates a verifier around a custom validation function.
// An empty client id is rejected: idtoken skips the audience check for "".
func NewVerifierWithValidator(cfg *config.Config, validate ValidateFunc, logger *slog.Logger) (*Verifier, error) {
	if cfg.GoogleOAuth == nil || strings.TrimSpace(cfg.GoogleOAuth.ClientID) == "" {
		return nil, errors.New("google oauth client id must be provided")
	}

	return &Verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: validate,
		logger:   logger,
	}, nil
}

// Verify validates the ID token with Google and returns the identity it carries.
func (v *Verifier) Verify(ctx context.Context, token string) (*entity.IdentityClaim, error) {
	payload, err := v.validate(ctx, token, v.clientID)
	if err != nil || payload == nil {
		v.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrAuthorizationFailed.WithMessage("Token verification failed")
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		v.logger.WarnContext(ctx, "Google ID token email not verified", slog.String("subject", payload.Subject))

		return nil, domainerrors.ErrAuthorizationFailed.WithMessage("Token verification failed")
	}

	claim := &entity.IdentityClaim{
		Subject:  payload.Subject,
		Email:    stringClaim(payload.Claims, "email"),
		Name:     stringClaim(payload.Claims, "name"),
		Picture:  stringClaim(payload.Claims, "picture"),
		Provider: entity.ProviderTypeGoogle,
	}
	// Accounts are matched by email, so a token without one cannot sign anyone in.
	if claim.Email == "" {
		v.logger.WarnContext(ctx, "Google ID token has no email claim", slog.String("subject", claim.Subject))

		return nil, domainerrors.ErrAuthorizationFailed.WithMessage("Token verification failed")
	}

	v.logger.DebugContext(ctx, "Google ID token verified",
		slog.String("subject", claim.Subject),
		slog.String("email", claim.Email))

	return claim, nil
}

// Provider returns the OAuth provider type
func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func stringClaim(claims map[string]any, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}

	return ""
}
