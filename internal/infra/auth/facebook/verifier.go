// Package facebook verifies Facebook user access tokens against the Graph API.
package facebook

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"blog/config"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
)

const (
	defaultGraphURL = "https://graph.facebook.com"
	defaultTimeout  = 10 * time.Second

	profileFields = "id,name,email,picture"
)

// profile is the subset of the Graph API /me response the verifier needs.
type profile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

func (p *profile) complete() bool {
	return p.ID != "" && p.Name != "" && p.Email != "" && p.Picture.Data.URL != ""
}

// Verifier implements service.CredentialVerifier for Facebook access tokens.
type Verifier struct {
	client *resty.Client
	logger *slog.Logger
}

// NewVerifier creates a verifier talking to facebook.graphUrl.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.CredentialVerifier {
	graphURL, timeout := defaultGraphURL, defaultTimeout
	if cfg.Facebook != nil {
		if cfg.Facebook.GraphURL != "" {
			graphURL = cfg.Facebook.GraphURL
		}
		if cfg.Facebook.Timeout > 0 {
			timeout = cfg.Facebook.Timeout
		}
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(graphURL, "/")).
		SetTimeout(timeout)

	return &Verifier{client: client, logger: logger}
}

// Verify fetches the token owner's profile. The token is never retried.
func (v *Verifier) Verify(ctx context.Context, token string) (*entity.IdentityClaim, error) {
	var p profile
	resp, err := v.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       profileFields,
			"access_token": token,
		}).
		ForceContentType("application/json").
		SetResult(&p).
		Get("/me")
	if err != nil {
		v.logger.WarnContext(ctx, "Facebook Graph request failed", slog.Any("error", err))

		return nil, domainerrors.ErrAuthorizationFailed.WithMessage("Invalid Facebook access token")
	}
	if resp.IsError() {
		v.logger.WarnContext(ctx, "Facebook rejected access token", slog.Int("status", resp.StatusCode()))

		return nil, domainerrors.ErrAuthorizationFailed.WithMessage("Invalid Facebook access token")
	}

	if !p.complete() {
		return nil, domainerrors.ErrAuthorizationFailed.WithMessage("Missing required fields in Facebook profile")
	}

	return &entity.IdentityClaim{
		Subject:  p.ID,
		Email:    p.Email,
		Name:     p.Name,
		Picture:  p.Picture.Data.URL,
		Provider: entity.ProviderTypeFacebook,
	}, nil
}

// Provider returns the OAuth provider type
func (v *Verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeFacebook
}
