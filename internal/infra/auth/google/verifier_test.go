package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"blog/config"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
)

func newTestConfig() *config.Config {
	return &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test_client_id"}}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newVerifier(t *testing.T, validate ValidateFunc) *Verifier {
	t.Helper()

	verifier, err := NewVerifierWithValidator(newTestConfig(), validate, discardLogger())
	require.NoError(t, err)

	return verifier
}

func TestNewVerifier_RequiresClientID(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{name: "missing section", cfg: &config.Config{}},
		{name: "empty client id", cfg: &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{}}},
		{name: "blank client id", cfg: &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "  "}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			validate := func(context.Context, string, string) (*idtoken.Payload, error) {
				called = true

				return &idtoken.Payload{
					Subject:  "x",
					Audience: "some-other-app",
					Claims:   map[string]any{"email": "victim@example.com"},
				}, nil
			}

			verifier, err := NewVerifierWithValidator(tt.cfg, validate, discardLogger())

			require.Error(t, err)
			assert.Nil(t, verifier)
			assert.False(t, called)

			credentialVerifier, err := NewVerifier(tt.cfg, discardLogger())
			require.Error(t, err)
			assert.Nil(t, credentialVerifier)
		})
	}
}

func TestVerifier_Verify_EmailNotVerified(t *testing.T) {
	validate := func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "sub", Claims: map[string]any{
			"email":          "a@example.com",
			"email_verified": false,
		}}, nil
	}

	verifier := newVerifier(t, validate)
	claim, err := verifier.Verify(context.Background(), "token")

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationFailed)
}

func TestVerifier_Verify_EmailVerified(t *testing.T) {
	validate := func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "sub", Claims: map[string]any{
			"email":          "a@example.com",
			"email_verified": true,
		}}, nil
	}

	verifier := newVerifier(t, validate)
	claim, err := verifier.Verify(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claim.Email)
}

func TestVerifier_Verify_Success(t *testing.T) {
	var gotAudience string
	validate := func(_ context.Context, idToken, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		assert.Equal(t, "google-id-token", idToken)

		return &idtoken.Payload{
			Subject: "google-sub-123",
			Claims: map[string]any{
				"email":   "alice@example.com",
				"name":    "Alice",
				"picture": "https://example.com/alice.png",
			},
		}, nil
	}

	verifier := newVerifier(t, validate)
	claim, err := verifier.Verify(context.Background(), "google-id-token")

	require.NoError(t, err)
	assert.Equal(t, "test_client_id", gotAudience)
	assert.Equal(t, &entity.IdentityClaim{
		Subject:  "google-sub-123",
		Email:    "alice@example.com",
		Name:     "Alice",
		Picture:  "https://example.com/alice.png",
		Provider: entity.ProviderTypeGoogle,
	}, claim)
}

func TestVerifier_Verify_ValidationError(t *testing.T) {
	validate := func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, errors.New("idtoken: token expired")
	}

	verifier := newVerifier(t, validate)
	claim, err := verifier.Verify(context.Background(), "expired")

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationFailed)
	assert.Equal(t, "Token verification failed", err.Error())
}

func TestVerifier_Verify_NilPayload(t *testing.T) {
	validate := func(context.Context, string, string) (*idtoken.Payload, error) {
		return nil, nil
	}

	verifier := newVerifier(t, validate)
	claim, err := verifier.Verify(context.Background(), "token")

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationFailed)
}

func TestVerifier_Verify_MalformedTokenWithRealValidator(t *testing.T) {
	verifier, err := NewVerifier(newTestConfig(), discardLogger())
	require.NoError(t, err)
	claim, err := verifier.Verify(context.Background(), "not-a-jwt")

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationFailed)
}

func TestVerifier_Verify_MissingOptionalClaims(t *testing.T) {
	validate := func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "sub", Claims: map[string]any{"email": "a@example.com"}}, nil
	}

	verifier := newVerifier(t, validate)
	claim, err := verifier.Verify(context.Background(), "token")

	require.NoError(t, err)
	assert.Empty(t, claim.Name)
	assert.Empty(t, claim.Picture)
}

func TestVerifier_Verify_MissingEmail(t *testing.T) {
	validate := func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "sub", Claims: map[string]any{"name": "No Email"}}, nil
	}

	verifier := newVerifier(t, validate)
	claim, err := verifier.Verify(context.Background(), "token")

	assert.Nil(t, claim)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationFailed)
}

func TestVerifier_Provider(t *testing.T) {
	verifier, err := NewVerifier(newTestConfig(), discardLogger())
	require.NoError(t, err)

	assert.Equal(t, entity.ProviderTypeGoogle, verifier.Provider())
}
