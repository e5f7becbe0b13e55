package service

import (
	"context"

	"blog/internal/domain/entity"
)

// CredentialVerifier validates a credential issued by an external identity provider.
// Any failure, including provider unavailability, is reported as
// domainerrors.ErrAuthorizationFailed.
type CredentialVerifier interface {
	// Verify validates the token with the provider and returns the identity it asserts.
	Verify(ctx context.Context, token string) (*entity.IdentityClaim, error)

	// Provider returns the provider this verifier handles.
	Provider() entity.ProviderType
}
