package entity

// ProviderType identifies the external identity provider behind a credential.
type ProviderType string

const (
	// ProviderTypeNone marks local (email/password) credentials.
	ProviderTypeNone     ProviderType = ""
	ProviderTypeGoogle   ProviderType = "google"
	ProviderTypeFacebook ProviderType = "facebook"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// IdentityClaim is the normalized identity extracted from a credential before it is
// matched against a stored user. It is never persisted.
type IdentityClaim struct {
	Subject  string       // Provider-assigned subject id.
	Email    string
	Name     string
	Picture  string
	Provider ProviderType // Empty for registration.
}
