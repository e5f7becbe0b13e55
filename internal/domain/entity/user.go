// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a single account.
// Accounts created through a social provider carry no password hash.
type User struct {
	ID               int64            // Assigned by persistence on creation.
	Email            string           // Unique across all accounts, regardless of how they sign in.
	Name             string           // The user's display name.
	PasswordHash     string           // bcrypt hash; empty for OAuth-only accounts.
	Provider         ProviderType     // The provider that created the account, empty for local registration.
	ProviderID       string           // The provider's subject id for the account.
	ProfileImageLink string           // Avatar URL reported by the provider, if any.
	IsActive         bool             // Inactive accounts cannot log in with a password.
	SubscriptionType SubscriptionType // The account's subscription tier.
	SubscriptionEnd  *time.Time       // Expiry of a paid tier; nil when not applicable.
	CreatedAt        time.Time
}

// HasPassword reports whether the account can authenticate with local credentials.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}

// SubscriptionType enumerates the subscription tiers.
type SubscriptionType string

const (
	SubscriptionFree       SubscriptionType = "FREE"
	SubscriptionPremium    SubscriptionType = "PREMIUM"
	SubscriptionEnterprise SubscriptionType = "ENTERPRISE"
)

// IsValid checks if the SubscriptionType is a known tier.
func (s SubscriptionType) IsValid() bool {
	switch s {
	case SubscriptionFree, SubscriptionPremium, SubscriptionEnterprise:
		return true
	default:
		return false
	}
}
