// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"blog/internal/domain/entity"
)

// UserRepository defines the standard operations for user persistence.
// Lookups return domainerrors.ErrUserNotFound when no row matches, and Create
// returns domainerrors.ErrUserAlreadyExists when the email is already taken.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a user by email regardless of the active flag.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindActiveByEmail retrieves an active user by email.
	FindActiveByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and sets its ID and CreatedAt.
	Create(ctx context.Context, user *entity.User) error
}
