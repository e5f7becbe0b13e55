package repository

import (
	"context"

	"blog/internal/domain/entity"
)

// PostRepository defines persistence operations for posts.
// Reads return domainerrors.ErrPostNotFound when no row matches.
type PostRepository interface {
	// Create persists a new post and sets its ID and timestamps.
	Create(ctx context.Context, post *entity.Post) error

	// FindByID retrieves a post with its author.
	FindByID(ctx context.Context, id int64) (*entity.Post, error)

	// FindByIDForUpdate retrieves a post and locks the row for the remainder of the transaction.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Post, error)

	// List returns active posts matching the filter, newest first, with their authors.
	List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error)

	// Update saves the mutable fields of an existing post.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post by ID.
	Delete(ctx context.Context, id int64) error
}
