package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// CreatePostInput defines the data required to publish a post.
type CreatePostInput struct {
	Title    string
	Content  string
	Category string
	Image    string
}

// UpdatePostInput holds optional changes to a post. Nil fields are left untouched.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	Category   *string
	Image      *string
	IsActive   *bool
	IsTrending *bool
}

// PostUsecase defines post management operations.
type PostUsecase interface {
	Create(ctx context.Context, userID int64, input CreatePostInput) (*entity.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Post, error)
	ListTrending(ctx context.Context, isTrending bool) ([]*entity.Post, error)
	Get(ctx context.Context, id int64) (*entity.Post, error)
	Update(ctx context.Context, userID, id int64, input UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, userID, id int64) error
}
