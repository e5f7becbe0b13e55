package usecase

import (
	"context"

	"blog/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)
}
