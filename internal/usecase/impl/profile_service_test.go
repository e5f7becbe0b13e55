package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	mockRepo "blog/internal/mocks/repository"
)

func TestProfileService_GetProfile_StripsPasswordHash(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewProfileService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(3)).
		Return(&entity.User{ID: 3, Email: "a@example.com", PasswordHash: "secret-hash"}, nil)

	user, err := svc.GetProfile(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, "a@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	svc := NewProfileService(userRepo, newDiscardLogger())
	ctx := context.Background()

	userRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, domainerrors.ErrUserNotFound)

	_, err := svc.GetProfile(ctx, 404)

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
