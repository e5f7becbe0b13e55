package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	mockRepo "blog/internal/mocks/repository"
	"blog/internal/usecase"
)

type postServiceFixtures struct {
	service   usecase.PostUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	postRepo  *mockRepo.MockPostRepository
	txPosts   *mockRepo.MockPostRepository
}

func createTestPostService(t *testing.T) postServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	postRepo := mockRepo.NewMockPostRepository(t)
	txPosts := mockRepo.NewMockPostRepository(t)

	svc := NewPostService(PostServiceParams{
		TxManager: txManager,
		PostRepo:  postRepo,
		Logger:    newDiscardLogger(),
	})

	return postServiceFixtures{
		service:   svc,
		txManager: txManager,
		factory:   factory,
		postRepo:  postRepo,
		txPosts:   txPosts,
	}
}

// inTx routes Execute through the factory and its transaction-bound post repository.
func (fx postServiceFixtures) inTx() {
	fx.txManager.RunWith(fx.factory)
	fx.factory.EXPECT().PostRepo().Return(fx.txPosts)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestPostService_Create(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Post) bool {
		return p.UserID == 7 && p.Title == "Hello" && p.IsActive && !p.IsTrending
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Post).ID = 1
	}).Return(nil)

	post, err := fx.service.Create(ctx, 7, usecase.CreatePostInput{Title: "Hello", Content: "Body", Category: "Tech"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), post.ID)
}

func TestPostService_Create_MissingFields(t *testing.T) {
	fx := createTestPostService(t)

	_, err := fx.service.Create(context.Background(), 7, usecase.CreatePostInput{Title: "Hello"})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPostService_ListByUser(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	userID := int64(7)
	posts := []*entity.Post{{ID: 1, UserID: 7}}

	fx.postRepo.EXPECT().List(ctx, entity.PostFilter{UserID: &userID}).Return(posts, nil)

	got, err := fx.service.ListByUser(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, posts, got)
}

func TestPostService_ListTrending(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().List(ctx, mock.MatchedBy(func(f entity.PostFilter) bool {
		return f.UserID == nil && f.IsTrending != nil && !*f.IsTrending
	})).Return([]*entity.Post{}, nil)

	got, err := fx.service.ListTrending(ctx, false)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostService_Get_NotFound(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()

	fx.postRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, domainerrors.ErrPostNotFound)

	_, err := fx.service.Get(ctx, 404)

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}

func TestPostService_Update_Owner(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	fx.inTx()

	fx.txPosts.EXPECT().FindByIDForUpdate(ctx, int64(1)).
		Return(&entity.Post{ID: 1, UserID: 7, Title: "Old", Content: "Body", Category: "Tech", IsActive: true}, nil)
	fx.txPosts.EXPECT().Update(ctx, mock.MatchedBy(func(p *entity.Post) bool {
		return p.Title == "New" && p.Content == "Body" && !p.IsActive
	})).Return(nil)

	post, err := fx.service.Update(ctx, 7, 1, usecase.UpdatePostInput{Title: strPtr("New"), IsActive: boolPtr(false)})

	require.NoError(t, err)
	assert.Equal(t, "New", post.Title)
}

func TestPostService_Update_NotOwner(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	fx.inTx()

	fx.txPosts.EXPECT().FindByIDForUpdate(ctx, int64(1)).Return(&entity.Post{ID: 1, UserID: 8}, nil)

	_, err := fx.service.Update(ctx, 7, 1, usecase.UpdatePostInput{Title: strPtr("Hijack")})

	assert.ErrorIs(t, err, domainerrors.ErrPostOwnershipViolation)
	fx.txPosts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPostService_Delete_Owner(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	fx.inTx()

	fx.txPosts.EXPECT().FindByIDForUpdate(ctx, int64(1)).Return(&entity.Post{ID: 1, UserID: 7}, nil)
	fx.txPosts.EXPECT().Delete(ctx, int64(1)).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, 7, 1))
}

func TestPostService_Delete_NotOwner(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	fx.inTx()

	fx.txPosts.EXPECT().FindByIDForUpdate(ctx, int64(1)).Return(&entity.Post{ID: 1, UserID: 8}, nil)

	err := fx.service.Delete(ctx, 7, 1)

	assert.ErrorIs(t, err, domainerrors.ErrPostOwnershipViolation)
}

func TestPostService_Delete_Missing(t *testing.T) {
	fx := createTestPostService(t)
	ctx := context.Background()
	fx.inTx()

	fx.txPosts.EXPECT().FindByIDForUpdate(ctx, int64(9)).Return(nil, domainerrors.ErrPostNotFound)

	err := fx.service.Delete(ctx, 7, 9)

	assert.ErrorIs(t, err, domainerrors.ErrPostNotFound)
}
