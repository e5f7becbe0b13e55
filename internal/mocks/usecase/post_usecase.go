package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog/internal/domain/entity"
	domainusecase "blog/internal/usecase"
)

// MockPostUsecase is a mock implementation of usecase.PostUsecase.
type MockPostUsecase struct {
	mock.Mock
}

// NewMockPostUsecase creates a mock that asserts its expectations on test cleanup.
func NewMockPostUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPostUsecase {
	m := &MockPostUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPostUsecaseExpecter records expectations by method name.
type MockPostUsecaseExpecter struct {
	mock *mock.Mock
}

func (m *MockPostUsecase) EXPECT() *MockPostUsecaseExpecter {
	return &MockPostUsecaseExpecter{mock: &m.Mock}
}

func (m *MockPostUsecase) Create(ctx context.Context, userID int64, input domainusecase.CreatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, userID, input)

	return postOrNil(args, 0), args.Error(1)
}

func (e *MockPostUsecaseExpecter) Create(ctx, userID, input any) *mock.Call {
	return e.mock.On("Create", ctx, userID, input)
}

func (m *MockPostUsecase) ListByUser(ctx context.Context, userID int64) ([]*entity.Post, error) {
	args := m.Called(ctx, userID)

	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (e *MockPostUsecaseExpecter) ListByUser(ctx, userID any) *mock.Call {
	return e.mock.On("ListByUser", ctx, userID)
}

func (m *MockPostUsecase) ListTrending(ctx context.Context, isTrending bool) ([]*entity.Post, error) {
	args := m.Called(ctx, isTrending)

	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (e *MockPostUsecaseExpecter) ListTrending(ctx, isTrending any) *mock.Call {
	return e.mock.On("ListTrending", ctx, isTrending)
}

func (m *MockPostUsecase) Get(ctx context.Context, id int64) (*entity.Post, error) {
	args := m.Called(ctx, id)

	return postOrNil(args, 0), args.Error(1)
}

func (e *MockPostUsecaseExpecter) Get(ctx, id any) *mock.Call {
	return e.mock.On("Get", ctx, id)
}

func (m *MockPostUsecase) Update(ctx context.Context, userID, id int64, input domainusecase.UpdatePostInput) (*entity.Post, error) {
	args := m.Called(ctx, userID, id, input)

	return postOrNil(args, 0), args.Error(1)
}

func (e *MockPostUsecaseExpecter) Update(ctx, userID, id, input any) *mock.Call {
	return e.mock.On("Update", ctx, userID, id, input)
}

func (m *MockPostUsecase) Delete(ctx context.Context, userID, id int64) error {
	args := m.Called(ctx, userID, id)

	return args.Error(0)
}

func (e *MockPostUsecaseExpecter) Delete(ctx, userID, id any) *mock.Call {
	return e.mock.On("Delete", ctx, userID, id)
}

func postOrNil(args mock.Arguments, idx int) *entity.Post {
	post, _ := args.Get(idx).(*entity.Post)

	return post
}
