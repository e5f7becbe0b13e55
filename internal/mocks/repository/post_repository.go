package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog/internal/domain/entity"
)

// MockPostRepository is a mock implementation of repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

// NewMockPostRepository creates a mock that asserts its expectations on test cleanup.
func NewMockPostRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPostRepository {
	m := &MockPostRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPostRepositoryExpecter records expectations by method name.
type MockPostRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockPostRepository) EXPECT() *MockPostRepositoryExpecter {
	return &MockPostRepositoryExpecter{mock: &m.Mock}
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (e *MockPostRepositoryExpecter) Create(ctx, post any) *mock.Call {
	return e.mock.On("Create", ctx, post)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	args := m.Called(ctx, id)

	return postOrNil(args, 0), args.Error(1)
}

func (e *MockPostRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (m *MockPostRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Post, error) {
	args := m.Called(ctx, id)

	return postOrNil(args, 0), args.Error(1)
}

func (e *MockPostRepositoryExpecter) FindByIDForUpdate(ctx, id any) *mock.Call {
	return e.mock.On("FindByIDForUpdate", ctx, id)
}

func (m *MockPostRepository) List(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	args := m.Called(ctx, filter)

	posts, _ := args.Get(0).([]*entity.Post)

	return posts, args.Error(1)
}

func (e *MockPostRepositoryExpecter) List(ctx, filter any) *mock.Call {
	return e.mock.On("List", ctx, filter)
}

func (m *MockPostRepository) Update(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (e *MockPostRepositoryExpecter) Update(ctx, post any) *mock.Call {
	return e.mock.On("Update", ctx, post)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (e *MockPostRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return e.mock.On("Delete", ctx, id)
}

func postOrNil(args mock.Arguments, i int) *entity.Post {
	if p, ok := args.Get(i).(*entity.Post); ok {
		return p
	}

	return nil
}
