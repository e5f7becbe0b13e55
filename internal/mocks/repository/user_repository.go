// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog/internal/domain/entity"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

// NewMockUserRepository creates a mock that asserts its expectations on test cleanup.
func NewMockUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUserRepository {
	m := &MockUserRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockUserRepositoryExpecter records expectations by method name.
type MockUserRepositoryExpecter struct {
	mock *mock.Mock
}

func (m *MockUserRepository) EXPECT() *MockUserRepositoryExpecter {
	return &MockUserRepositoryExpecter{mock: &m.Mock}
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)

	return userOrNil(args, 0), args.Error(1)
}

func (e *MockUserRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return e.mock.On("FindByID", ctx, id)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	return userOrNil(args, 0), args.Error(1)
}

func (e *MockUserRepositoryExpecter) FindByEmail(ctx, email any) *mock.Call {
	return e.mock.On("FindByEmail", ctx, email)
}

func (m *MockUserRepository) FindActiveByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)

	return userOrNil(args, 0), args.Error(1)
}

func (e *MockUserRepositoryExpecter) FindActiveByEmail(ctx, email any) *mock.Call {
	return e.mock.On("FindActiveByEmail", ctx, email)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (e *MockUserRepositoryExpecter) Create(ctx, user any) *mock.Call {
	return e.mock.On("Create", ctx, user)
}

func userOrNil(args mock.Arguments, i int) *entity.User {
	if u, ok := args.Get(i).(*entity.User); ok {
		return u
	}

	return nil
}
