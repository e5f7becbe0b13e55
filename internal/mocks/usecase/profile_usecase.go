package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog/internal/domain/entity"
)

// MockProfileUsecase is a mock implementation of usecase.ProfileUsecase.
type MockProfileUsecase struct {
	mock.Mock
}

// NewMockProfileUsecase creates a mock that asserts its expectations on test cleanup.
func NewMockProfileUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProfileUsecase {
	m := &MockProfileUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockProfileUsecaseExpecter records expectations by method name.
type MockProfileUsecaseExpecter struct {
	mock *mock.Mock
}

func (m *MockProfileUsecase) EXPECT() *MockProfileUsecaseExpecter {
	return &MockProfileUsecaseExpecter{mock: &m.Mock}
}

func (m *MockProfileUsecase) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	args := m.Called(ctx, userID)

	user, _ := args.Get(0).(*entity.User)

	return user, args.Error(1)
}

func (e *MockProfileUsecaseExpecter) GetProfile(ctx, userID any) *mock.Call {
	return e.mock.On("GetProfile", ctx, userID)
}
