package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	domainusecase "blog/internal/usecase"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

// NewMockAuthUsecase creates a mock that asserts its expectations on test cleanup.
func NewMockAuthUsecase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAuthUsecase {
	m := &MockAuthUsecase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockAuthUsecaseExpecter records expectations by method name.
type MockAuthUsecaseExpecter struct {
	mock *mock.Mock
}

func (m *MockAuthUsecase) EXPECT() *MockAuthUsecaseExpecter {
	return &MockAuthUsecaseExpecter{mock: &m.Mock}
}

func (m *MockAuthUsecase) Register(ctx context.Context, input domainusecase.RegisterInput) (*domainusecase.TokenOutput, error) {
	args := m.Called(ctx, input)

	return tokenOrNil(args, 0), args.Error(1)
}

func (e *MockAuthUsecaseExpecter) Register(ctx, input any) *mock.Call {
	return e.mock.On("Register", ctx, input)
}

func (m *MockAuthUsecase) PasswordLogin(ctx context.Context, input domainusecase.LoginInput) (*domainusecase.TokenOutput, error) {
	args := m.Called(ctx, input)

	return tokenOrNil(args, 0), args.Error(1)
}

func (e *MockAuthUsecaseExpecter) PasswordLogin(ctx, input any) *mock.Call {
	return e.mock.On("PasswordLogin", ctx, input)
}

func (m *MockAuthUsecase) OAuthLogin(ctx context.Context, input domainusecase.OAuthLoginInput) (*domainusecase.TokenOutput, error) {
	args := m.Called(ctx, input)

	return tokenOrNil(args, 0), args.Error(1)
}

func (e *MockAuthUsecaseExpecter) OAuthLogin(ctx, input any) *mock.Call {
	return e.mock.On("OAuthLogin", ctx, input)
}

func tokenOrNil(args mock.Arguments, idx int) *domainusecase.TokenOutput {
	out, _ := args.Get(idx).(*domainusecase.TokenOutput)

	return out
}
