package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"blog/internal/domain/entity"
)

// MockCredentialVerifier is a mock implementation of service.CredentialVerifier.
type MockCredentialVerifier struct {
	mock.Mock
}

// NewMockCredentialVerifier creates a mock that asserts its expectations on test cleanup.
func NewMockCredentialVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCredentialVerifier {
	m := &MockCredentialVerifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockCredentialVerifierExpecter records expectations by method name.
type MockCredentialVerifierExpecter struct {
	mock *mock.Mock
}

func (m *MockCredentialVerifier) EXPECT() *MockCredentialVerifierExpecter {
	return &MockCredentialVerifierExpecter{mock: &m.Mock}
}

func (m *MockCredentialVerifier) Verify(ctx context.Context, token string) (*entity.IdentityClaim, error) {
	args := m.Called(ctx, token)

	claim, _ := args.Get(0).(*entity.IdentityClaim)

	return claim, args.Error(1)
}

func (e *MockCredentialVerifierExpecter) Verify(ctx, token any) *mock.Call {
	return e.mock.On("Verify", ctx, token)
}

func (m *MockCredentialVerifier) Provider() entity.ProviderType {
	args := m.Called()

	return args.Get(0).(entity.ProviderType)
}

func (e *MockCredentialVerifierExpecter) Provider() *mock.Call {
	return e.mock.On("Provider")
}
