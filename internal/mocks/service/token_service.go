package service

import (
	"github.com/stretchr/testify/mock"

	domainservice "blog/internal/domain/service"
)

// MockTokenService is a mock implementation of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock that asserts its expectations on test cleanup.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTokenServiceExpecter records expectations by method name.
type MockTokenServiceExpecter struct {
	mock *mock.Mock
}

func (m *MockTokenService) EXPECT() *MockTokenServiceExpecter {
	return &MockTokenServiceExpecter{mock: &m.Mock}
}

func (m *MockTokenService) IssueToken(userID int64, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (e *MockTokenServiceExpecter) IssueToken(userID, email any) *mock.Call {
	return e.mock.On("IssueToken", userID, email)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*domainservice.Claims, error) {
	args := m.Called(tokenString)

	claims, _ := args.Get(0).(*domainservice.Claims)

	return claims, args.Error(1)
}

func (e *MockTokenServiceExpecter) ValidateToken(tokenString any) *mock.Call {
	return e.mock.On("ValidateToken", tokenString)
}
