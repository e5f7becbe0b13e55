// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock that asserts its expectations on test cleanup.
func NewMockPasswordHasher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPasswordHasherExpecter records expectations by method name.
type MockPasswordHasherExpecter struct {
	mock *mock.Mock
}

func (m *MockPasswordHasher) EXPECT() *MockPasswordHasherExpecter {
	return &MockPasswordHasherExpecter{mock: &m.Mock}
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (e *MockPasswordHasherExpecter) Hash(password any) *mock.Call {
	return e.mock.On("Hash", password)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (e *MockPasswordHasherExpecter) Check(password, hash any) *mock.Call {
	return e.mock.On("Check", password, hash)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

func (e *MockPasswordHasherExpecter) ValidatePasswordStrength(password any) *mock.Call {
	return e.mock.On("ValidatePasswordStrength", password)
}
