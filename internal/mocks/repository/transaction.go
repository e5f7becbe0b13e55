package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	domainrepo "blog/internal/domain/repository"
)

// MockTransactionManager is a mock implementation of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock that asserts its expectations on test cleanup.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockTransactionManagerExpecter records expectations by method name.
type MockTransactionManagerExpecter struct {
	mock *mock.Mock
}

func (m *MockTransactionManager) EXPECT() *MockTransactionManagerExpecter {
	return &MockTransactionManagerExpecter{mock: &m.Mock}
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(domainrepo.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

func (e *MockTransactionManagerExpecter) Execute(ctx, fn any) *mock.Call {
	return e.mock.On("Execute", ctx, fn)
}

// RunWith makes Execute invoke its callback with factory and return the callback's error.
func (m *MockTransactionManager) RunWith(factory domainrepo.RepositoryFactory) *mock.Call {
	call := m.On("Execute", mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error"))
	call.RunFn = func(args mock.Arguments) {
		fn := args.Get(1).(func(domainrepo.RepositoryFactory) error)
		call.ReturnArguments = mock.Arguments{fn(factory)}
	}

	return call
}

// MockRepositoryFactory is a mock implementation of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock that asserts its expectations on test cleanup.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRepositoryFactoryExpecter records expectations by method name.
type MockRepositoryFactoryExpecter struct {
	mock *mock.Mock
}

func (m *MockRepositoryFactory) EXPECT() *MockRepositoryFactoryExpecter {
	return &MockRepositoryFactoryExpecter{mock: &m.Mock}
}

func (m *MockRepositoryFactory) UserRepo() domainrepo.UserRepository {
	args := m.Called()

	repo, _ := args.Get(0).(domainrepo.UserRepository)

	return repo
}

func (e *MockRepositoryFactoryExpecter) UserRepo() *mock.Call {
	return e.mock.On("UserRepo")
}

func (m *MockRepositoryFactory) PostRepo() domainrepo.PostRepository {
	args := m.Called()

	repo, _ := args.Get(0).(domainrepo.PostRepository)

	return repo
}

func (e *MockRepositoryFactoryExpecter) PostRepo() *mock.Call {
	return e.mock.On("PostRepo")
}
