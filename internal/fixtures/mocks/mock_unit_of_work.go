package mocks

import (
	"context"

	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a mock type for the repository.UnitOfWork type.
type MockUnitOfWork struct {
	mock.Mock
}

type MockUnitOfWork_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUnitOfWork) EXPECT() *MockUnitOfWork_Expecter {
	return &MockUnitOfWork_Expecter{mock: &_m.Mock}
}

// Do provides a mock function with given fields: ctx, fn
func (_m *MockUnitOfWork) Do(ctx context.Context, fn func(repository.UnitOfWork) error) error {
	ret := _m.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for Do")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(repository.UnitOfWork) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

type MockUnitOfWork_Do_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) Do(ctx interface{}, fn interface{}) *MockUnitOfWork_Do_Call {
	return &MockUnitOfWork_Do_Call{Call: _e.mock.On("Do", ctx, fn)}
}

func (_c *MockUnitOfWork_Do_Call) Return(_a0 error) *MockUnitOfWork_Do_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockUnitOfWork_Do_Call) RunAndReturn(run func(context.Context, func(repository.UnitOfWork) error) error) *MockUnitOfWork_Do_Call {
	_c.Call.Return(run)
	return _c
}

// UserRepository provides a mock function with no fields
func (_m *MockUnitOfWork) UserRepository() (repository.UserRepository, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for UserRepository")
	}

	var r0 repository.UserRepository
	if v := ret.Get(0); v != nil {
		r0 = v.(repository.UserRepository)
	}
	return r0, ret.Error(1)
}

type MockUnitOfWork_UserRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) UserRepository() *MockUnitOfWork_UserRepository_Call {
	return &MockUnitOfWork_UserRepository_Call{Call: _e.mock.On("UserRepository")}
}

func (_c *MockUnitOfWork_UserRepository_Call) Return(_a0 repository.UserRepository, _a1 error) *MockUnitOfWork_UserRepository_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// StatementRepository provides a mock function with no fields
func (_m *MockUnitOfWork) StatementRepository() (repository.StatementRepository, error) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for StatementRepository")
	}

	var r0 repository.StatementRepository
	if v := ret.Get(0); v != nil {
		r0 = v.(repository.StatementRepository)
	}
	return r0, ret.Error(1)
}

type MockUnitOfWork_StatementRepository_Call struct {
	*mock.Call
}

func (_e *MockUnitOfWork_Expecter) StatementRepository() *MockUnitOfWork_StatementRepository_Call {
	return &MockUnitOfWork_StatementRepository_Call{Call: _e.mock.On("StatementRepository")}
}

func (_c *MockUnitOfWork_StatementRepository_Call) Return(_a0 repository.StatementRepository, _a1 error) *MockUnitOfWork_StatementRepository_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockUnitOfWork creates a new instance of MockUnitOfWork. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockUnitOfWork(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
