package mocks

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/statement"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStatementRepository is a mock type for the repository.StatementRepository type.
type MockStatementRepository struct {
	mock.Mock
}

type MockStatementRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStatementRepository) EXPECT() *MockStatementRepository_Expecter {
	return &MockStatementRepository_Expecter{mock: &_m.Mock}
}

// FindByID provides a mock function with given fields: ctx, id, userID
func (_m *MockStatementRepository) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*statement.Statement, error) {
	ret := _m.Called(ctx, id, userID)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID, uuid.UUID) (*statement.Statement, error)); ok {
		return rf(ctx, id, userID)
	}
	var r0 *statement.Statement
	if v := ret.Get(0); v != nil {
		r0 = v.(*statement.Statement)
	}
	return r0, ret.Error(1)
}

type MockStatementRepository_FindByID_Call struct {
	*mock.Call
}

func (_e *MockStatementRepository_Expecter) FindByID(ctx interface{}, id interface{}, userID interface{}) *MockStatementRepository_FindByID_Call {
	return &MockStatementRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id, userID)}
}

func (_c *MockStatementRepository_FindByID_Call) Return(_a0 *statement.Statement, _a1 error) *MockStatementRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *MockStatementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*statement.Statement, error) {
	ret := _m.Called(ctx, userID)

	if len(ret) == 0 {
		panic("no return value specified for ListByUser")
	}

	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) ([]*statement.Statement, error)); ok {
		return rf(ctx, userID)
	}
	var r0 []*statement.Statement
	if v := ret.Get(0); v != nil {
		r0 = v.([]*statement.Statement)
	}
	return r0, ret.Error(1)
}

type MockStatementRepository_ListByUser_Call struct {
	*mock.Call
}

func (_e *MockStatementRepository_Expecter) ListByUser(ctx interface{}, userID interface{}) *MockStatementRepository_ListByUser_Call {
	return &MockStatementRepository_ListByUser_Call{Call: _e.mock.On("ListByUser", ctx, userID)}
}

func (_c *MockStatementRepository_ListByUser_Call) Return(_a0 []*statement.Statement, _a1 error) *MockStatementRepository_ListByUser_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// Create provides a mock function with given fields: ctx, s
func (_m *MockStatementRepository) Create(ctx context.Context, s *statement.Statement) error {
	ret := _m.Called(ctx, s)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	if rf, ok := ret.Get(0).(func(context.Context, *statement.Statement) error); ok {
		return rf(ctx, s)
	}
	return ret.Error(0)
}

type MockStatementRepository_Create_Call struct {
	*mock.Call
}

func (_e *MockStatementRepository_Expecter) Create(ctx interface{}, s interface{}) *MockStatementRepository_Create_Call {
	return &MockStatementRepository_Create_Call{Call: _e.mock.On("Create", ctx, s)}
}

func (_c *MockStatementRepository_Create_Call) Return(_a0 error) *MockStatementRepository_Create_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockStatementRepository_Create_Call) RunAndReturn(run func(context.Context, *statement.Statement) error) *MockStatementRepository_Create_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockStatementRepository creates a new instance of MockStatementRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStatementRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStatementRepository {
	m := &MockStatementRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
