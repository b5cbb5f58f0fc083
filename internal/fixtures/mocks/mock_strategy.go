package mocks

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStrategy is a mock type for the auth.Strategy type.
type MockStrategy struct {
	mock.Mock
}

type MockStrategy_Expecter struct {
	mock *mock.Mock
}

func (_m *MockStrategy) EXPECT() *MockStrategy_Expecter {
	return &MockStrategy_Expecter{mock: &_m.Mock}
}

// Login provides a mock function with given fields: ctx, email, password
func (_m *MockStrategy) Login(ctx context.Context, email string, password string) (*user.User, error) {
	ret := _m.Called(ctx, email, password)

	if len(ret) == 0 {
		panic("no return value specified for Login")
	}

	var r0 *user.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*user.User)
	}
	return r0, ret.Error(1)
}

type MockStrategy_Login_Call struct {
	*mock.Call
}

func (_e *MockStrategy_Expecter) Login(ctx interface{}, email interface{}, password interface{}) *MockStrategy_Login_Call {
	return &MockStrategy_Login_Call{Call: _e.mock.On("Login", ctx, email, password)}
}

func (_c *MockStrategy_Login_Call) Return(_a0 *user.User, _a1 error) *MockStrategy_Login_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// GetCurrentUserID provides a mock function with given fields: ctx
func (_m *MockStrategy) GetCurrentUserID(ctx context.Context) (uuid.UUID, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for GetCurrentUserID")
	}

	return ret.Get(0).(uuid.UUID), ret.Error(1)
}

type MockStrategy_GetCurrentUserID_Call struct {
	*mock.Call
}

func (_e *MockStrategy_Expecter) GetCurrentUserID(ctx interface{}) *MockStrategy_GetCurrentUserID_Call {
	return &MockStrategy_GetCurrentUserID_Call{Call: _e.mock.On("GetCurrentUserID", ctx)}
}

func (_c *MockStrategy_GetCurrentUserID_Call) Return(_a0 uuid.UUID, _a1 error) *MockStrategy_GetCurrentUserID_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// GenerateToken provides a mock function with given fields: ctx, u
func (_m *MockStrategy) GenerateToken(ctx context.Context, u *user.User) (string, error) {
	ret := _m.Called(ctx, u)

	if len(ret) == 0 {
		panic("no return value specified for GenerateToken")
	}

	return ret.String(0), ret.Error(1)
}

type MockStrategy_GenerateToken_Call struct {
	*mock.Call
}

func (_e *MockStrategy_Expecter) GenerateToken(ctx interface{}, u interface{}) *MockStrategy_GenerateToken_Call {
	return &MockStrategy_GenerateToken_Call{Call: _e.mock.On("GenerateToken", ctx, u)}
}

func (_c *MockStrategy_GenerateToken_Call) Return(_a0 string, _a1 error) *MockStrategy_GenerateToken_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

// NewMockStrategy creates a new instance of MockStrategy. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockStrategy(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStrategy {
	m := &MockStrategy{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
