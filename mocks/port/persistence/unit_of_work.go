package persistence

import (
	"context"

	persport "github.com/kondo-pos/pos-backend/internal/domain/port/persistence"

	mock "github.com/stretchr/testify/mock"
)

// MockUnitOfWork is a testify mock of the UnitOfWork port
type MockUnitOfWork struct {
	mock.Mock
}

type MockUnitOfWork_Expecter struct {
	mock *mock.Mock
}

func (_m *MockUnitOfWork) EXPECT() *MockUnitOfWork_Expecter {
	return &MockUnitOfWork_Expecter{mock: &_m.Mock}
}

// Begin provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	ret := _m.Called(ctx)

	if rf, ok := ret.Get(0).(func(context.Context) (context.Context, error)); ok {
		return rf(ctx)
	}

	var r0 context.Context
	if rf, ok := ret.Get(0).(func(context.Context) context.Context); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Begin is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) Begin(ctx interface{}) *mock.Call {
	return _e.mock.On("Begin", ctx)
}

// Commit provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Commit(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Commit is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) Commit(ctx interface{}) *mock.Call {
	return _e.mock.On("Commit", ctx)
}

// Do provides a mock function with given fields: ctx, fn
func (_m *MockUnitOfWork) Do(ctx context.Context, fn func(context.Context) error) error {
	ret := _m.Called(ctx, fn)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Do is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) Do(ctx interface{}, fn interface{}) *mock.Call {
	return _e.mock.On("Do", ctx, fn)
}

// GetProductRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetProductRepository(ctx context.Context) persport.ProductRepository {
	ret := _m.Called(ctx)

	var r0 persport.ProductRepository
	if rf, ok := ret.Get(0).(func(context.Context) persport.ProductRepository); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(persport.ProductRepository)
	}

	return r0
}

// GetProductRepository is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) GetProductRepository(ctx interface{}) *mock.Call {
	return _e.mock.On("GetProductRepository", ctx)
}

// GetTransactionRepository provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) GetTransactionRepository(ctx context.Context) persport.TransactionRepository {
	ret := _m.Called(ctx)

	var r0 persport.TransactionRepository
	if rf, ok := ret.Get(0).(func(context.Context) persport.TransactionRepository); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(persport.TransactionRepository)
	}

	return r0
}

// GetTransactionRepository is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) GetTransactionRepository(ctx interface{}) *mock.Call {
	return _e.mock.On("GetTransactionRepository", ctx)
}

// Rollback provides a mock function with given fields: ctx
func (_m *MockUnitOfWork) Rollback(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Rollback is a helper method to define mock.On call
func (_e *MockUnitOfWork_Expecter) Rollback(ctx interface{}) *mock.Call {
	return _e.mock.On("Rollback", ctx)
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
