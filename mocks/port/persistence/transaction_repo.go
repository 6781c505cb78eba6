package persistence

import (
	"context"

	entity "github.com/kondo-pos/pos-backend/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a testify mock of the TransactionRepository port
type MockTransactionRepository struct {
	mock.Mock
}

type MockTransactionRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransactionRepository) EXPECT() *MockTransactionRepository_Expecter {
	return &MockTransactionRepository_Expecter{mock: &_m.Mock}
}

// AddLineItem provides a mock function with given fields: ctx, item
func (_m *MockTransactionRepository) AddLineItem(ctx context.Context, item entity.LineItem) error {
	ret := _m.Called(ctx, item)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, entity.LineItem) error); ok {
		r0 = rf(ctx, item)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// AddLineItem is a helper method to define mock.On call
func (_e *MockTransactionRepository_Expecter) AddLineItem(ctx interface{}, item interface{}) *mock.Call {
	return _e.mock.On("AddLineItem", ctx, item)
}

// CreateHeader provides a mock function with given fields: ctx, transaction
func (_m *MockTransactionRepository) CreateHeader(ctx context.Context, transaction *entity.Transaction) error {
	ret := _m.Called(ctx, transaction)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Transaction) error); ok {
		r0 = rf(ctx, transaction)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// CreateHeader is a helper method to define mock.On call
func (_e *MockTransactionRepository_Expecter) CreateHeader(ctx interface{}, transaction interface{}) *mock.Call {
	return _e.mock.On("CreateHeader", ctx, transaction)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockTransactionRepository) Delete(ctx context.Context, id uint64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete is a helper method to define mock.On call
func (_e *MockTransactionRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockTransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uint64) (*entity.Transaction, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, uint64) *entity.Transaction); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID is a helper method to define mock.On call
func (_e *MockTransactionRepository_Expecter) GetByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockTransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	ret := _m.Called(ctx, filter)

	if rf, ok := ret.Get(0).(func(context.Context, entity.TransactionFilter) ([]*entity.Transaction, error)); ok {
		return rf(ctx, filter)
	}

	var r0 []*entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, entity.TransactionFilter) []*entity.Transaction); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.TransactionFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// List is a helper method to define mock.On call
func (_e *MockTransactionRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

// UpdateTotal provides a mock function with given fields: ctx, id, total
func (_m *MockTransactionRepository) UpdateTotal(ctx context.Context, id uint64, total int64) error {
	ret := _m.Called(ctx, id, total)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint64, int64) error); ok {
		r0 = rf(ctx, id, total)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// UpdateTotal is a helper method to define mock.On call
func (_e *MockTransactionRepository_Expecter) UpdateTotal(ctx interface{}, id interface{}, total interface{}) *mock.Call {
	return _e.mock.On("UpdateTotal", ctx, id, total)
}

// NewMockTransactionRepository creates a new instance of MockTransactionRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransactionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionRepository {
	m := &MockTransactionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
