package usecase

import (
	"context"

	entity "github.com/kondo-pos/pos-backend/internal/domain/entity"
	ucport "github.com/kondo-pos/pos-backend/internal/domain/port/usecase"

	mock "github.com/stretchr/testify/mock"
)

// MockRegisterUseCase is a testify mock of the RegisterUseCase port
type MockRegisterUseCase struct {
	mock.Mock
}

type MockRegisterUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRegisterUseCase) EXPECT() *MockRegisterUseCase_Expecter {
	return &MockRegisterUseCase_Expecter{mock: &_m.Mock}
}

// CreateTransaction provides a mock function with given fields: ctx, req
func (_m *MockRegisterUseCase) CreateTransaction(ctx context.Context, req ucport.RegisterRequest) (*entity.Transaction, error) {
	ret := _m.Called(ctx, req)

	if rf, ok := ret.Get(0).(func(context.Context, ucport.RegisterRequest) (*entity.Transaction, error)); ok {
		return rf(ctx, req)
	}

	var r0 *entity.Transaction
	if rf, ok := ret.Get(0).(func(context.Context, ucport.RegisterRequest) *entity.Transaction); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Transaction)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, ucport.RegisterRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateTransaction is a helper method to define mock.On call
func (_e *MockRegisterUseCase_Expecter) CreateTransaction(ctx interface{}, req interface{}) *mock.Call {
	return _e.mock.On("CreateTransaction", ctx, req)
}

// DeleteTransaction provides a mock function with given fields: ctx, id
func (_m *MockRegisterUseCase) DeleteTransaction(ctx context.Context, id uint64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, uint64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// DeleteTransaction is a helper method to define mock.On call
func (_e *MockRegisterUseCase_Expecter) DeleteTransaction(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("DeleteTransaction", ctx, id)
}

// GetTransaction provides a mock function with given fields: ctx, id
func (_m *MockRegisterUseCase) GetTransaction(ctx context.Context, id uint64) (*entity.Transaction, error) {
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

// GetTransaction is a helper method to define mock.On call
func (_e *MockRegisterUseCase_Expecter) GetTransaction(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetTransaction", ctx, id)
}

// ListTransactions provides a mock function with given fields: ctx, filter
func (_m *MockRegisterUseCase) ListTransactions(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
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

// ListTransactions is a helper method to define mock.On call
func (_e *MockRegisterUseCase_Expecter) ListTransactions(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("ListTransactions", ctx, filter)
}

// Purchase provides a mock function with given fields: ctx, req
func (_m *MockRegisterUseCase) Purchase(ctx context.Context, req ucport.RegisterRequest) ucport.PurchaseResult {
	ret := _m.Called(ctx, req)

	var r0 ucport.PurchaseResult
	if rf, ok := ret.Get(0).(func(context.Context, ucport.RegisterRequest) ucport.PurchaseResult); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(ucport.PurchaseResult)
	}

	return r0
}

// Purchase is a helper method to define mock.On call
func (_e *MockRegisterUseCase_Expecter) Purchase(ctx interface{}, req interface{}) *mock.Call {
	return _e.mock.On("Purchase", ctx, req)
}

// NewMockRegisterUseCase creates a new instance of MockRegisterUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRegisterUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRegisterUseCase {
	m := &MockRegisterUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
