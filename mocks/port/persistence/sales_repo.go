package persistence

import (
	"context"
	"time"

	entity "github.com/kondo-pos/pos-backend/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockSalesRepository is a testify mock of the SalesRepository port
type MockSalesRepository struct {
	mock.Mock
}

type MockSalesRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSalesRepository) EXPECT() *MockSalesRepository_Expecter {
	return &MockSalesRepository_Expecter{mock: &_m.Mock}
}

// Summarize provides a mock function with given fields: ctx, filter
func (_m *MockSalesRepository) Summarize(ctx context.Context, filter entity.SalesFilter) (entity.SalesSummary, error) {
	ret := _m.Called(ctx, filter)

	if rf, ok := ret.Get(0).(func(context.Context, entity.SalesFilter) (entity.SalesSummary, error)); ok {
		return rf(ctx, filter)
	}

	var r0 entity.SalesSummary
	if rf, ok := ret.Get(0).(func(context.Context, entity.SalesFilter) entity.SalesSummary); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(entity.SalesSummary)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.SalesFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Summarize is a helper method to define mock.On call
func (_e *MockSalesRepository_Expecter) Summarize(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("Summarize", ctx, filter)
}

// TopProducts provides a mock function with given fields: ctx, limit, filter
func (_m *MockSalesRepository) TopProducts(ctx context.Context, limit int, filter entity.SalesFilter) ([]entity.ProductSales, error) {
	ret := _m.Called(ctx, limit, filter)

	if rf, ok := ret.Get(0).(func(context.Context, int, entity.SalesFilter) ([]entity.ProductSales, error)); ok {
		return rf(ctx, limit, filter)
	}

	var r0 []entity.ProductSales
	if rf, ok := ret.Get(0).(func(context.Context, int, entity.SalesFilter) []entity.ProductSales); ok {
		r0 = rf(ctx, limit, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.ProductSales)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int, entity.SalesFilter) error); ok {
		r1 = rf(ctx, limit, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TopProducts is a helper method to define mock.On call
func (_e *MockSalesRepository_Expecter) TopProducts(ctx interface{}, limit interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("TopProducts", ctx, limit, filter)
}

// TransactionsBetween provides a mock function with given fields: ctx, from, to
func (_m *MockSalesRepository) TransactionsBetween(ctx context.Context, from time.Time, to time.Time) ([]entity.SaleTick, error) {
	ret := _m.Called(ctx, from, to)

	if rf, ok := ret.Get(0).(func(context.Context, time.Time, time.Time) ([]entity.SaleTick, error)); ok {
		return rf(ctx, from, to)
	}

	var r0 []entity.SaleTick
	if rf, ok := ret.Get(0).(func(context.Context, time.Time, time.Time) []entity.SaleTick); ok {
		r0 = rf(ctx, from, to)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.SaleTick)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, time.Time, time.Time) error); ok {
		r1 = rf(ctx, from, to)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// TransactionsBetween is a helper method to define mock.On call
func (_e *MockSalesRepository_Expecter) TransactionsBetween(ctx interface{}, from interface{}, to interface{}) *mock.Call {
	return _e.mock.On("TransactionsBetween", ctx, from, to)
}

// NewMockSalesRepository creates a new instance of MockSalesRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSalesRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSalesRepository {
	m := &MockSalesRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
