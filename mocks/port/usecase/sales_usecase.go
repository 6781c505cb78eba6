package usecase

import (
	"context"
	"time"

	entity "github.com/kondo-pos/pos-backend/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockSalesUseCase is a testify mock of the SalesUseCase port
type MockSalesUseCase struct {
	mock.Mock
}

type MockSalesUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockSalesUseCase) EXPECT() *MockSalesUseCase_Expecter {
	return &MockSalesUseCase_Expecter{mock: &_m.Mock}
}

// HourlySales provides a mock function with given fields: ctx, day
func (_m *MockSalesUseCase) HourlySales(ctx context.Context, day *time.Time) ([]entity.HourlySales, error) {
	ret := _m.Called(ctx, day)

	if rf, ok := ret.Get(0).(func(context.Context, *time.Time) ([]entity.HourlySales, error)); ok {
		return rf(ctx, day)
	}

	var r0 []entity.HourlySales
	if rf, ok := ret.Get(0).(func(context.Context, *time.Time) []entity.HourlySales); ok {
		r0 = rf(ctx, day)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.HourlySales)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *time.Time) error); ok {
		r1 = rf(ctx, day)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// HourlySales is a helper method to define mock.On call
func (_e *MockSalesUseCase_Expecter) HourlySales(ctx interface{}, day interface{}) *mock.Call {
	return _e.mock.On("HourlySales", ctx, day)
}

// SalesStatistics provides a mock function with given fields: ctx, filter
func (_m *MockSalesUseCase) SalesStatistics(ctx context.Context, filter entity.SalesFilter) (entity.SalesStatistics, error) {
	ret := _m.Called(ctx, filter)

	if rf, ok := ret.Get(0).(func(context.Context, entity.SalesFilter) (entity.SalesStatistics, error)); ok {
		return rf(ctx, filter)
	}

	var r0 entity.SalesStatistics
	if rf, ok := ret.Get(0).(func(context.Context, entity.SalesFilter) entity.SalesStatistics); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(entity.SalesStatistics)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.SalesFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SalesStatistics is a helper method to define mock.On call
func (_e *MockSalesUseCase_Expecter) SalesStatistics(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("SalesStatistics", ctx, filter)
}

// TopProducts provides a mock function with given fields: ctx, limit, filter
func (_m *MockSalesUseCase) TopProducts(ctx context.Context, limit int, filter entity.SalesFilter) ([]entity.ProductSales, error) {
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
func (_e *MockSalesUseCase_Expecter) TopProducts(ctx interface{}, limit interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("TopProducts", ctx, limit, filter)
}

// NewMockSalesUseCase creates a new instance of MockSalesUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockSalesUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSalesUseCase {
	m := &MockSalesUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
