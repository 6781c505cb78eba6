package usecase

import (
	"context"

	entity "github.com/kondo-pos/pos-backend/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockCatalogUseCase is a testify mock of the CatalogUseCase port
type MockCatalogUseCase struct {
	mock.Mock
}

type MockCatalogUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockCatalogUseCase) EXPECT() *MockCatalogUseCase_Expecter {
	return &MockCatalogUseCase_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, code, name, price
func (_m *MockCatalogUseCase) Create(ctx context.Context, code string, name string, price int64) (*entity.Product, error) {
	ret := _m.Called(ctx, code, name, price)

	if rf, ok := ret.Get(0).(func(context.Context, string, string, int64) (*entity.Product, error)); ok {
		return rf(ctx, code, name, price)
	}

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, string, string, int64) *entity.Product); ok {
		r0 = rf(ctx, code, name, price)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string, int64) error); ok {
		r1 = rf(ctx, code, name, price)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create is a helper method to define mock.On call
func (_e *MockCatalogUseCase_Expecter) Create(ctx interface{}, code interface{}, name interface{}, price interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, code, name, price)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockCatalogUseCase) Delete(ctx context.Context, id uint64) error {
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
func (_e *MockCatalogUseCase_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// FindByCode provides a mock function with given fields: ctx, code
func (_m *MockCatalogUseCase) FindByCode(ctx context.Context, code string) (*entity.Product, bool, error) {
	ret := _m.Called(ctx, code)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Product, bool, error)); ok {
		return rf(ctx, code)
	}

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Product); ok {
		r0 = rf(ctx, code)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func(context.Context, string) bool); ok {
		r1 = rf(ctx, code)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(bool)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, string) error); ok {
		r2 = rf(ctx, code)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// FindByCode is a helper method to define mock.On call
func (_e *MockCatalogUseCase_Expecter) FindByCode(ctx interface{}, code interface{}) *mock.Call {
	return _e.mock.On("FindByCode", ctx, code)
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *MockCatalogUseCase) FindByID(ctx context.Context, id uint64) (*entity.Product, bool, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uint64) (*entity.Product, bool, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, uint64) *entity.Product); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	var r1 bool
	if rf, ok := ret.Get(1).(func(context.Context, uint64) bool); ok {
		r1 = rf(ctx, id)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(bool)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func(context.Context, uint64) error); ok {
		r2 = rf(ctx, id)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// FindByID is a helper method to define mock.On call
func (_e *MockCatalogUseCase_Expecter) FindByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockCatalogUseCase) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
	ret := _m.Called(ctx, filter)

	if rf, ok := ret.Get(0).(func(context.Context, entity.ProductFilter) ([]*entity.Product, error)); ok {
		return rf(ctx, filter)
	}

	var r0 []*entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, entity.ProductFilter) []*entity.Product); ok {
		r0 = rf(ctx, filter)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Product)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, entity.ProductFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// List is a helper method to define mock.On call
func (_e *MockCatalogUseCase_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

// Update provides a mock function with given fields: ctx, id, update
func (_m *MockCatalogUseCase) Update(ctx context.Context, id uint64, update entity.ProductUpdate) (*entity.Product, error) {
	ret := _m.Called(ctx, id, update)

	if rf, ok := ret.Get(0).(func(context.Context, uint64, entity.ProductUpdate) (*entity.Product, error)); ok {
		return rf(ctx, id, update)
	}

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, uint64, entity.ProductUpdate) *entity.Product); ok {
		r0 = rf(ctx, id, update)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint64, entity.ProductUpdate) error); ok {
		r1 = rf(ctx, id, update)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Update is a helper method to define mock.On call
func (_e *MockCatalogUseCase_Expecter) Update(ctx interface{}, id interface{}, update interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, id, update)
}

// NewMockCatalogUseCase creates a new instance of MockCatalogUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockCatalogUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogUseCase {
	m := &MockCatalogUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
