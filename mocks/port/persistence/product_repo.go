package persistence

import (
	"context"

	entity "github.com/kondo-pos/pos-backend/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockProductRepository is a testify mock of the ProductRepository port
type MockProductRepository struct {
	mock.Mock
}

type MockProductRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockProductRepository) EXPECT() *MockProductRepository_Expecter {
	return &MockProductRepository_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Product) error); ok {
		r0 = rf(ctx, product)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Create is a helper method to define mock.On call
func (_e *MockProductRepository_Expecter) Create(ctx interface{}, product interface{}) *mock.Call {
	return _e.mock.On("Create", ctx, product)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) Delete(ctx context.Context, id uint64) error {
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
func (_e *MockProductRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// Exists provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uint64) (bool, error)); ok {
		return rf(ctx, id)
	}

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, uint64) bool); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(bool)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, uint64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Exists is a helper method to define mock.On call
func (_e *MockProductRepository_Expecter) Exists(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Exists", ctx, id)
}

// GetByCode provides a mock function with given fields: ctx, code
func (_m *MockProductRepository) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	ret := _m.Called(ctx, code)

	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Product, error)); ok {
		return rf(ctx, code)
	}

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Product); ok {
		r0 = rf(ctx, code)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, code)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByCode is a helper method to define mock.On call
func (_e *MockProductRepository_Expecter) GetByCode(ctx interface{}, code interface{}) *mock.Call {
	return _e.mock.On("GetByCode", ctx, code)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockProductRepository) GetByID(ctx context.Context, id uint64) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	if rf, ok := ret.Get(0).(func(context.Context, uint64) (*entity.Product, error)); ok {
		return rf(ctx, id)
	}

	var r0 *entity.Product
	if rf, ok := ret.Get(0).(func(context.Context, uint64) *entity.Product); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
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
func (_e *MockProductRepository_Expecter) GetByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockProductRepository) List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error) {
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
func (_e *MockProductRepository_Expecter) List(ctx interface{}, filter interface{}) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

// Update provides a mock function with given fields: ctx, product
func (_m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	ret := _m.Called(ctx, product)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Product) error); ok {
		r0 = rf(ctx, product)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Update is a helper method to define mock.On call
func (_e *MockProductRepository_Expecter) Update(ctx interface{}, product interface{}) *mock.Call {
	return _e.mock.On("Update", ctx, product)
}

// NewMockProductRepository creates a new instance of MockProductRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
