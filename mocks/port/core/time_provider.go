package core

import (
	"context"
	"time"

	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"

	mock "github.com/stretchr/testify/mock"
)

// MockTimeProvider is a testify mock of the TimeProvider port
type MockTimeProvider struct {
	mock.Mock
}

type MockTimeProvider_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTimeProvider) EXPECT() *MockTimeProvider_Expecter {
	return &MockTimeProvider_Expecter{mock: &_m.Mock}
}

// Location provides a mock function with given fields:
func (_m *MockTimeProvider) Location() *time.Location {
	ret := _m.Called()

	var r0 *time.Location
	if rf, ok := ret.Get(0).(func() *time.Location); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*time.Location)
	}

	return r0
}

// Location is a helper method to define mock.On call
func (_e *MockTimeProvider_Expecter) Location() *mock.Call {
	return _e.mock.On("Location")
}

// Now provides a mock function with given fields:
func (_m *MockTimeProvider) Now() time.Time {
	ret := _m.Called()

	var r0 time.Time
	if rf, ok := ret.Get(0).(func() time.Time); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(time.Time)
	}

	return r0
}

// Now is a helper method to define mock.On call
func (_e *MockTimeProvider_Expecter) Now() *mock.Call {
	return _e.mock.On("Now")
}

// Since provides a mock function with given fields: t
func (_m *MockTimeProvider) Since(t time.Time) coreport.Duration {
	ret := _m.Called(t)

	var r0 coreport.Duration
	if rf, ok := ret.Get(0).(func(time.Time) coreport.Duration); ok {
		r0 = rf(t)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(coreport.Duration)
	}

	return r0
}

// Since is a helper method to define mock.On call
func (_e *MockTimeProvider_Expecter) Since(t interface{}) *mock.Call {
	return _e.mock.On("Since", t)
}

// StartOfDay provides a mock function with given fields: t
func (_m *MockTimeProvider) StartOfDay(t time.Time) time.Time {
	ret := _m.Called(t)

	var r0 time.Time
	if rf, ok := ret.Get(0).(func(time.Time) time.Time); ok {
		r0 = rf(t)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(time.Time)
	}

	return r0
}

// StartOfDay is a helper method to define mock.On call
func (_e *MockTimeProvider_Expecter) StartOfDay(t interface{}) *mock.Call {
	return _e.mock.On("StartOfDay", t)
}

// WithTimeout provides a mock function with given fields: ctx, timeout
func (_m *MockTimeProvider) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	ret := _m.Called(ctx, timeout)

	if rf, ok := ret.Get(0).(func(context.Context, coreport.Duration) (context.Context, context.CancelFunc)); ok {
		return rf(ctx, timeout)
	}

	var r0 context.Context
	if rf, ok := ret.Get(0).(func(context.Context, coreport.Duration) context.Context); ok {
		r0 = rf(ctx, timeout)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(context.Context)
	}

	var r1 context.CancelFunc
	if rf, ok := ret.Get(1).(func(context.Context, coreport.Duration) context.CancelFunc); ok {
		r1 = rf(ctx, timeout)
	} else if ret.Get(1) != nil {
		r1 = ret.Get(1).(context.CancelFunc)
	}

	return r0, r1
}

// WithTimeout is a helper method to define mock.On call
func (_e *MockTimeProvider_Expecter) WithTimeout(ctx interface{}, timeout interface{}) *mock.Call {
	return _e.mock.On("WithTimeout", ctx, timeout)
}

// NewMockTimeProvider creates a new instance of MockTimeProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTimeProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTimeProvider {
	m := &MockTimeProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
