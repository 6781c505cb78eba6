package core

import (
	coreport "github.com/kondo-pos/pos-backend/internal/domain/port/core"

	mock "github.com/stretchr/testify/mock"
)

// MockLogger is a testify mock of the Logger port
type MockLogger struct {
	mock.Mock
}

type MockLogger_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLogger) EXPECT() *MockLogger_Expecter {
	return &MockLogger_Expecter{mock: &_m.Mock}
}

// Debug provides a mock function with given fields: message, fields
func (_m *MockLogger) Debug(message string, fields map[string]any) {
	_m.Called(message, fields)
}

// Debug is a helper method to define mock.On call
func (_e *MockLogger_Expecter) Debug(message interface{}, fields interface{}) *mock.Call {
	return _e.mock.On("Debug", message, fields)
}

// Error provides a mock function with given fields: message, fields
func (_m *MockLogger) Error(message string, fields map[string]any) {
	_m.Called(message, fields)
}

// Error is a helper method to define mock.On call
func (_e *MockLogger_Expecter) Error(message interface{}, fields interface{}) *mock.Call {
	return _e.mock.On("Error", message, fields)
}

// Flush provides a mock function with given fields:
func (_m *MockLogger) Flush() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Flush is a helper method to define mock.On call
func (_e *MockLogger_Expecter) Flush() *mock.Call {
	return _e.mock.On("Flush")
}

// GetLevel provides a mock function with given fields:
func (_m *MockLogger) GetLevel() coreport.LogLevel {
	ret := _m.Called()

	var r0 coreport.LogLevel
	if rf, ok := ret.Get(0).(func() coreport.LogLevel); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(coreport.LogLevel)
	}

	return r0
}

// GetLevel is a helper method to define mock.On call
func (_e *MockLogger_Expecter) GetLevel() *mock.Call {
	return _e.mock.On("GetLevel")
}

// Info provides a mock function with given fields: message, fields
func (_m *MockLogger) Info(message string, fields map[string]any) {
	_m.Called(message, fields)
}

// Info is a helper method to define mock.On call
func (_e *MockLogger_Expecter) Info(message interface{}, fields interface{}) *mock.Call {
	return _e.mock.On("Info", message, fields)
}

// SetLevel provides a mock function with given fields: level
func (_m *MockLogger) SetLevel(level coreport.LogLevel) {
	_m.Called(level)
}

// SetLevel is a helper method to define mock.On call
func (_e *MockLogger_Expecter) SetLevel(level interface{}) *mock.Call {
	return _e.mock.On("SetLevel", level)
}

// Warn provides a mock function with given fields: message, fields
func (_m *MockLogger) Warn(message string, fields map[string]any) {
	_m.Called(message, fields)
}

// Warn is a helper method to define mock.On call
func (_e *MockLogger_Expecter) Warn(message interface{}, fields interface{}) *mock.Call {
	return _e.mock.On("Warn", message, fields)
}

// With provides a mock function with given fields: fields
func (_m *MockLogger) With(fields map[string]any) coreport.Logger {
	ret := _m.Called(fields)

	var r0 coreport.Logger
	if rf, ok := ret.Get(0).(func(map[string]any) coreport.Logger); ok {
		r0 = rf(fields)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(coreport.Logger)
	}

	return r0
}

// With is a helper method to define mock.On call
func (_e *MockLogger_Expecter) With(fields interface{}) *mock.Call {
	return _e.mock.On("With", fields)
}

// NewMockLogger creates a new instance of MockLogger. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLogger {
	m := &MockLogger{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
