// Package mocks holds testify mocks for the interfaces service clients depend on.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"saasconnector/pkg/transport"
)

// MockRequester is a mock implementation of transport.Requester.
type MockRequester struct {
	mock.Mock
}

// MakeRequest provides a mock function with the given fields.
func (m *MockRequester) MakeRequest(
	ctx context.Context,
	path string,
	method transport.Method,
	params map[string]any,
	headers map[string]string,
) (*transport.Response, error) {
	ret := m.Called(ctx, path, method, params, headers)

	if fn, ok := ret.Get(0).(func(context.Context, string, transport.Method, map[string]any, map[string]string) (*transport.Response, error)); ok {
		return fn(ctx, path, method, params, headers)
	}

	var resp *transport.Response
	if ret.Get(0) != nil {
		resp = ret.Get(0).(*transport.Response)
	}
	return resp, ret.Error(1)
}

// NewMockRequester creates a MockRequester whose expectations are asserted when the test ends.
func NewMockRequester(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRequester {
	m := &MockRequester{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// JSONResponse builds a transport response from a status code and a JSON body.
func JSONResponse(statusCode int, body string) *transport.Response {
	return transport.NewResponse(statusCode, nil, []byte(body))
}
