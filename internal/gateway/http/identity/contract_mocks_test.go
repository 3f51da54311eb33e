// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identity_test
//

// Package identity_test is a generated GoMock package.
package identity_test

import (
	context "context"
	http "net/http"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockhttpClient is a mock of httpClient interface.
type MockhttpClient struct {
	ctrl     *gomock.Controller
	recorder *MockhttpClientMockRecorder
	isgomock struct{}
}

// MockhttpClientMockRecorder is the mock recorder for MockhttpClient.
type MockhttpClientMockRecorder struct {
	mock *MockhttpClient
}

// NewMockhttpClient creates a new mock instance.
func NewMockhttpClient(ctrl *gomock.Controller) *MockhttpClient {
	mock := &MockhttpClient{ctrl: ctrl}
	mock.recorder = &MockhttpClientMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockhttpClient) EXPECT() *MockhttpClientMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockhttpClient) Do(req *http.Request) (*http.Response, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", req)
	ret0, _ := ret[0].(*http.Response)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Do indicates an expected call of Do.
func (mr *MockhttpClientMockRecorder) Do(req any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockhttpClient)(nil).Do), req)
}

// Mockretrier is a mock of retrier interface.
type Mockretrier struct {
	ctrl     *gomock.Controller
	recorder *MockretrierMockRecorder
	isgomock struct{}
}

// MockretrierMockRecorder is the mock recorder for Mockretrier.
type MockretrierMockRecorder struct {
	mock *Mockretrier
}

// NewMockretrier creates a new mock instance.
func NewMockretrier(ctrl *gomock.Controller) *Mockretrier {
	mock := &Mockretrier{ctrl: ctrl}
	mock.recorder = &MockretrierMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *Mockretrier) EXPECT() *MockretrierMockRecorder {
	return m.recorder
}

// ExecuteWithContext mocks base method.
func (m *Mockretrier) ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ExecuteWithContext", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// ExecuteWithContext indicates an expected call of ExecuteWithContext.
func (mr *MockretrierMockRecorder) ExecuteWithContext(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ExecuteWithContext", reflect.TypeOf((*Mockretrier)(nil).ExecuteWithContext), ctx, fn)
}
