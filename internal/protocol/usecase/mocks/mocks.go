// Package mocks provides testify mocks for the protocol usecase interfaces.
package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
	usecase "github.com/pinkoot/AI-Assistant/internal/protocol/usecase"
)

// MockTransport is a mock implementation of usecase.Transport.
type MockTransport struct {
	mock.Mock
}

type MockTransport_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTransport) EXPECT() *MockTransport_Expecter {
	return &MockTransport_Expecter{mock: &_m.Mock}
}

// Get provides a mock function with given fields: ctx, endpoint, params, signature
func (_m *MockTransport) Get(ctx context.Context, endpoint string, params *protocolDomain.Params, signature string) (protocolDomain.Node, error) {
	ret := _m.Called(ctx, endpoint, params, signature)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 protocolDomain.Node
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, *protocolDomain.Params, string) (protocolDomain.Node, error)); ok {
		return rf(ctx, endpoint, params, signature)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, *protocolDomain.Params, string) protocolDomain.Node); ok {
		r0 = rf(ctx, endpoint, params, signature)
	} else {
		r0 = ret.Get(0).(protocolDomain.Node)
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, *protocolDomain.Params, string) error); ok {
		r1 = rf(ctx, endpoint, params, signature)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTransport_Get_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Get'
type MockTransport_Get_Call struct {
	*mock.Call
}

// Get is a helper method to define mock.On call
func (_e *MockTransport_Expecter) Get(ctx interface{}, endpoint interface{}, params interface{}, signature interface{}) *MockTransport_Get_Call {
	return &MockTransport_Get_Call{Call: _e.mock.On("Get", ctx, endpoint, params, signature)}
}

func (_c *MockTransport_Get_Call) Run(run func(ctx context.Context, endpoint string, params *protocolDomain.Params, signature string)) *MockTransport_Get_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(*protocolDomain.Params), args[3].(string))
	})
	return _c
}

func (_c *MockTransport_Get_Call) Return(_a0 protocolDomain.Node, _a1 error) *MockTransport_Get_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTransport_Get_Call) RunAndReturn(run func(context.Context, string, *protocolDomain.Params, string) (protocolDomain.Node, error)) *MockTransport_Get_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTransport creates a new instance of MockTransport. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockTransport(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransport {
	m := &MockTransport{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockMetadataCollector is a mock implementation of usecase.MetadataCollector.
type MockMetadataCollector struct {
	mock.Mock
}

type MockMetadataCollector_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMetadataCollector) EXPECT() *MockMetadataCollector_Expecter {
	return &MockMetadataCollector_Expecter{mock: &_m.Mock}
}

// Collect provides a mock function with given fields: ctx
func (_m *MockMetadataCollector) Collect(ctx context.Context) (*protocolDomain.Params, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Collect")
	}

	var r0 *protocolDomain.Params
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (*protocolDomain.Params, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) *protocolDomain.Params); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*protocolDomain.Params)
		}
	}
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMetadataCollector_Collect_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Collect'
type MockMetadataCollector_Collect_Call struct {
	*mock.Call
}

// Collect is a helper method to define mock.On call
func (_e *MockMetadataCollector_Expecter) Collect(ctx interface{}) *MockMetadataCollector_Collect_Call {
	return &MockMetadataCollector_Collect_Call{Call: _e.mock.On("Collect", ctx)}
}

func (_c *MockMetadataCollector_Collect_Call) Run(run func(ctx context.Context)) *MockMetadataCollector_Collect_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockMetadataCollector_Collect_Call) Return(_a0 *protocolDomain.Params, _a1 error) *MockMetadataCollector_Collect_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMetadataCollector_Collect_Call) RunAndReturn(run func(context.Context) (*protocolDomain.Params, error)) *MockMetadataCollector_Collect_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMetadataCollector creates a new instance of MockMetadataCollector. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMetadataCollector(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMetadataCollector {
	m := &MockMetadataCollector{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockLocator is a mock implementation of usecase.Locator.
type MockLocator struct {
	mock.Mock
}

type MockLocator_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLocator) EXPECT() *MockLocator_Expecter {
	return &MockLocator_Expecter{mock: &_m.Mock}
}

// Locate provides a mock function with given fields: ctx
func (_m *MockLocator) Locate(ctx context.Context) (protocolDomain.Coordinates, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Locate")
	}

	var r0 protocolDomain.Coordinates
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) (protocolDomain.Coordinates, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) protocolDomain.Coordinates); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(protocolDomain.Coordinates)
	}
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLocator_Locate_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Locate'
type MockLocator_Locate_Call struct {
	*mock.Call
}

// Locate is a helper method to define mock.On call
func (_e *MockLocator_Expecter) Locate(ctx interface{}) *MockLocator_Locate_Call {
	return &MockLocator_Locate_Call{Call: _e.mock.On("Locate", ctx)}
}

func (_c *MockLocator_Locate_Call) Run(run func(ctx context.Context)) *MockLocator_Locate_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockLocator_Locate_Call) Return(_a0 protocolDomain.Coordinates, _a1 error) *MockLocator_Locate_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLocator_Locate_Call) RunAndReturn(run func(context.Context) (protocolDomain.Coordinates, error)) *MockLocator_Locate_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLocator creates a new instance of MockLocator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockLocator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLocator {
	m := &MockLocator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockRenderer is a mock implementation of usecase.Renderer.
type MockRenderer struct {
	mock.Mock
}

type MockRenderer_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRenderer) EXPECT() *MockRenderer_Expecter {
	return &MockRenderer_Expecter{mock: &_m.Mock}
}

// Render provides a mock function with given fields: ctx, result
func (_m *MockRenderer) Render(ctx context.Context, result *protocolDomain.Result) error {
	ret := _m.Called(ctx, result)

	if len(ret) == 0 {
		panic("no return value specified for Render")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *protocolDomain.Result) error); ok {
		r0 = rf(ctx, result)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRenderer_Render_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Render'
type MockRenderer_Render_Call struct {
	*mock.Call
}

// Render is a helper method to define mock.On call
func (_e *MockRenderer_Expecter) Render(ctx interface{}, result interface{}) *MockRenderer_Render_Call {
	return &MockRenderer_Render_Call{Call: _e.mock.On("Render", ctx, result)}
}

func (_c *MockRenderer_Render_Call) Run(run func(ctx context.Context, result *protocolDomain.Result)) *MockRenderer_Render_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*protocolDomain.Result))
	})
	return _c
}

func (_c *MockRenderer_Render_Call) Return(_a0 error) *MockRenderer_Render_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockRenderer_Render_Call) RunAndReturn(run func(context.Context, *protocolDomain.Result) error) *MockRenderer_Render_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockRenderer creates a new instance of MockRenderer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockRenderer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRenderer {
	m := &MockRenderer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockErrorReporter is a mock implementation of usecase.ErrorReporter.
type MockErrorReporter struct {
	mock.Mock
}

type MockErrorReporter_Expecter struct {
	mock *mock.Mock
}

func (_m *MockErrorReporter) EXPECT() *MockErrorReporter_Expecter {
	return &MockErrorReporter_Expecter{mock: &_m.Mock}
}

// ReportError provides a mock function with given fields: ctx, action, err
func (_m *MockErrorReporter) ReportError(ctx context.Context, action protocolDomain.Action, err error) {
	_m.Called(ctx, action, err)
}

// MockErrorReporter_ReportError_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ReportError'
type MockErrorReporter_ReportError_Call struct {
	*mock.Call
}

// ReportError is a helper method to define mock.On call
func (_e *MockErrorReporter_Expecter) ReportError(ctx interface{}, action interface{}, err interface{}) *MockErrorReporter_ReportError_Call {
	return &MockErrorReporter_ReportError_Call{Call: _e.mock.On("ReportError", ctx, action, err)}
}

func (_c *MockErrorReporter_ReportError_Call) Run(run func(ctx context.Context, action protocolDomain.Action, err error)) *MockErrorReporter_ReportError_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(protocolDomain.Action), args[2].(error))
	})
	return _c
}

func (_c *MockErrorReporter_ReportError_Call) Return() *MockErrorReporter_ReportError_Call {
	_c.Call.Return()
	return _c
}

func (_c *MockErrorReporter_ReportError_Call) RunAndReturn(run func(context.Context, protocolDomain.Action, error)) *MockErrorReporter_ReportError_Call {
	_c.Run(run)
	return _c
}

// NewMockErrorReporter creates a new instance of MockErrorReporter. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockErrorReporter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockErrorReporter {
	m := &MockErrorReporter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockPipeline is a mock implementation of usecase.Pipeline.
type MockPipeline struct {
	mock.Mock
}

type MockPipeline_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPipeline) EXPECT() *MockPipeline_Expecter {
	return &MockPipeline_Expecter{mock: &_m.Mock}
}

// Execute provides a mock function with given fields: ctx, req
func (_m *MockPipeline) Execute(ctx context.Context, req *protocolDomain.Request) (*protocolDomain.Result, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Execute")
	}

	var r0 *protocolDomain.Result
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, *protocolDomain.Request) (*protocolDomain.Result, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, *protocolDomain.Request) *protocolDomain.Result); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*protocolDomain.Result)
		}
	}
	if rf, ok := ret.Get(1).(func(context.Context, *protocolDomain.Request) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPipeline_Execute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Execute'
type MockPipeline_Execute_Call struct {
	*mock.Call
}

// Execute is a helper method to define mock.On call
func (_e *MockPipeline_Expecter) Execute(ctx interface{}, req interface{}) *MockPipeline_Execute_Call {
	return &MockPipeline_Execute_Call{Call: _e.mock.On("Execute", ctx, req)}
}

func (_c *MockPipeline_Execute_Call) Run(run func(ctx context.Context, req *protocolDomain.Request)) *MockPipeline_Execute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*protocolDomain.Request))
	})
	return _c
}

func (_c *MockPipeline_Execute_Call) Return(_a0 *protocolDomain.Result, _a1 error) *MockPipeline_Execute_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockPipeline_Execute_Call) RunAndReturn(run func(context.Context, *protocolDomain.Request) (*protocolDomain.Result, error)) *MockPipeline_Execute_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockPipeline creates a new instance of MockPipeline. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockPipeline(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPipeline {
	m := &MockPipeline{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// MockMirrorUseCase is a mock implementation of usecase.MirrorUseCase.
type MockMirrorUseCase struct {
	mock.Mock
}

type MockMirrorUseCase_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMirrorUseCase) EXPECT() *MockMirrorUseCase_Expecter {
	return &MockMirrorUseCase_Expecter{mock: &_m.Mock}
}

// Handle provides a mock function with given fields: ctx, endpoint, rawQuery, signature
func (_m *MockMirrorUseCase) Handle(ctx context.Context, endpoint string, rawQuery string, signature string) (*usecase.MirrorResponse, error) {
	ret := _m.Called(ctx, endpoint, rawQuery, signature)

	if len(ret) == 0 {
		panic("no return value specified for Handle")
	}

	var r0 *usecase.MirrorResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) (*usecase.MirrorResponse, error)); ok {
		return rf(ctx, endpoint, rawQuery, signature)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) *usecase.MirrorResponse); ok {
		r0 = rf(ctx, endpoint, rawQuery, signature)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*usecase.MirrorResponse)
		}
	}
	if rf, ok := ret.Get(1).(func(context.Context, string, string, string) error); ok {
		r1 = rf(ctx, endpoint, rawQuery, signature)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMirrorUseCase_Handle_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Handle'
type MockMirrorUseCase_Handle_Call struct {
	*mock.Call
}

// Handle is a helper method to define mock.On call
func (_e *MockMirrorUseCase_Expecter) Handle(ctx interface{}, endpoint interface{}, rawQuery interface{}, signature interface{}) *MockMirrorUseCase_Handle_Call {
	return &MockMirrorUseCase_Handle_Call{Call: _e.mock.On("Handle", ctx, endpoint, rawQuery, signature)}
}

func (_c *MockMirrorUseCase_Handle_Call) Run(run func(ctx context.Context, endpoint string, rawQuery string, signature string)) *MockMirrorUseCase_Handle_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(string))
	})
	return _c
}

func (_c *MockMirrorUseCase_Handle_Call) Return(_a0 *usecase.MirrorResponse, _a1 error) *MockMirrorUseCase_Handle_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMirrorUseCase_Handle_Call) RunAndReturn(run func(context.Context, string, string, string) (*usecase.MirrorResponse, error)) *MockMirrorUseCase_Handle_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMirrorUseCase creates a new instance of MockMirrorUseCase. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockMirrorUseCase(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMirrorUseCase {
	m := &MockMirrorUseCase{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
