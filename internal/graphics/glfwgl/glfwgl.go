//go:build !raylib

// Package glfwgl implements the window system with GLFW 3.3 and the context with
// OpenGL 4.3 core. All calls must come from the main OS thread.
package glfwgl

import (
	"errors"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"graphics-prototyper/internal/engineconfig"
	"graphics-prototyper/internal/graphics"
)

// System is a graphics.WindowSystem backed by GLFW.
type System struct {
	onError func(code int, desc string)
}

var _ graphics.WindowSystem = (*System)(nil)

// New returns a GLFW window system. Call Init before anything else.
func New() *System {
	return &System{}
}

// SetErrorCallback registers fn for errors GLFW returns from Init and CreateWindow.
func (s *System) SetErrorCallback(fn func(code int, desc string)) {
	s.onError = fn
}

// report forwards a GLFW error to the error callback and returns err unchanged.
func (s *System) report(err error) error {
	var gerr *glfw.Error
	if s.onError != nil && errors.As(err, &gerr) {
		s.onError(int(gerr.Code), gerr.Desc)
	}
	return err
}

func (s *System) Init() error {
	return s.report(glfw.Init())
}

func (s *System) CreateWindow(win engineconfig.Window, ctx engineconfig.Context) (graphics.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, ctx.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, ctx.Minor)
	if ctx.Compatibility {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	} else {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.DoubleBuffer, boolHint(ctx.DoubleBuffer))
	glfw.WindowHint(glfw.SRGBCapable, boolHint(ctx.SRGB))
	glfw.WindowHint(glfw.OpenGLDebugContext, boolHint(ctx.Debug))

	w, err := glfw.CreateWindow(win.Width, win.Height, win.Title, nil, nil)
	if err != nil {
		return nil, s.report(err)
	}
	return &Window{w: w}, nil
}

func (s *System) PollEvents() {
	glfw.PollEvents()
}

func (s *System) Terminate() {
	glfw.Terminate()
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// Window wraps a GLFW window and its OpenGL context.
type Window struct {
	w *glfw.Window
}

var _ graphics.Window = (*Window)(nil)

func (w *Window) MakeContextCurrent() {
	w.w.MakeContextCurrent()
}

// LoadContext loads the OpenGL 4.3 core entry points. 4.3 is the first version with
// debug output in core, so no extension loading is needed.
func (w *Window) LoadContext() (graphics.Context, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &Context{}, nil
}

func (w *Window) ShouldClose() bool {
	return w.w.ShouldClose()
}

func (w *Window) SetShouldClose(close bool) {
	w.w.SetShouldClose(close)
}

func (w *Window) SwapBuffers() {
	w.w.SwapBuffers()
}

func (w *Window) FramebufferSize() (int, int) {
	return w.w.GetFramebufferSize()
}

func (w *Window) SetResizeCallback(fn func(width, height int)) {
	w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

func (w *Window) Destroy() {
	w.w.Destroy()
}

// Context issues calls on the current OpenGL context.
type Context struct {
	debugFn graphics.DebugMessageFunc
}

var _ graphics.Context = (*Context)(nil)

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask uint32) {
	gl.Clear(mask)
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) GetError() uint32 {
	return gl.GetError()
}

func (c *Context) DebugContext() bool {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	return flags&gl.CONTEXT_FLAG_DEBUG_BIT != 0
}

func (c *Context) EnableDebugOutput(synchronous bool, fn graphics.DebugMessageFunc) {
	// Keep fn reachable for as long as the driver may call it.
	c.debugFn = fn
	gl.Enable(gl.DEBUG_OUTPUT)
	if synchronous {
		gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	}
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		c.debugFn(source, gltype, id, severity, message)
	}, nil)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)
}
