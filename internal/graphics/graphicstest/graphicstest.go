// Package graphicstest provides in-memory window-system and GL fakes that record
// every call, for testing code written against package graphics.
package graphicstest

import (
	"errors"

	"graphics-prototyper/internal/engineconfig"
	"graphics-prototyper/internal/graphics"
)

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

// Context is a graphics.Context that records calls and serves a scripted error queue.
type Context struct {
	Calls  []Call
	Errors []uint32
	Debug  bool

	// GetErrorCalls counts GetError calls, including the final NoError.
	GetErrorCalls int
	Synchronous   bool
	Callback      graphics.DebugMessageFunc
}

var _ graphics.Context = (*Context)(nil)

func (c *Context) record(name string, args ...any) {
	c.Calls = append(c.Calls, Call{Name: name, Args: args})
}

func (c *Context) ClearColor(r, g, b, a float32) { c.record("ClearColor", r, g, b, a) }

func (c *Context) Clear(mask uint32) { c.record("Clear", mask) }

func (c *Context) Viewport(x, y, width, height int32) { c.record("Viewport", x, y, width, height) }

func (c *Context) GetError() uint32 {
	c.GetErrorCalls++
	if len(c.Errors) == 0 {
		return graphics.NoError
	}
	code := c.Errors[0]
	c.Errors = c.Errors[1:]
	return code
}

func (c *Context) DebugContext() bool { return c.Debug }

func (c *Context) EnableDebugOutput(synchronous bool, fn graphics.DebugMessageFunc) {
	c.Synchronous = synchronous
	c.Callback = fn
}

// Emit delivers a debug message the way a driver would. It does nothing if debug
// output was never enabled.
func (c *Context) Emit(source, typ, id, severity uint32, message string) {
	if c.Callback != nil {
		c.Callback(source, typ, id, severity, message)
	}
}

// Last returns the most recent call named name, and whether one was found.
func (c *Context) Last(name string) (Call, bool) {
	for i := len(c.Calls) - 1; i >= 0; i-- {
		if c.Calls[i].Name == name {
			return c.Calls[i], true
		}
	}
	return Call{}, false
}

// ErrScripted is returned by the fakes when a failure is requested.
var ErrScripted = errors.New("scripted failure")

// WindowSystem is a graphics.WindowSystem whose failures are scripted through its fields.
type WindowSystem struct {
	FailInit   bool
	FailCreate bool
	FailLoad   bool

	// CloseAfter sets the window's close flag on that PollEvents call. Zero never closes.
	CloseAfter int
	// ResizeOn delivers Resize to the resize callback on that PollEvents call.
	ResizeOn int
	Resize   [2]int

	Ctx *Context

	InitCalls      int
	PollCalls      int
	TerminateCalls int
	Created        []*Window
	ErrorCallback  func(code int, desc string)
	LastContext    engineconfig.Context
}

var _ graphics.WindowSystem = (*WindowSystem)(nil)

func (s *WindowSystem) SetErrorCallback(fn func(code int, desc string)) { s.ErrorCallback = fn }

func (s *WindowSystem) fail(code int, desc string) error {
	if s.ErrorCallback != nil {
		s.ErrorCallback(code, desc)
	}
	return ErrScripted
}

func (s *WindowSystem) Init() error {
	s.InitCalls++
	if s.FailInit {
		return s.fail(65544, "platform unavailable")
	}
	return nil
}

func (s *WindowSystem) CreateWindow(win engineconfig.Window, ctx engineconfig.Context) (graphics.Window, error) {
	s.LastContext = ctx
	if s.FailCreate {
		return nil, s.fail(65543, "requested OpenGL version unavailable")
	}
	if s.Ctx == nil {
		s.Ctx = &Context{Debug: ctx.Debug}
	}
	w := &Window{sys: s, Width: win.Width, Height: win.Height}
	s.Created = append(s.Created, w)
	return w, nil
}

func (s *WindowSystem) PollEvents() {
	s.PollCalls++
	if len(s.Created) == 0 {
		return
	}
	w := s.Created[len(s.Created)-1]
	if s.ResizeOn == s.PollCalls && w.resize != nil {
		w.Width, w.Height = s.Resize[0], s.Resize[1]
		w.resize(w.Width, w.Height)
	}
	if s.CloseAfter == s.PollCalls {
		w.closed = true
	}
}

func (s *WindowSystem) Terminate() { s.TerminateCalls++ }

// Window is the fake window created by WindowSystem.
type Window struct {
	sys    *WindowSystem
	closed bool
	resize func(width, height int)

	Width, Height int
	Current       bool
	Destroyed     bool
	Swaps         int
	// Events is the order of SwapBuffers and SetShouldClose calls.
	Events []string
}

var _ graphics.Window = (*Window)(nil)

func (w *Window) MakeContextCurrent() { w.Current = true }

func (w *Window) LoadContext() (graphics.Context, error) {
	if w.sys.FailLoad || !w.Current {
		return nil, ErrScripted
	}
	return w.sys.Ctx, nil
}

func (w *Window) ShouldClose() bool { return w.closed }

func (w *Window) SetShouldClose(close bool) {
	w.closed = close
	w.Events = append(w.Events, "close")
}

func (w *Window) SwapBuffers() {
	w.Swaps++
	w.Events = append(w.Events, "swap")
}

func (w *Window) FramebufferSize() (int, int) { return w.Width, w.Height }

func (w *Window) SetResizeCallback(fn func(width, height int)) { w.resize = fn }

func (w *Window) Destroy() { w.Destroyed = true }
