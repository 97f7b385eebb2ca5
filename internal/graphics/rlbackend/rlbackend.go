//go:build raylib

// Package rlbackend runs the window loop on raylib. raylib owns its GL context and
// loader, so there is no debug context and the error queue always reads empty.
package rlbackend

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"

	"graphics-prototyper/internal/engineconfig"
	"graphics-prototyper/internal/graphics"
)

// System is a graphics.WindowSystem backed by raylib.
type System struct {
	onError func(code int, desc string)
	window  *Window
}

var _ graphics.WindowSystem = (*System)(nil)

// New returns a raylib window system.
func New() *System {
	return &System{}
}

// SetErrorCallback routes raylib log messages at error level and above to fn.
func (s *System) SetErrorCallback(fn func(code int, desc string)) {
	s.onError = fn
	rl.SetTraceLogCallback(func(level int, text string) {
		if level >= int(rl.LogError) {
			fn(level, text)
		}
	})
}

// Init does nothing; raylib starts up inside InitWindow.
func (s *System) Init() error {
	return nil
}

// CreateWindow opens the window. raylib picks its own GL version and profile and is
// always double buffered; the sRGB and debug hints have no raylib equivalent.
func (s *System) CreateWindow(win engineconfig.Window, ctx engineconfig.Context) (graphics.Window, error) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(win.Width), int32(win.Height), win.Title)
	if !rl.IsWindowReady() {
		return nil, errors.New("raylib window not ready")
	}
	s.window = &Window{}
	return s.window, nil
}

// PollEvents starts a raylib frame. raylib polls input inside EndDrawing, which
// SwapBuffers calls, so the events seen here are the ones gathered at the last swap.
func (s *System) PollEvents() {
	rl.BeginDrawing()
	if s.window != nil && s.window.resize != nil && rl.IsWindowResized() {
		s.window.resize(s.window.FramebufferSize())
	}
}

func (s *System) Terminate() {}

// Window is the raylib main window.
type Window struct {
	closed bool
	resize func(width, height int)
}

var _ graphics.Window = (*Window)(nil)

func (w *Window) MakeContextCurrent() {}

func (w *Window) LoadContext() (graphics.Context, error) {
	return &Context{}, nil
}

func (w *Window) ShouldClose() bool {
	return w.closed || rl.WindowShouldClose()
}

func (w *Window) SetShouldClose(close bool) {
	w.closed = close
}

// SwapBuffers ends the frame, which presents it and polls input.
func (w *Window) SwapBuffers() {
	rl.EndDrawing()
}

func (w *Window) FramebufferSize() (int, int) {
	return rl.GetRenderWidth(), rl.GetRenderHeight()
}

func (w *Window) SetResizeCallback(fn func(width, height int)) {
	w.resize = fn
}

func (w *Window) Destroy() {
	rl.CloseWindow()
}

// Context maps the GL calls onto raylib's rlgl layer.
type Context struct {
	clear rl.Color
}

var _ graphics.Context = (*Context)(nil)

func (c *Context) ClearColor(r, g, b, a float32) {
	c.clear = rl.ColorFromNormalized(rl.NewVector4(r, g, b, a))
}

// Clear clears color and depth together; raylib has no per-buffer clear.
func (c *Context) Clear(mask uint32) {
	if mask&(graphics.ColorBufferBit|graphics.DepthBufferBit) != 0 {
		rl.ClearBackground(c.clear)
	}
}

func (c *Context) Viewport(x, y, width, height int32) {
	rl.Viewport(x, y, width, height)
}

func (c *Context) GetError() uint32 { return graphics.NoError }

func (c *Context) DebugContext() bool { return false }

func (c *Context) EnableDebugOutput(bool, graphics.DebugMessageFunc) {}
