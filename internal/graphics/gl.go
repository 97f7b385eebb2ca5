package graphics

import "graphics-prototyper/internal/engineconfig"

// OpenGL enum values used across the window-system boundary. They match the values in
// the GL headers so backends can pass driver values through unchanged.
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	StackOverflow               uint32 = 0x0503
	StackUnderflow              uint32 = 0x0504
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506

	DepthBufferBit uint32 = 0x0100
	ColorBufferBit uint32 = 0x4000

	DebugSourceAPI            uint32 = 0x8246
	DebugSourceWindowSystem   uint32 = 0x8247
	DebugSourceShaderCompiler uint32 = 0x8248
	DebugSourceThirdParty     uint32 = 0x8249
	DebugSourceApplication    uint32 = 0x824A
	DebugSourceOther          uint32 = 0x824B

	DebugTypeError              uint32 = 0x824C
	DebugTypeDeprecatedBehavior uint32 = 0x824D
	DebugTypeUndefinedBehavior  uint32 = 0x824E
	DebugTypePortability        uint32 = 0x824F
	DebugTypePerformance        uint32 = 0x8250
	DebugTypeOther              uint32 = 0x8251
	DebugTypeMarker             uint32 = 0x8268
	DebugTypePushGroup          uint32 = 0x8269
	DebugTypePopGroup           uint32 = 0x826A

	DebugSeverityHigh         uint32 = 0x9146
	DebugSeverityMedium       uint32 = 0x9147
	DebugSeverityLow          uint32 = 0x9148
	DebugSeverityNotification uint32 = 0x826B
)

// DebugMessageFunc receives one message from a debug context.
type DebugMessageFunc func(source, typ, id, severity uint32, message string)

// Context is the slice of the OpenGL API the application uses. It is only valid on
// the thread the window's context is current on.
type Context interface {
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)

	// GetError pops the oldest code from the driver's error queue, or NoError.
	GetError() uint32

	// DebugContext reports whether the driver granted a debug context.
	DebugContext() bool

	// EnableDebugOutput turns on debug output and routes every message to fn.
	EnableDebugOutput(synchronous bool, fn DebugMessageFunc)
}

// Window is the single window owned by a Runner.
type Window interface {
	MakeContextCurrent()

	// LoadContext loads the GL function pointers for the current context.
	LoadContext() (Context, error)

	ShouldClose() bool
	SetShouldClose(close bool)
	SwapBuffers()
	FramebufferSize() (width, height int)

	// SetResizeCallback registers fn to run from PollEvents when the framebuffer changes size.
	SetResizeCallback(fn func(width, height int))
	Destroy()
}

// WindowSystem creates windows and dispatches their events.
type WindowSystem interface {
	// SetErrorCallback registers fn for errors reported by the window system itself.
	SetErrorCallback(fn func(code int, desc string))
	Init() error

	// CreateWindow applies every context hint before creating the window.
	CreateWindow(win engineconfig.Window, ctx engineconfig.Context) (Window, error)

	// PollEvents dispatches pending events and returns without waiting.
	PollEvents()
	Terminate()
}
