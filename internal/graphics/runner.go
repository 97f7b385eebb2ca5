package graphics

import (
	"errors"
	"fmt"

	"graphics-prototyper/internal/engineconfig"
	"graphics-prototyper/internal/logger"
)

// Bootstrap failures. Each one is fatal: Run logs it once and returns ExitFailure.
var (
	ErrAlreadyRunning   = errors.New("runner already owns a window")
	ErrWindowSystemInit = errors.New("could not initialize the window system")
	ErrCreateWindow     = errors.New("could not create a window")
	ErrLoadFunctions    = errors.New("could not load OpenGL")
	ErrAppInit          = errors.New("application failed to initialize")
)

// Process exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = -1
)

// Application is the code driven by the main loop.
type Application interface {
	// Initialize runs once after the context is loaded. Returning false aborts startup.
	Initialize(ctx Context, width, height int) bool
	// Update advances the application. Returning false asks the loop to stop.
	Update(dt float32) bool
	Render()
	OnResize(width, height int)
}

// Diagnostics receives window-system errors and decides how GL errors are reported
// once a context exists.
type Diagnostics interface {
	WindowSystemError(code int, desc string)
	Attach(ctx Context, cfg engineconfig.Context)
	PushActive() bool
	CheckErrors()
}

// Runner owns the window for the lifetime of Run and drives the frame loop.
type Runner struct {
	sys  WindowSystem
	app  Application
	diag Diagnostics
	log  *logger.Logger
	cfg  engineconfig.Config

	window Window
}

// NewRunner returns a Runner that creates its window from cfg. Fatal bootstrap
// errors are written to log.
func NewRunner(sys WindowSystem, app Application, diag Diagnostics, log *logger.Logger, cfg engineconfig.Config) *Runner {
	return &Runner{sys: sys, app: app, diag: diag, log: log, cfg: cfg}
}

// Run bootstraps the window and loops until the close flag is set. It returns ExitOK
// after a graceful shutdown and ExitFailure if any bootstrap step fails.
func (r *Runner) Run() int {
	if err := r.run(); err != nil {
		r.log.Log(fatalMessage(err, r.cfg.Context))
		return ExitFailure
	}
	return ExitOK
}

func fatalMessage(err error, ctx engineconfig.Context) string {
	switch {
	case errors.Is(err, ErrWindowSystemInit):
		return "Could not initialize the window system. Cannot continue."
	case errors.Is(err, ErrCreateWindow):
		return "Could not create a window. Cannot continue."
	case errors.Is(err, ErrLoadFunctions):
		return fmt.Sprintf("Could not load OpenGL %d.%d. Cannot continue.", ctx.Major, ctx.Minor)
	case errors.Is(err, ErrAppInit):
		return "Application failed to initialize. Cannot continue."
	}
	return err.Error() + ". Cannot continue."
}

func (r *Runner) run() error {
	if r.window != nil {
		return ErrAlreadyRunning
	}
	r.sys.SetErrorCallback(r.diag.WindowSystemError)
	if err := r.sys.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrWindowSystemInit, err)
	}
	defer r.sys.Terminate()

	win, err := r.sys.CreateWindow(r.cfg.Window, r.cfg.Context)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCreateWindow, err)
	}
	r.window = win
	defer func() {
		win.Destroy()
		r.window = nil
	}()

	// A context must be current before its functions can be loaded.
	win.MakeContextCurrent()
	ctx, err := win.LoadContext()
	if err != nil {
		return fmt.Errorf("%w %d.%d: %w", ErrLoadFunctions, r.cfg.Context.Major, r.cfg.Context.Minor, err)
	}
	r.diag.Attach(ctx, r.cfg.Context)

	win.SetResizeCallback(r.app.OnResize)
	width, height := win.FramebufferSize()
	if !r.app.Initialize(ctx, width, height) {
		return ErrAppInit
	}

	r.loop(win)
	return nil
}

// loop runs poll, update, render, present until the close flag is seen. When Update
// asks to stop, that frame is still rendered and presented and the loop ends at the
// next close-flag check.
func (r *Runner) loop(win Window) {
	for !win.ShouldClose() {
		r.sys.PollEvents()

		if !r.app.Update(0) {
			win.SetShouldClose(true)
		}

		r.app.Render()
		if !r.diag.PushActive() {
			r.diag.CheckErrors()
		}

		win.SwapBuffers()
	}
}
