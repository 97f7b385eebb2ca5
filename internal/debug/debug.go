package debug

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"

	"graphics-prototyper/internal/engineconfig"
	"graphics-prototyper/internal/graphics"
	"graphics-prototyper/internal/logger"
)

// maxDrain bounds one CheckErrors call. Without a current context some drivers
// report an error on every glGetError.
const maxDrain = 1024

// Reporter turns GL errors and debug messages into log records. A disabled Reporter
// never calls into the context.
type Reporter struct {
	enabled     bool
	synchronous bool

	errs  *logger.Logger
	info  *logger.Logger
	errFg *color.Color

	ctx  graphics.Context
	push bool
}

// New returns a Reporter configured by cfg. Records go to errs; status lines such as
// which error path is in use go to info.
func New(cfg engineconfig.Diagnostics, useColor bool, errs, info *logger.Logger) *Reporter {
	errFg := color.New(color.FgHiRed)
	if useColor {
		errFg.EnableColor()
	} else {
		errFg.DisableColor()
	}
	return &Reporter{
		enabled:     cfg.Enabled,
		synchronous: cfg.Synchronous,
		errs:        errs,
		info:        info,
		errFg:       errFg,
	}
}

// Enabled reports whether GL diagnostics are on.
func (r *Reporter) Enabled() bool { return r.enabled }

// PushActive reports whether debug messages are being pushed by the driver. Polling
// with CheckErrors is only needed when they are not.
func (r *Reporter) PushActive() bool { return r.push }

// Attach binds the reporter to a freshly loaded context. If a debug context was
// requested and the driver granted one, OnDebugMessage is installed as its callback.
func (r *Reporter) Attach(ctx graphics.Context, cfg engineconfig.Context) {
	r.ctx = ctx
	r.push = false
	if !r.enabled {
		return
	}
	if !cfg.Debug {
		r.info.Log("Debug Contexts Disabled")
		return
	}
	if !ctx.DebugContext() {
		r.info.Log("Debug Contexts Not Available")
		return
	}
	r.info.Log("Using debug context for error logging")
	ctx.EnableDebugOutput(r.synchronous, r.OnDebugMessage)
	r.push = true
}

// CheckErrors drains the context's error queue, logging each code with the caller's
// file and line.
func (r *Reporter) CheckErrors() {
	if !r.enabled || r.ctx == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	r.drain(file, line)
}

// CheckErrorsAt is CheckErrors with an explicit source location.
func (r *Reporter) CheckErrorsAt(file string, line int) {
	if !r.enabled || r.ctx == nil {
		return
	}
	r.drain(file, line)
}

func (r *Reporter) drain(file string, line int) {
	for i := 0; i < maxDrain; i++ {
		code := r.ctx.GetError()
		if code == graphics.NoError {
			return
		}
		r.errs.Logf("%s(%d): %s", file, line, ErrorLabel(code))
	}
}

// OnDebugMessage logs one debug message unless its id is ignored. It matches
// graphics.DebugMessageFunc.
func (r *Reporter) OnDebugMessage(source, typ, id, severity uint32, message string) {
	if Ignored(id) {
		return
	}
	if typ == graphics.DebugTypeError {
		message = r.errFg.Sprint(message)
	}
	r.errs.Logf("Debug Message(%d): %s\n  Type: %s\n  Source: %s\n  Severity: %s",
		id, message, TypeLabel(typ), SourceLabel(source), SeverityLabel(severity))
}

// WindowSystemError logs an error reported by the window system.
func (r *Reporter) WindowSystemError(code int, desc string) {
	r.errs.Log(fmt.Sprintf("Window System Error %d: %s", code, desc))
}
