package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graphics-prototyper/internal/engineconfig"
	"graphics-prototyper/internal/graphics"
	"graphics-prototyper/internal/graphics/graphicstest"
	"graphics-prototyper/internal/logger"
)

func newReporter(enabled, useColor bool) (*Reporter, *logger.Logger, *logger.Logger) {
	errs, info := logger.New(nil), logger.New(nil)
	cfg := engineconfig.Diagnostics{Enabled: enabled, Synchronous: true, Color: engineconfig.ColorNever}
	return New(cfg, useColor, errs, info), errs, info
}

func TestIgnoredIDs(t *testing.T) {
	r, errs, _ := newReporter(true, false)
	types := []uint32{graphics.DebugTypeError, graphics.DebugTypePerformance, 0}
	severities := []uint32{graphics.DebugSeverityHigh, graphics.DebugSeverityNotification, 0}
	for _, id := range []uint32{131169, 131185, 131218, 131204} {
		assert.True(t, Ignored(id))
		for _, typ := range types {
			for _, sev := range severities {
				r.OnDebugMessage(graphics.DebugSourceAPI, typ, id, sev, "noise")
			}
		}
	}
	assert.Empty(t, errs.Lines())
	assert.False(t, Ignored(131170))
}

func TestTypeLabels(t *testing.T) {
	want := map[uint32]string{
		graphics.DebugTypeError:              "Error",
		graphics.DebugTypeDeprecatedBehavior: "Deprecated Behavior",
		graphics.DebugTypeUndefinedBehavior:  "Undefined Behavior",
		graphics.DebugTypePortability:        "Portability",
		graphics.DebugTypePerformance:        "Performance",
		graphics.DebugTypeMarker:             "Marker",
		graphics.DebugTypePushGroup:          "Push Group",
		graphics.DebugTypePopGroup:           "Pop Group",
		graphics.DebugTypeOther:              "Other",
	}
	for typ, label := range want {
		assert.Equal(t, label, TypeLabel(typ))
	}
	assert.Equal(t, "", TypeLabel(0xdead))
}

func TestSourceAndSeverityLabels(t *testing.T) {
	sources := map[uint32]string{
		graphics.DebugSourceAPI:            "API",
		graphics.DebugSourceWindowSystem:   "Window System",
		graphics.DebugSourceShaderCompiler: "Shader Compiler",
		graphics.DebugSourceThirdParty:     "Third Party",
		graphics.DebugSourceApplication:    "Application",
		graphics.DebugSourceOther:          "Other",
	}
	for source, label := range sources {
		assert.Equal(t, label, SourceLabel(source))
	}
	severities := map[uint32]string{
		graphics.DebugSeverityHigh:         "high",
		graphics.DebugSeverityMedium:       "medium",
		graphics.DebugSeverityLow:          "low",
		graphics.DebugSeverityNotification: "notification",
	}
	for severity, label := range severities {
		assert.Equal(t, label, SeverityLabel(severity))
	}
	assert.Equal(t, "", SourceLabel(1))
	assert.Equal(t, "", SeverityLabel(1))
}

func TestOnDebugMessage(t *testing.T) {
	r, errs, _ := newReporter(true, false)
	r.OnDebugMessage(graphics.DebugSourceShaderCompiler, graphics.DebugTypePerformance, 42, graphics.DebugSeverityMedium, "slow path")
	assert.Equal(t, []string{
		"Debug Message(42): slow path",
		"  Type: Performance",
		"  Source: Shader Compiler",
		"  Severity: medium",
	}, errs.Lines())
}

func TestOnDebugMessageUnknownEnums(t *testing.T) {
	r, errs, _ := newReporter(true, true)
	assert.NotPanics(t, func() {
		r.OnDebugMessage(1, 2, 3, 4, "odd")
	})
	assert.Equal(t, []string{
		"Debug Message(3): odd",
		"  Type: ",
		"  Source: ",
		"  Severity: ",
	}, errs.Lines())
}

func TestErrorTypeIsMarked(t *testing.T) {
	r, errs, _ := newReporter(true, true)
	r.OnDebugMessage(graphics.DebugSourceAPI, graphics.DebugTypeError, 1280, graphics.DebugSeverityHigh, "boom")
	r.OnDebugMessage(graphics.DebugSourceAPI, graphics.DebugTypeOther, 1, graphics.DebugSeverityLow, "calm")
	lines := errs.Lines()
	require.Len(t, lines, 8)
	assert.Equal(t, "Debug Message(1280): \x1b[91mboom\x1b[0m", lines[0])
	assert.Equal(t, "  Type: Error", lines[1])
	assert.Equal(t, "Debug Message(1): calm", lines[4])

	plain, plainErrs, _ := newReporter(true, false)
	plain.OnDebugMessage(graphics.DebugSourceAPI, graphics.DebugTypeError, 1280, graphics.DebugSeverityHigh, "boom")
	assert.Equal(t, "Debug Message(1280): boom", plainErrs.Lines()[0])
}

func TestCheckErrorsDrains(t *testing.T) {
	r, errs, _ := newReporter(true, false)
	ctx := &graphicstest.Context{Errors: []uint32{
		graphics.InvalidEnum,
		graphics.OutOfMemory,
		graphics.InvalidFramebufferOperation,
		0x9999,
	}}
	r.Attach(ctx, engineconfig.Context{})

	r.CheckErrorsAt("render.go", 12)
	assert.Equal(t, []string{
		"render.go(12): INVALID_ENUM",
		"render.go(12): OUT_OF_MEMORY",
		"render.go(12): INVALID_FRAMEBUFFER_OPERATION",
		"render.go(12): ",
	}, errs.Lines())
	assert.Empty(t, ctx.Errors)
	assert.Equal(t, 5, ctx.GetErrorCalls)
}

func TestCheckErrorsEmptyQueue(t *testing.T) {
	r, errs, _ := newReporter(true, false)
	ctx := &graphicstest.Context{}
	r.Attach(ctx, engineconfig.Context{})
	r.CheckErrors()
	assert.Empty(t, errs.Lines())
	assert.Equal(t, 1, ctx.GetErrorCalls)
}

func TestCheckErrorsUsesCallerLocation(t *testing.T) {
	r, errs, _ := newReporter(true, false)
	r.Attach(&graphicstest.Context{Errors: []uint32{graphics.InvalidValue}}, engineconfig.Context{})
	r.CheckErrors()
	lines := errs.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "debug_test.go(")
	assert.Contains(t, lines[0], "): INVALID_VALUE")
}

func TestCheckErrorsBounded(t *testing.T) {
	r, errs, _ := newReporter(true, false)
	codes := make([]uint32, maxDrain+10)
	for i := range codes {
		codes[i] = graphics.InvalidOperation
	}
	ctx := &graphicstest.Context{Errors: codes}
	r.Attach(ctx, engineconfig.Context{})
	r.CheckErrorsAt("x.go", 1)
	assert.Len(t, errs.Lines(), maxDrain)
	assert.Len(t, ctx.Errors, 10)
}

func TestDisabledIsNoop(t *testing.T) {
	r, errs, info := newReporter(false, false)
	ctx := &graphicstest.Context{Debug: true, Errors: []uint32{graphics.InvalidEnum}}
	r.Attach(ctx, engineconfig.Context{Debug: true})
	r.CheckErrors()
	r.CheckErrorsAt("x.go", 1)

	assert.False(t, r.Enabled())
	assert.False(t, r.PushActive())
	assert.Nil(t, ctx.Callback)
	assert.Equal(t, 0, ctx.GetErrorCalls)
	assert.Empty(t, errs.Lines())
	assert.Empty(t, info.Lines())
}

func TestAttach(t *testing.T) {
	r, errs, info := newReporter(true, false)
	ctx := &graphicstest.Context{Debug: true}
	r.Attach(ctx, engineconfig.Context{Debug: true})
	assert.True(t, r.PushActive())
	assert.True(t, ctx.Synchronous)
	assert.Equal(t, []string{"Using debug context for error logging"}, info.Lines())

	ctx.Emit(graphics.DebugSourceApplication, graphics.DebugTypeMarker, 7, graphics.DebugSeverityNotification, "frame")
	assert.Equal(t, "Debug Message(7): frame", errs.Lines()[0])

	r, _, info = newReporter(true, false)
	r.Attach(&graphicstest.Context{Debug: false}, engineconfig.Context{Debug: true})
	assert.False(t, r.PushActive())
	assert.Equal(t, []string{"Debug Contexts Not Available"}, info.Lines())

	r, _, info = newReporter(true, false)
	r.Attach(&graphicstest.Context{Debug: true}, engineconfig.Context{Debug: false})
	assert.False(t, r.PushActive())
	assert.Equal(t, []string{"Debug Contexts Disabled"}, info.Lines())
}

func TestWindowSystemError(t *testing.T) {
	r, errs, _ := newReporter(false, false)
	r.WindowSystemError(65543, "version unavailable")
	assert.Equal(t, []string{"Window System Error 65543: version unavailable"}, errs.Lines())
}
