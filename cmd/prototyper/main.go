package main

import (
	"os"
	"runtime"

	"graphics-prototyper/internal/app"
	"graphics-prototyper/internal/debug"
	"graphics-prototyper/internal/engineconfig"
	"graphics-prototyper/internal/graphics"
	"graphics-prototyper/internal/logger"
)

func init() {
	// GLFW and GL calls must all come from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	errs := logger.New(os.Stderr)
	info := logger.New(os.Stdout)

	cfg, err := engineconfig.Load(engineconfig.EngineConfigPath)
	if err != nil {
		errs.Logf("Ignoring %s: %v", engineconfig.EngineConfigPath, err)
	}
	if cfg.Diagnostics.LogFile != "" {
		if err := errs.SetFile(cfg.Diagnostics.LogFile); err != nil {
			errs.Logf("Could not open log file: %v", err)
		}
	}

	diag := debug.New(cfg.Diagnostics, cfg.Diagnostics.UseColor(os.Stderr), errs, info)
	runner := graphics.NewRunner(newWindowSystem(), app.New(), diag, errs, cfg)
	return runner.Run()
}
