package engineconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// EngineConfigPath is the path to the engine config file, relative to the process working directory.
const EngineConfigPath = "config/engine.yaml"

// Color modes for diagnostics output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Context is the requested OpenGL context. It is handed to the window system by value
// before the window exists; nothing changes it after creation.
type Context struct {
	Major         int  `yaml:"major"`
	Minor         int  `yaml:"minor"`
	Compatibility bool `yaml:"compatibility"`
	DoubleBuffer  bool `yaml:"double_buffer"`
	SRGB          bool `yaml:"srgb"`
	Debug         bool `yaml:"debug"`
}

// Window holds the initial window size and title.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Diagnostics controls the GL error/debug reporter.
type Diagnostics struct {
	Enabled     bool   `yaml:"enabled"`
	Synchronous bool   `yaml:"synchronous"`
	Color       string `yaml:"color"`
	LogFile     string `yaml:"log_file,omitempty"`
}

// Config is everything read at startup.
type Config struct {
	Window      Window      `yaml:"window"`
	Context     Context     `yaml:"context"`
	Diagnostics Diagnostics `yaml:"diagnostics"`
}

// Default returns the built-in settings: a 720x480 window with an OpenGL 4.3 core,
// double-buffered, non-sRGB context. Diagnostics and the debug context are only on in
// builds tagged debug.
func Default() Config {
	return Config{
		Window: Window{
			Width:  720,
			Height: 480,
			Title:  "Graphics Prototyper",
		},
		Context: Context{
			Major:         4,
			Minor:         3,
			Compatibility: false,
			DoubleBuffer:  true,
			SRGB:          false,
			Debug:         debugBuild,
		},
		Diagnostics: Diagnostics{
			Enabled:     debugBuild,
			Synchronous: true,
			Color:       ColorAuto,
		},
	}
}

// Load reads the config at path on top of Default(). A missing file is not an error.
// If the file is invalid, Default() is returned together with the error so the caller
// can warn and keep going.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate reports the first setting that cannot be used to create a window.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Context.Major < 1 || c.Context.Minor < 0 {
		return fmt.Errorf("invalid OpenGL version %d.%d", c.Context.Major, c.Context.Minor)
	}
	switch c.Diagnostics.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Diagnostics.Color)
	}
	return nil
}

// UseColor resolves the color mode against f, which is where diagnostics are written.
func (d Diagnostics) UseColor(f *os.File) bool {
	switch d.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
