package clouds

import "fmt"

// Defaults for the single window this program opens.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "Clouds"
)

// Config holds every window and pipeline parameter. There is no external
// configuration source; values come from DefaultConfig and Options.
type Config struct {
	Width      int
	Height     int
	Title      string
	ClearColor Color
	// Wireframe rasterizes polygons as outlines.
	Wireframe bool
	// VSync sets a swap interval of 1.
	VSync bool
}

// Option configures a Config.
type Option func(*Config)

// WithSize sets the window size in screen coordinates.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithClearColor sets the framebuffer clear color.
func WithClearColor(col Color) Option {
	return func(c *Config) { c.ClearColor = col }
}

// WithWireframe toggles outline rasterization.
func WithWireframe(on bool) Option {
	return func(c *Config) { c.Wireframe = on }
}

// WithVSync toggles waiting for vertical sync on present.
func WithVSync(on bool) Option {
	return func(c *Config) { c.VSync = on }
}

// DefaultConfig returns the built-in configuration with opts applied.
func DefaultConfig(opts ...Option) Config {
	c := Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Title:      DefaultTitle,
		ClearColor: ColorSkyBlue,
		VSync:      true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate reports a configuration no window could be created from.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	return nil
}
