package app

import (
	"flag"
	"math"

	"kaboom/internal/field"
	"kaboom/internal/render"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width   int
	Height  int
	FOV     float64
	Workers int
	Out     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 640, Height: 480, FOV: math.Pi / 3, Out: "kaboom.ppm"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "frame width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "frame height in pixels")
	fs.Float64Var(&c.FOV, "fov", c.FOV, "vertical field of view in radians")
	fs.IntVar(&c.Workers, "workers", c.Workers, "render goroutines (0 = all CPUs)")
	fs.StringVar(&c.Out, "out", c.Out, "snapshot output path")
}

// RenderConfig translates the flags into a render pass configuration.
func (c *Config) RenderConfig() render.Config {
	return render.Config{
		Width:   c.Width,
		Height:  c.Height,
		FOV:     c.FOV,
		Field:   field.Default(),
		Workers: c.Workers,
	}
}
