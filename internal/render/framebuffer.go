package render

import "kaboom/pkg/vec3"

// Framebuffer stores a 2D grid of linear color values in row-major order.
type Framebuffer struct {
	W, H int
	data []vec3.Vec3
}

// NewFramebuffer allocates a framebuffer with the given dimensions.
// Invalid sizes belong to Config.Validate; callers are expected to have
// rejected them already, and anything non-positive is clamped to 1 here
// so the buffer stays allocatable.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Framebuffer{W: w, H: h, data: make([]vec3.Vec3, w*h)}
}

// Colors exposes the backing slice so callers can read/write values directly.
func (fb *Framebuffer) Colors() []vec3.Vec3 { return fb.data }

// Index returns the linear slice index for coordinates (x, y).
func (fb *Framebuffer) Index(x, y int) int { return y*fb.W + x }
