package render

import "kaboom/pkg/vec3"

// clampByte maps a linear channel value to an 8-bit channel, clamping
// out-of-range inputs instead of rejecting them.
func clampByte(c float64) byte {
	v := c * 255
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}

// EncodeRGB converts a framebuffer into interleaved 8-bit RGB bytes in
// row-major order, three bytes per pixel. Purely elementwise.
func EncodeRGB(fb *Framebuffer) []byte {
	colors := fb.Colors()
	pix := make([]byte, len(colors)*3)
	for i, c := range colors {
		base := i * 3
		pix[base+0] = clampByte(c.X)
		pix[base+1] = clampByte(c.Y)
		pix[base+2] = clampByte(c.Z)
	}
	return pix
}

// FillRGBA expands linear colors into buf as RGBA with opaque alpha, the
// layout ebiten.Image.WritePixels expects. buf must hold 4 bytes per pixel.
func FillRGBA(buf []byte, colors []vec3.Vec3) {
	for i, c := range colors {
		base := i * 4
		buf[base+0] = clampByte(c.X)
		buf[base+1] = clampByte(c.Y)
		buf[base+2] = clampByte(c.Z)
		buf[base+3] = 0xff
	}
}
