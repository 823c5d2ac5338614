//go:build ebiten

package app

import (
	"kaboom/internal/render"
	"kaboom/pkg/vec3"

	"github.com/hajimehoshi/ebiten/v2"
)

// framePainter keeps a single RGBA image in sync with a framebuffer.
type framePainter struct {
	colors []vec3.Vec3
	img    *ebiten.Image
	buf    []byte
}

// newFramePainter allocates a painter for the given framebuffer.
func newFramePainter(fb *render.Framebuffer) *framePainter {
	return &framePainter{
		colors: fb.Colors(),
		img:    ebiten.NewImage(fb.W, fb.H),
		buf:    make([]byte, 4*fb.W*fb.H),
	}
}

// Blit uploads the framebuffer into the painter image and draws it.
func (fp *framePainter) Blit(dst *ebiten.Image) {
	render.FillRGBA(fp.buf, fp.colors)
	fp.img.WritePixels(fp.buf)
	dst.DrawImage(fp.img, nil)
}
