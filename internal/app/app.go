//go:build ebiten

package app

import (
	"log"
	"os"

	"kaboom/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game presents one rendered frame through the ebiten.Game interface. The
// frame is computed once in New; the run loop only re-presents it.
type Game struct {
	cfg     *Config
	painter *framePainter
	pix     []byte // interleaved RGB copy kept for snapshots
}

// New renders the configured frame and wraps it for presentation.
func New(cfg *Config) (*Game, error) {
	fb, err := render.Frame(cfg.RenderConfig())
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		painter: newFramePainter(fb),
		pix:     render.EncodeRGB(fb),
	}, nil
}

// Update handles key input. The scene is static, so there is nothing to
// advance between frames.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveSnapshot()
	}
	return nil
}

// Draw uploads the rendered frame onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func (g *Game) saveSnapshot() {
	f, err := os.Create(g.cfg.Out)
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	defer f.Close()
	if err := render.WritePPM(f, g.pix, g.cfg.Width, g.cfg.Height); err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	log.Printf("snapshot written to %s", g.cfg.Out)
}
