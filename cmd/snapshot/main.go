// Command snapshot renders one frame and writes it as a binary PPM file.
// It needs no display and no build tags.
package main

import (
	"flag"
	"log"
	"os"

	"kaboom/internal/app"
	"kaboom/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	pix, err := render.Render(cfg.RenderConfig())
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(cfg.Out)
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WritePPM(f, pix, cfg.Width, cfg.Height); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %dx%d frame to %s", cfg.Width, cfg.Height, cfg.Out)
}
