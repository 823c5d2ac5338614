// Package render casts one camera ray per pixel into the distance field and
// turns the resulting framebuffer into display-ready pixel bytes.
package render

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"kaboom/internal/field"
	"kaboom/pkg/vec3"
)

// Fixed scene constants: camera at the origin side of the sphere looking
// toward -z, one light, flat background for misses.
var (
	cameraOrigin = vec3.New(0, 0, 3)
	lightPos     = vec3.New(0, 10, 10)
	background   = vec3.New(0.3, 0.9, 0.2)
)

// ambientFloor is the minimum shading intensity on hits.
const ambientFloor = 0.4

// Config describes one render pass.
type Config struct {
	Width  int
	Height int
	FOV    float64 // vertical field of view in radians
	Field  field.Params

	// Workers caps the number of row-rendering goroutines; 0 means
	// runtime.NumCPU(). The output is identical for any worker count.
	Workers int
}

// Validate rejects parameters the pipeline cannot render.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.FOV <= 0 {
		return fmt.Errorf("invalid render parameters: width=%d height=%d fov=%g", c.Width, c.Height, c.FOV)
	}
	return nil
}

// Frame renders a full framebuffer. Rows are distributed over a pool of
// goroutines; every pixel writes only its own cell, so the rows need no
// locking, only the final join.
func Frame(cfg Config) (*Framebuffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fb := NewFramebuffer(cfg.Width, cfg.Height)
	colors := fb.Colors()
	dirZ := -float64(cfg.Height) / (2 * math.Tan(cfg.FOV/2))

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make(chan int, cfg.Height)
	for j := 0; j < cfg.Height; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				for i := 0; i < cfg.Width; i++ {
					dirX := (float64(i) + 0.5) - float64(cfg.Width)/2
					dirY := -(float64(j) + 0.5) + float64(cfg.Height)/2
					dir := vec3.New(dirX, dirY, dirZ).Normalize()
					colors[fb.Index(i, j)] = shade(cfg.Field, dir)
				}
			}
		}()
	}
	wg.Wait()

	return fb, nil
}

// shade traces one camera ray and picks the hit or miss color.
func shade(fp field.Params, dir vec3.Vec3) vec3.Vec3 {
	hit, ok := Trace(fp, cameraOrigin, dir)
	if !ok {
		return background
	}
	lightDir := lightPos.Sub(hit).Normalize()
	intensity := math.Max(ambientFloor, lightDir.Dot(fp.Normal(hit)))
	return vec3.New(1, 1, 1).Scale(intensity)
}

// Render runs a full pass and returns the interleaved RGB pixel buffer of
// length Width*Height*3. This is the module's external contract.
func Render(cfg Config) ([]byte, error) {
	fb, err := Frame(cfg)
	if err != nil {
		return nil, err
	}
	return EncodeRGB(fb), nil
}
