// Package noise implements the deterministic value noise and fractal
// brownian motion driving the surface displacement. It is seed-free: the
// same coordinates always produce the same value.
package noise

import (
	"math"

	"kaboom/pkg/vec3"
)

// Rows of the fixed rotation applied before octave accumulation. Roughly
// orthonormal; decorrelates the octaves from the lattice axes.
var (
	rotX = vec3.New(0.00, 0.80, 0.60)
	rotY = vec3.New(-0.80, 0.36, -0.48)
	rotZ = vec3.New(-0.60, -0.48, 0.64)
)

// hash maps a float to a pseudo-random value in [0, 1). Cheap decorrelation,
// nothing cryptographic.
func hash(n float64) float64 {
	x := math.Sin(n) * 43758.5453
	return x - math.Floor(x)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*math.Max(0, math.Min(1, t))
}

// Noise3 evaluates 3D value noise at x by trilinear interpolation of hashed
// lattice corners. The interpolation weight scales all three axes of the
// cell offset by the single shared scalar dot(f, (3,3,3)-2f) rather than a
// per-axis smoothstep; the rendered pattern depends on this exact form.
func Noise3(x vec3.Vec3) float64 {
	p := vec3.New(math.Floor(x.X), math.Floor(x.Y), math.Floor(x.Z))
	f := x.Sub(p)
	f = f.Scale(f.Dot(vec3.New(3, 3, 3).Sub(f.Scale(2))))
	n := p.Dot(vec3.New(1, 57, 113))
	return lerp(
		lerp(lerp(hash(n+0), hash(n+1), f.X), lerp(hash(n+57), hash(n+58), f.X), f.Y),
		lerp(lerp(hash(n+113), hash(n+114), f.X), lerp(hash(n+170), hash(n+171), f.X), f.Y),
		f.Z)
}

func rotate(v vec3.Vec3) vec3.Vec3 {
	return vec3.New(rotX.Dot(v), rotY.Dot(v), rotZ.Dot(v))
}

// FBM accumulates four octaves of Noise3 under the fixed rotation. The
// inter-octave scalings 2.32, 3.03 and 2.61 are deliberately not powers of
// two so repeated octaves do not alias periodically. Output is normalized by
// the weight sum 0.9375.
func FBM(x vec3.Vec3) float64 {
	p := rotate(x)
	f := 0.0
	f += 0.5000 * Noise3(p)
	p = p.Scale(2.32)
	f += 0.2500 * Noise3(p)
	p = p.Scale(3.03)
	f += 0.1250 * Noise3(p)
	p = p.Scale(2.61)
	f += 0.0625 * Noise3(p)
	return f / 0.9375
}
