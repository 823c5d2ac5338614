// Package field defines the signed distance field of the noise-displaced
// sphere and its normal estimator.
package field

import (
	"kaboom/internal/noise"
	"kaboom/pkg/vec3"
)

// displacementFreq scales positions before noise sampling.
const displacementFreq = 3.4

// Params holds the field configuration. It is an immutable value passed
// explicitly to every evaluation, so one process can render several
// configurations without shared state.
type Params struct {
	Radius    float64
	Amplitude float64
}

// Default returns the standard field: sphere radius 1.5, noise amplitude 1.
func Default() Params {
	return Params{Radius: 1.5, Amplitude: 1.0}
}

// Distance returns the signed distance from p to the displaced sphere:
// positive outside, negative inside, zero on the perturbed surface.
func (fp Params) Distance(p vec3.Vec3) float64 {
	displacement := -noise.FBM(p.Scale(displacementFreq)) * fp.Amplitude
	return p.Norm() - (fp.Radius + displacement)
}

// Normal estimates the surface normal at pos from forward differences with
// step 0.1. First order only; the eps division cancels in the normalize.
func (fp Params) Normal(pos vec3.Vec3) vec3.Vec3 {
	const eps = 0.1
	d := fp.Distance(pos)
	nx := fp.Distance(pos.Add(vec3.New(eps, 0, 0))) - d
	ny := fp.Distance(pos.Add(vec3.New(0, eps, 0))) - d
	nz := fp.Distance(pos.Add(vec3.New(0, 0, eps))) - d
	return vec3.New(nx, ny, nz).Normalize()
}
