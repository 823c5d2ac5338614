package render

import (
	"math"

	"kaboom/internal/field"
	"kaboom/pkg/vec3"
)

// maxSteps bounds the marching loop so divergent rays terminate.
const maxSteps = 128

// Trace walks a ray from orig along dir by sphere tracing. It returns the
// first position where the field goes negative and true, or the zero vector
// and false when the step budget runs out. A miss is a normal outcome for
// rays that pass the object, not an error.
//
// The step is under-relaxed to 10% of the field value with a floor of 0.01,
// so progress is guaranteed even where the gradient is near zero. Not proven
// to converge for arbitrary fields; fine for a bounded bumpy sphere.
func Trace(fp field.Params, orig, dir vec3.Vec3) (vec3.Vec3, bool) {
	pos := orig
	for i := 0; i < maxSteps; i++ {
		d := fp.Distance(pos)
		if d < 0 {
			return pos, true
		}
		pos = pos.Add(dir.Scale(math.Max(d*0.1, 0.01)))
	}
	return vec3.Vec3{}, false
}
