package render

import (
	"testing"

	"kaboom/internal/field"
	"kaboom/pkg/vec3"
)

func TestTraceHitsStraightOn(t *testing.T) {
	fp := field.Default()
	hit, ok := Trace(fp, vec3.New(0, 0, 3), vec3.New(0, 0, -1))
	if !ok {
		t.Fatal("ray aimed at the sphere reported a miss")
	}
	if d := fp.Distance(hit); d >= 0 {
		t.Fatalf("hit position %v has distance %v, want negative", hit, d)
	}
	// The surface lies within radius+amplitude of the origin.
	if n := hit.Norm(); n > fp.Radius+fp.Amplitude {
		t.Fatalf("hit position %v is %v from origin, outside the displacement bound", hit, n)
	}
}

func TestTraceMissesWhenAimedAway(t *testing.T) {
	fp := field.Default()
	if pos, ok := Trace(fp, vec3.New(0, 0, 3), vec3.New(0, 0, 1)); ok {
		t.Fatalf("ray aimed away from the sphere reported a hit at %v", pos)
	}
}

func TestTraceDeterministic(t *testing.T) {
	fp := field.Default()
	orig := vec3.New(0, 0, 3)
	dir := vec3.New(0.1, 0.05, -1).Normalize()
	a, okA := Trace(fp, orig, dir)
	b, okB := Trace(fp, orig, dir)
	if okA != okB || a != b {
		t.Fatalf("trace diverged between calls: (%v,%v) then (%v,%v)", a, okA, b, okB)
	}
}
