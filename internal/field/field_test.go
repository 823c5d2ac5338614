package field

import (
	"math"
	"testing"

	"kaboom/pkg/vec3"
)

func TestDistanceNegativeAtOrigin(t *testing.T) {
	fp := Default()
	if d := fp.Distance(vec3.Vec3{}); d >= 0 {
		t.Fatalf("distance at origin = %v, want negative (origin is inside the sphere)", d)
	}
}

func TestDistancePositiveFarAway(t *testing.T) {
	fp := Default()
	// Displacement is bounded by the amplitude, so anything well past
	// radius+amplitude is outside.
	p := vec3.New(0, 0, 10)
	if d := fp.Distance(p); d <= 0 {
		t.Fatalf("distance at %v = %v, want positive", p, d)
	}
}

func TestDistanceDeterministic(t *testing.T) {
	fp := Default()
	p := vec3.New(0.3, -1.1, 0.9)
	a := fp.Distance(p)
	if b := fp.Distance(p); b != a {
		t.Fatalf("distance changed between calls: %v then %v", a, b)
	}
}

func TestNormalIsUnit(t *testing.T) {
	fp := Default()
	for _, p := range []vec3.Vec3{
		vec3.New(0, 0, 1.5),
		vec3.New(1.1, 0.3, -0.8),
		vec3.New(-1.4, 0.2, 0.1),
	} {
		n := fp.Normal(p)
		if math.Abs(n.Norm()-1) > 1e-12 {
			t.Errorf("normal at %v has length %v, want 1", p, n.Norm())
		}
	}
}

func TestRadiusShiftsDistance(t *testing.T) {
	small := Params{Radius: 0.5, Amplitude: 0}
	big := Params{Radius: 2.0, Amplitude: 0}
	p := vec3.New(0, 1, 0)
	ds, db := small.Distance(p), big.Distance(p)
	if ds <= db {
		t.Fatalf("distance with radius 0.5 (%v) should exceed distance with radius 2 (%v)", ds, db)
	}
	// With zero amplitude the field is an exact sphere.
	if got, want := ds, 0.5; got != want {
		t.Errorf("undisplaced distance = %v, want %v", got, want)
	}
}
