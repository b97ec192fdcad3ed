package common

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestRandDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d diverged: %v != %v", i, x, y)
		}
	}
}

func TestRandSamplesInBounds(t *testing.T) {
	r := NewRand(7)
	center := cp.Vector{X: 100, Y: -50}
	half := cp.Vector{X: 20, Y: 10}
	for i := 0; i < 500; i++ {
		p := r.InRect(center, half)
		if p.X < 80 || p.X >= 120 || p.Y < -60 || p.Y >= -40 {
			t.Fatalf("point %v outside rect", p)
		}
		if d := r.InCircle(center, 75).Distance(center); d > 75+1e-9 {
			t.Fatalf("circle sample at distance %v", d)
		}
	}
	if r.Chance(0) {
		t.Fatalf("Chance(0) must be false")
	}
}

func TestNilRandPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic drawing from a nil Rand")
		}
	}()
	var r *Rand
	r.Float64()
}

func TestDirection(t *testing.T) {
	d := Direction(cp.Vector{}, cp.Vector{X: 3, Y: 4})
	if d.Distance(cp.Vector{X: 0.6, Y: 0.8}) > 1e-9 {
		t.Fatalf("unexpected direction %v", d)
	}
	if z := Direction(cp.Vector{X: 1, Y: 1}, cp.Vector{X: 1, Y: 1}); z != (cp.Vector{}) {
		t.Fatalf("expected zero vector, got %v", z)
	}
	if Sign(-2) != -1 || Sign(0) != 0 || Sign(5) != 1 {
		t.Fatalf("Sign mismatch")
	}
}
