package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Direction returns the unit vector from a to b, or the zero vector when the
// points coincide.
func Direction(from, to cp.Vector) cp.Vector {
	d := to.Sub(from)
	if d.LengthSq() == 0 {
		return cp.Vector{}
	}
	return d.Normalize()
}
