package common

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

// Rand is the single seeded generator shared by every system that needs
// randomness. Two Rands with the same seed yield the same sequence.
type Rand struct {
	seed uint64
	r    *rand.Rand
}

func NewRand(seed uint64) *Rand {
	return &Rand{seed: seed, r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Rand) Seed() uint64 {
	if r == nil {
		return 0
	}
	return r.seed
}

// Float64 returns a value in [0, 1). Drawing from a nil Rand panics; every
// draw must come from the injected generator.
func (r *Rand) Float64() float64 {
	if r == nil || r.r == nil {
		panic("common: draw from nil Rand")
	}
	return r.r.Float64()
}

// Range returns a value in [lo, hi).
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p.
func (r *Rand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}

// InRect samples a uniform point in the rectangle centered at c with the given
// half extents.
func (r *Rand) InRect(c, half cp.Vector) cp.Vector {
	return cp.Vector{
		X: r.Range(c.X-half.X, c.X+half.X),
		Y: r.Range(c.Y-half.Y, c.Y+half.Y),
	}
}

// InCircle samples a uniform point within radius of c.
func (r *Rand) InCircle(c cp.Vector, radius float64) cp.Vector {
	angle := r.Range(0, 2*math.Pi)
	dist := radius * math.Sqrt(r.Float64())
	return cp.Vector{X: c.X + dist*math.Cos(angle), Y: c.Y + dist*math.Sin(angle)}
}

// UnitVector returns a random direction.
func (r *Rand) UnitVector() cp.Vector {
	angle := r.Range(0, 2*math.Pi)
	return cp.Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}
