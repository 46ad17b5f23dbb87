package core

import (
	"math/rand"
	"time"
)

// Rand wraps the standard generator so every random decision in the
// simulation (target selection, elite rolls, mark shapes) draws from one
// seedable source. Seed 0 falls back to the clock.
type Rand struct {
	rng *rand.Rand
}

// NewRand creates a generator with the given seed
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n)
func (r *Rand) Intn(n int) int {
	return r.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0)
func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// Range returns a random float in [lo, hi)
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.rng.Float64()*(hi-lo)
}
