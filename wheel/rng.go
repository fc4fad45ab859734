package wheel

import "math/rand/v2"

// RNG abstracts random number generation for deterministic testing
type RNG interface {
	// Float64 returns a pseudo-random number in [0, 1)
	Float64() float64
}

// stdRNG delegates to the auto-seeded math/rand/v2 source
type stdRNG struct{}

func (stdRNG) Float64() float64 { return rand.Float64() }

// DefaultRNG returns the process-wide auto-seeded source
func DefaultRNG() RNG { return stdRNG{} }

// NewSeededRNG returns a reproducible source for simulations and tests
func NewSeededRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
