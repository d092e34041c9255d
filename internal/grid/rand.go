package grid

import "math/rand/v2"

// RNG is the randomness the engine consumes when spawning tiles.
// *rand.Rand from math/rand/v2 satisfies it; tests inject scripted sources.
type RNG interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a deterministic RNG for the given seed.
func NewRand(seed int64) RNG {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
