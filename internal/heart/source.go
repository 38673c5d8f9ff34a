package heart

import "math/rand/v2"

// Source supplies the random draws of the simulation.
type Source interface {
	// Float64 returns a number in [0, 1).
	Float64() float64
	// IntN returns a number in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG-backed Source. A zero seed picks a random one.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
