package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG for the provided seed. Identical non-zero seeds yield
// identical streams. A zero seed draws the PCG state from the runtime's
// randomly seeded global source, so two RNGs built from 0 are not
// reproducible.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
