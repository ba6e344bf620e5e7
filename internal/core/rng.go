package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. Every simulation owns its own RNG; nothing shares process-global
// random state.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// FillBinary fills the board with cells independently alive with
// probability 0.5.
func (r *RNG) FillBinary(b *Board) {
	cells := b.Cells()
	for i := range cells {
		cells[i] = uint8(r.r.IntN(2))
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// DrawSeed produces a fresh seed for runs that did not supply one. The
// drawn value is recorded so the run stays reproducible from its record.
func DrawSeed() int64 {
	return int64(rand.Uint64() >> 1)
}
