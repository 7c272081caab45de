package fireworks

import "math/rand/v2"

// Source supplies uniform random numbers in [0, 1). Every random draw in the
// simulation goes through a Source so tests can substitute a deterministic
// one. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// globalSource draws from the math/rand/v2 top-level generator.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns a Source backed by the process-wide generator.
func DefaultSource() Source { return globalSource{} }

// NewSeededSource returns a reproducible Source.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
