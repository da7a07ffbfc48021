// Package rng provides the random source used by world generation and enemy AI.
// All randomness is injected so a session can be replayed from a seed and tests
// can script exact outcomes.
package rng

import (
	"math/rand"
	"time"
)

// Source is the subset of *rand.Rand the simulation draws from.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// New returns a source seeded with seed, or with the current time when seed is 0.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// IntRange returns a uniform integer in [lo, hi], both ends inclusive.
func IntRange(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Uniform returns a uniform float in [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Pick returns a uniformly chosen element of items. items must not be empty.
func Pick[T any](src Source, items []T) T {
	return items[src.Intn(len(items))]
}
