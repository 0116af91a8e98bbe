// Package rng holds the random source shared by the scene generators.
package rng

import (
	"math/rand/v2"
	"time"
)

// Source yields uniform values in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Resolve returns seed, or a clock-based seed when seed is zero.
func Resolve(seed uint64) uint64 {
	for seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return seed
}

// New returns a PCG-backed source. A zero seed picks one from the clock.
func New(seed uint64) *rand.Rand {
	seed = Resolve(seed)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
