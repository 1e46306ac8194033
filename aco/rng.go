// Package aco - deterministic randomness for tour construction.
//
// Goals:
//   - Determinism: same seed ⇒ identical tours across platforms and across
//     any Workers setting.
//   - Encapsulation: a single seed policy and a single weighted-pick helper;
//     no time-based sources anywhere.
//   - Safety: math/rand.Rand is not goroutine-safe, so every ant gets its own
//     stream derived purely from (seed, iteration, ant).
package aco

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche (Vigna 2014 constants). Pure
// function: no RNG state is consumed, which is what makes per-ant streams
// independent of construction scheduling.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// pickWeighted draws an index in [0,len(weights)) with probability
// weights[i]/total. The caller guarantees total > 0, finite, and equal to the
// sum of weights (zero-weight entries are legal and never returned while any
// positive weight remains). Pure function of (weights, rng).
//
// The final positive-weight index absorbs floating-point drift in the
// cumulative sum, so the function always returns a valid index.
//
// Complexity: O(len(weights)).
func pickWeighted(rng *rand.Rand, weights []float64, total float64) int {
	var (
		r    = rng.Float64() * total
		acc  float64
		last = -1
		i    int
		w    float64
	)
	for i, w = range weights {
		if w <= 0 {
			continue
		}
		last = i
		acc += w
		if r < acc {
			return i
		}
	}

	return last
}
