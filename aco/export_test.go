package aco

import "math/rand"

// Test bridge: expose private kernels to package aco_test without widening
// the production API. Thin pass-throughs only; no extra behavior.

// DefaultSeedForTest mirrors the internal Seed==0 policy value.
const DefaultSeedForTest = defaultRNGSeed

// GeneratePathSeeded builds one tour from start on a fresh seeded stream.
func (c *Colony) GeneratePathSeeded(start int, seed int64) Tour {
	return c.generatePath(start, rngFromSeed(seed))
}

// ChooseCitySeeded performs one next-city draw on a fresh seeded stream.
func (c *Colony) ChooseCitySeeded(from int, visited []bool, seed int64) int {
	return c.chooseCity(from, visited, rngFromSeed(seed))
}

// Evaporate applies one evaporation step.
func (c *Colony) Evaporate() { c.evaporate() }

// Reinforce applies one reinforcement step for t.
func (c *Colony) Reinforce(t Tour) { c.reinforce(t) }

// PheromoneAt reads a single pheromone entry.
func (c *Colony) PheromoneAt(i, j int) float64 { return c.pher[i*c.n+j] }

// PickWeighted exposes the roulette wheel.
func PickWeighted(rng *rand.Rand, weights []float64, total float64) int {
	return pickWeighted(rng, weights, total)
}

// RNGFromSeed exposes the seed policy.
func RNGFromSeed(seed int64) *rand.Rand { return rngFromSeed(seed) }

// DeriveSeed exposes the SplitMix64 stream derivation.
func DeriveSeed(parent int64, stream uint64) int64 { return deriveSeed(parent, stream) }
