// Package aco implements Ant Colony Optimization for the symmetric
// Travelling Salesman Problem.
//
// A Colony owns a mutable pheromone matrix and a frozen snapshot of the
// caller's distance matrix. Each iteration every ant builds one Hamiltonian
// cycle by repeated weighted random choice: from city c an unvisited city y
// is drawn with probability proportional to
//
//	pheromone[c,y]^Alpha · (1/distance[c,y])^Beta
//
// The iteration's lightest tour is compared with the global best, then the
// pheromone matrix evaporates (every entry multiplied by Decay) and the
// iteration's best tour deposits 1/distance on both directions of each of
// its edges. After Iterations rounds, Run returns the global best tour.
//
// A distance of math.Inf(1) means "no direct edge": its score is zero and
// the city is never drawn unless every remaining candidate is equally
// unreachable, in which case the choice degenerates to uniform.
//
// All randomness flows from Options.Seed through SplitMix64-derived per-ant
// streams, so results are reproducible for any Options.Workers value.
//
// Use this package when you need a good (not provably optimal) tour on
// instances too large for exact solvers.
package aco
