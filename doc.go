// Package acotsp solves the symmetric Travelling Salesman Problem
// heuristically with Ant Colony Optimization.
//
// A colony of simulated ants repeatedly constructs round trips over a set of
// cities. Each step of a trip is a weighted random choice biased by a learned
// pheromone matrix and by inverse edge distance; after every iteration the
// pheromone matrix evaporates and the iteration's best tour reinforces its
// own edges. Across iterations the colony converges toward short tours.
//
// Subpackages:
//
//	aco/        — the search engine: Colony, Options, Tour, the iteration loop
//	matrix/     — dense square float64 matrices (distances, pheromones)
//	tsplib/     — reader for explicit lower-diagonal-row edge-weight instances
//	cmd/aco-tsp — command line driver: load an instance, search, report
//
// Quick start:
//
//	dist, _ := tsplib.ParseFile("instances/bays5.tsp")
//	colony, _ := aco.New(dist, aco.DefaultOptions())
//	best, _ := colony.Run()
//	fmt.Println(best.Cities(), best.Weight)
//
// All randomness is seeded: the same Options.Seed reproduces the same tours,
// with any number of construction workers.
package acotsp
