// Package aco_test provides lightweight helpers shared across *_test.go
// files in this package. Intentionally minimal and stdlib-only.
package aco_test

import (
	"math"
	"testing"

	"github.com/Hitsuji-M/aco-tsp/aco"
	"github.com/Hitsuji-M/aco-tsp/matrix"
)

const (
	// seedDet is the deterministic seed used across tests.
	seedDet = int64(42)

	// epsTiny absorbs floating-point noise in weight comparisons.
	epsTiny = 1e-9
)

// mkDense builds a *matrix.Dense from row data, failing the test on shape errors.
func mkDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// unitSquare returns the canonical 4-city instance: unit-distance perimeter
// edges, √2 diagonals. The optimal tour is the perimeter, weight 4.
func unitSquare(t *testing.T) *matrix.Dense {
	t.Helper()
	d := math.Sqrt2

	return mkDense(t, [][]float64{
		{0, 1, d, 1},
		{1, 0, 1, d},
		{d, 1, 0, 1},
		{1, d, 1, 0},
	})
}

// squareOptions mirrors the canonical four-city setup: decay 0.5,
// alpha = beta = 1, one ant, fifty iterations, fixed start.
func squareOptions() aco.Options {
	opts := aco.DefaultOptions()
	opts.Ants = 1
	opts.Iterations = 50
	opts.Seed = seedDet

	return opts
}

// mustColony constructs a Colony or fails the test.
func mustColony(t *testing.T, dist matrix.Matrix, opts aco.Options) *aco.Colony {
	t.Helper()
	c, err := aco.New(dist, opts)
	if err != nil {
		t.Fatalf("aco.New: %v", err)
	}

	return c
}

// assertHamiltonian fails unless tour is a valid Hamiltonian cycle over n cities.
func assertHamiltonian(t *testing.T, tour aco.Tour, n int) {
	t.Helper()
	if err := aco.ValidateTour(tour, n); err != nil {
		t.Fatalf("tour %v invalid: %v", tour.Cities(), err)
	}
}

// hasEdge reports whether tour traverses a-b in either direction.
func hasEdge(tour aco.Tour, a, b int) bool {
	for _, e := range tour.Edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return true
		}
	}

	return false
}
