// Package aco - tour weight evaluation.
//
// Pure functions, no side effects. Weights are plain sums of the same
// distance values used for scoring, so a recomputed weight always reproduces
// the stored one. +Inf edges propagate to a +Inf weight instead of erroring:
// the search loop relies on +Inf both for the "unset best" initial value and
// for tours forced across missing edges by the degenerate fallback.
package aco

import "github.com/Hitsuji-M/aco-tsp/matrix"

// pathWeight sums the distance of every edge over the engine's frozen
// distance snapshot. Indices are engine-produced and therefore in range.
// Complexity: O(n).
func (c *Colony) pathWeight(edges []Edge) float64 {
	var (
		sum float64
		e   Edge
	)
	for _, e = range edges {
		sum += c.dist[e.From*c.n+e.To]
	}

	return sum
}

// TourWeight recomputes the weight of t against dist. It is the external
// counterpart of the engine's internal evaluator, for callers that want to
// audit a returned tour against the matrix they supplied.
//
// Returns ErrNilMatrix / ErrNonSquare on a bad matrix and ErrInvalidTour when
// an edge endpoint is out of range. +Inf edges yield a +Inf weight, not an error.
//
// Complexity: O(n).
func TourWeight(dist matrix.Matrix, t Tour) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	n := dist.Rows()
	if n != dist.Cols() {
		return 0, ErrNonSquare
	}

	var (
		sum float64
		e   Edge
		w   float64
		err error
	)
	for _, e = range t.Edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return 0, ErrInvalidTour
		}
		w, err = dist.At(e.From, e.To)
		if err != nil {
			return 0, ErrInvalidTour
		}
		sum += w
	}

	return sum, nil
}
