// Package aco - value types and sentinel errors shared across the engine.
//
// Design principles (matching the rest of the module):
//   - Strict sentinels: misuse is reported via errors.Is-able package values.
//   - No logging, no panics on user input.
//   - Tour is an ordinary value type ordered by Weight only.
package aco

import "errors"

// ErrTooFewCities is returned when an instance has fewer than two cities.
var ErrTooFewCities = errors.New("aco: instance needs at least two cities")

// ErrNilMatrix is returned when the distance matrix is nil.
var ErrNilMatrix = errors.New("aco: nil distance matrix")

// ErrNonSquare is returned when the distance matrix is not square.
var ErrNonSquare = errors.New("aco: distance matrix must be square")

// ErrNegativeDistance is returned when an off-diagonal distance is negative.
var ErrNegativeDistance = errors.New("aco: negative distance")

// ErrBadDistance is returned when an off-diagonal distance is NaN.
var ErrBadDistance = errors.New("aco: NaN distance")

// ErrAsymmetric is returned when d[i][j] and d[j][i] disagree.
var ErrAsymmetric = errors.New("aco: asymmetric distance matrix")

// ErrBadOptions is returned when an Options field is out of range.
var ErrBadOptions = errors.New("aco: option out of range")

// ErrNotIdle is returned when a Colony is reconfigured or re-run after its
// search has started.
var ErrNotIdle = errors.New("aco: search already started")

// ErrInvalidTour is returned by ValidateTour when a tour is not a single
// Hamiltonian cycle over all cities.
var ErrInvalidTour = errors.New("aco: not a Hamiltonian cycle")

// Edge is one directed step of a tour, from city From to city To.
type Edge struct {
	From, To int
}

// Tour is a Hamiltonian cycle plus its total edge-distance weight.
//
// Edges holds n directed edges: every city index in [0,n) appears exactly
// once as a From endpoint, consecutive edges chain (Edges[i].To ==
// Edges[i+1].From), and the last edge returns to Edges[0].From. Tours are
// immutable after construction and comparable by Weight only.
type Tour struct {
	Edges  []Edge
	Weight float64
}

// Less reports whether t is strictly lighter than o.
// This is the single total order on tours; ties are arbitrary.
func (t Tour) Less(o Tour) bool { return t.Weight < o.Weight }

// Cities returns the closed vertex sequence of the tour:
// [start, …, start], length len(Edges)+1. Empty tour ⇒ nil.
// Complexity: O(n).
func (t Tour) Cities() []int {
	if len(t.Edges) == 0 {
		return nil
	}
	out := make([]int, 0, len(t.Edges)+1)
	out = append(out, t.Edges[0].From)

	var e Edge
	for _, e = range t.Edges {
		out = append(out, e.To)
	}

	return out
}

// Clone returns a deep copy of t.
// Complexity: O(n).
func (t Tour) Clone() Tour {
	cp := Tour{Weight: t.Weight}
	if t.Edges != nil {
		cp.Edges = append([]Edge(nil), t.Edges...)
	}

	return cp
}

// ValidateTour checks that t is a single Hamiltonian cycle over n cities:
// exactly n chained edges, every city a From endpoint exactly once, closing
// back to the first city. Returns ErrInvalidTour otherwise.
// Complexity: O(n) time, O(n) space.
func ValidateTour(t Tour, n int) error {
	if n < 2 || len(t.Edges) != n {
		return ErrInvalidTour
	}

	var (
		seen  = make([]bool, n)
		start = t.Edges[0].From
		i     int
		e     Edge
	)
	for i, e = range t.Edges {
		// Endpoint range.
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return ErrInvalidTour
		}
		// Each city departs exactly once.
		if seen[e.From] {
			return ErrInvalidTour
		}
		seen[e.From] = true
		// Consecutive edges must chain into a single cycle.
		if i+1 < n && t.Edges[i+1].From != e.To {
			return ErrInvalidTour
		}
	}
	// The closing edge must return to the start.
	if t.Edges[n-1].To != start {
		return ErrInvalidTour
	}

	return nil
}
