// Package aco - distance matrix validation and snapshot.
//
// The engine never reads the caller's matrix after construction: New copies
// it once into a flat row-major buffer, validating as it reads. All checks
// run before the first iteration; only sentinel errors from types.go.
//
// Checks performed on every off-diagonal entry:
//   - NaN               ⇒ ErrBadDistance
//   - negative (incl −∞) ⇒ ErrNegativeDistance
//   - |d[i][j]−d[j][i]| > symTol (unless both +∞) ⇒ ErrAsymmetric
//
// Diagonal entries are ignored entirely: d[i][i] is unused by the engine and
// instance readers are free to leave it zero or +∞.
package aco

import (
	"math"

	"github.com/Hitsuji-M/aco-tsp/matrix"
)

// symTol is the structural tolerance for the symmetry check.
const symTol = 1e-12

// snapshotDistances validates m and returns (n, validated deep copy).
// +Inf off-diagonal entries are legal and mean "no direct edge".
// Fast path for *matrix.Dense (single flat copy), generic path otherwise.
// Complexity: O(n²) time and space.
func snapshotDistances(m matrix.Matrix) (int, *matrix.Dense, error) {
	// Stage 1: shape.
	if m == nil {
		return 0, nil, ErrNilMatrix
	}
	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc {
		return 0, nil, ErrNonSquare
	}
	if nr < 2 {
		return 0, nil, ErrTooFewCities
	}
	n := nr

	// Stage 2: copy.
	var (
		snap *matrix.Dense
		err  error
	)
	if d, ok := m.(*matrix.Dense); ok {
		snap = d.Clone().(*matrix.Dense)
	} else {
		snap, err = copyGeneric(m, n)
		if err != nil {
			return 0, nil, err
		}
	}
	flat := snap.Values()

	// Stage 3: per-entry checks on the copy.
	var (
		i, j     int
		dij, dji float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			dij = flat[i*n+j]
			if math.IsNaN(dij) {
				return 0, nil, ErrBadDistance
			}
			if dij < 0 {
				return 0, nil, ErrNegativeDistance
			}
			// Symmetry: check each unordered pair once.
			if j < i {
				continue
			}
			dji = flat[j*n+i]
			if math.IsInf(dij, 1) && math.IsInf(dji, 1) {
				continue
			}
			if math.Abs(dij-dji) > symTol {
				return 0, nil, ErrAsymmetric
			}
		}
	}

	return n, snap, nil
}

// copyGeneric reads an arbitrary Matrix implementation element by element.
// An At failure on an in-range index means the implementation violates its
// own shape contract; surface it as ErrNonSquare.
// Complexity: O(n²).
func copyGeneric(m matrix.Matrix, n int) (*matrix.Dense, error) {
	snap, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, ErrNonSquare
	}

	var (
		flat = snap.Values()
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, ErrNonSquare
			}
			flat[i*n+j] = v
		}
	}

	return snap, nil
}
