// Package matrix provides the dense square float64 matrices used by the ACO
// engine: the immutable distance table and the mutable pheromone table.
//
// What & Why:
//
//	The Matrix interface is a uniform abstraction over two-dimensional
//	mutable arrays of float64 values. Dense is the row-major reference
//	implementation backed by a single flat slice for cache friendliness.
//	Bounds are checked on every At/Set; hot loops may instead read the flat
//	backing slice via Dense.Values.
//
// Complexity:
//
//	Rows(), Cols(), At(), Set() run in O(1).
//	Clone(), Fill(), Scale() run in O(rows*cols).
package matrix
