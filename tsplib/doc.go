// Package tsplib reads the subset of the TSPLIB format used by explicit
// symmetric instances with a LOWER_DIAG_ROW edge-weight section (for example
// gr17/gr21/gr24).
//
// The reader scans the file line by line:
//
//	DIMENSION: <n>          — instance size
//	EDGE_WEIGHT_SECTION     — start of the whitespace-separated weight list
//	DISPLAY_DATA_SECTION    — end of the weight list
//	EOF                     — end of the weight list
//
// Every other header line is ignored. The weight list holds the lower
// triangle including the diagonal, row by row: n·(n+1)/2 values. Non-positive
// entries (including the zero diagonal) are mapped to math.Inf(1), meaning
// "no direct edge", and the triangle is mirrored into a full symmetric
// matrix.Dense ready for aco.New.
package tsplib
