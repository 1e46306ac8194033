package tsplib

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/Hitsuji-M/aco-tsp/matrix"
)

// ErrMissingDimension is returned when no valid DIMENSION header precedes the
// edge weight section.
var ErrMissingDimension = errors.New("tsplib: missing or invalid DIMENSION")

// ErrBadEntry is returned when the edge weight section holds a non-numeric token.
var ErrBadEntry = errors.New("tsplib: malformed edge weight")

// ErrTruncated is returned when the edge weight section holds fewer than
// n·(n+1)/2 values.
var ErrTruncated = errors.New("tsplib: edge weight section shorter than dimension requires")

// ParseFile opens path and delegates to Parse.
func ParseFile(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: open instance: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an explicit lower-diagonal-row instance from r and returns the
// full n×n symmetric distance matrix, with non-positive source entries
// mapped to +Inf.
//
// Errors: ErrMissingDimension, ErrBadEntry, ErrTruncated, or a wrapped read
// error from the underlying reader.
//
// Complexity: O(n²) time and space.
func Parse(r io.Reader) (*matrix.Dense, error) {
	var (
		scanner  = bufio.NewScanner(r)
		n        int
		inMatrix bool
		weights  []float64
		line     string
		tok      string
		v        float64
		err      error
	)
	for scanner.Scan() {
		line = scanner.Text()
		switch {
		case strings.HasPrefix(line, "DIMENSION"):
			n, err = parseDimension(line)
			if err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "EDGE_WEIGHT_SECTION"):
			inMatrix = true
		case strings.HasPrefix(line, "DISPLAY_DATA_SECTION"), strings.HasPrefix(line, "EOF"):
			inMatrix = false
		case inMatrix:
			for _, tok = range strings.Fields(line) {
				v, err = strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrBadEntry, tok)
				}
				weights = append(weights, v)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read instance: %w", err)
	}

	if n < 1 {
		return nil, ErrMissingDimension
	}
	if len(weights) < n*(n+1)/2 {
		return nil, ErrTruncated
	}

	return buildSymmetric(n, weights)
}

// parseDimension extracts the integer after the colon of a DIMENSION line.
func parseDimension(line string) (int, error) {
	_, rest, ok := strings.Cut(line, ":")
	if !ok {
		return 0, ErrMissingDimension
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil || n < 1 {
		return 0, ErrMissingDimension
	}

	return n, nil
}

// buildSymmetric fills the lower triangle (diagonal included) from weights in
// row order, mapping non-positive values to +Inf, then mirrors it upward.
// Complexity: O(n²).
func buildSymmetric(n int, weights []float64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		flat = m.Values()
		inf  = math.Inf(1)
		i, j int
		k    int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			d = weights[k]
			k++
			if d <= 0 {
				d = inf
			}
			flat[i*n+j] = d
		}
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			flat[i*n+j] = flat[j*n+i]
		}
	}

	return m, nil
}
