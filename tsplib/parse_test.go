package tsplib_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Hitsuji-M/aco-tsp/tsplib"
)

const toyInstance = `NAME: toy4
TYPE: TSP
COMMENT: four cities, explicit lower triangle
DIMENSION: 4
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: LOWER_DIAG_ROW
EDGE_WEIGHT_SECTION
0
5 0
7 3 0
2 0 4 0
EOF
`

func TestParse_BuildsSymmetricMatrix(t *testing.T) {
	m, err := tsplib.Parse(strings.NewReader(toyInstance))
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 4, m.Cols())

	at := func(i, j int) float64 {
		v, aerr := m.At(i, j)
		require.NoError(t, aerr)

		return v
	}

	// Lower triangle values mirrored upward.
	require.Equal(t, 5.0, at(1, 0))
	require.Equal(t, 5.0, at(0, 1))
	require.Equal(t, 7.0, at(2, 0))
	require.Equal(t, 3.0, at(2, 1))
	require.Equal(t, 4.0, at(3, 2))
	require.Equal(t, 2.0, at(0, 3))

	// Diagonal zeros map to +Inf (no self edge).
	for i := 0; i < 4; i++ {
		require.True(t, math.IsInf(at(i, i), 1), "diagonal (%d,%d)", i, i)
	}
	// Non-positive off-diagonal entries mean "no direct edge".
	require.True(t, math.IsInf(at(3, 1), 1))
	require.True(t, math.IsInf(at(1, 3), 1))
}

func TestParse_StopsAtDisplayDataSection(t *testing.T) {
	instance := strings.Replace(toyInstance, "EOF\n", "DISPLAY_DATA_SECTION\nnot a number\nEOF\n", 1)
	_, err := tsplib.Parse(strings.NewReader(instance))
	require.NoError(t, err)
}

func TestParse_MultipleValuesPerLine(t *testing.T) {
	instance := `DIMENSION: 3
EDGE_WEIGHT_SECTION
0 2 0
9 6 0
EOF
`
	m, err := tsplib.Parse(strings.NewReader(instance))
	require.NoError(t, err)

	v, err := m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
	v, err = m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
}

func TestParse_MissingDimension(t *testing.T) {
	instance := `EDGE_WEIGHT_SECTION
0
1 0
EOF
`
	_, err := tsplib.Parse(strings.NewReader(instance))
	require.ErrorIs(t, err, tsplib.ErrMissingDimension)
}

func TestParse_BadEntry(t *testing.T) {
	instance := `DIMENSION: 2
EDGE_WEIGHT_SECTION
0
oops 0
EOF
`
	_, err := tsplib.Parse(strings.NewReader(instance))
	require.ErrorIs(t, err, tsplib.ErrBadEntry)
}

func TestParse_TruncatedSection(t *testing.T) {
	instance := `DIMENSION: 4
EDGE_WEIGHT_SECTION
0
5 0
EOF
`
	_, err := tsplib.Parse(strings.NewReader(instance))
	require.ErrorIs(t, err, tsplib.ErrTruncated)
}

func TestParseFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toy4.tsp")
	require.NoError(t, os.WriteFile(path, []byte(toyInstance), 0o644))

	m, err := tsplib.ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 4, m.Rows())

	_, err = tsplib.ParseFile(filepath.Join(t.TempDir(), "missing.tsp"))
	require.Error(t, err)
}
