// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsecalc/sparse"
	"github.com/stretchr/testify/require"
)

// mustParse parses text or fails the test.
func mustParse(tb testing.TB, text string) *sparse.Matrix {
	tb.Helper()
	m, err := sparse.Parse(text)
	require.NoError(tb, err)
	return m
}

// fromEntries builds a rows×cols matrix by Setting entries in order.
func fromEntries(rows, cols int, entries ...sparse.Entry) *sparse.Matrix {
	m := sparse.New(rows, cols)
	for _, e := range entries {
		m.Set(e.Row, e.Col, e.Value)
	}
	return m
}

// randomMatrix fills about nnz coordinates with values in [-5, 5].
// With spill, coordinates range over [-1, rows]×[-1, cols] so that some
// entries fall outside the declared shape.
func randomMatrix(rng *rand.Rand, rows, cols, nnz int, spill bool) *sparse.Matrix {
	m := sparse.New(rows, cols)
	for n := 0; n < nnz; n++ {
		i, j := rng.Intn(rows), rng.Intn(cols)
		if spill {
			i, j = rng.Intn(rows+2)-1, rng.Intn(cols+2)-1
		}
		m.Set(i, j, int64(rng.Intn(11)-5))
	}
	return m
}

// e is a short constructor for table entries.
func e(row, col int, v int64) sparse.Entry { return sparse.Entry{Row: row, Col: col, Value: v} }
