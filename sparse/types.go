// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by storage, codec and kernels.
package sparse

import (
	"cmp"
	"fmt"
)

// Coord is a (row, col) position. It is the map key of the storage, so two
// coordinates are the same key exactly when both components are equal.
type Coord struct {
	Row int // row index (not bounds-checked)
	Col int // column index (not bounds-checked)
}

// compareCoords orders coordinates row-major: by Row, then by Col.
func compareCoords(a, b Coord) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

// Entry is a stored (row, col, value) triple. Value is never zero for an
// entry obtained from a Matrix.
type Entry struct {
	Row   int
	Col   int
	Value int64
}

// Coord returns the entry position.
func (e Entry) Coord() Coord { return Coord{Row: e.Row, Col: e.Col} }

// String renders the entry exactly as one body line of the text format.
func (e Entry) String() string {
	return fmt.Sprintf("(%d, %d, %d)", e.Row, e.Col, e.Value)
}

// Shape is a pair of declared dimensions.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "<rows>x<cols>".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Algorithm selects the multiplication kernel used by MulWith.
type Algorithm string

const (
	// AlgorithmSparse walks stored entries only (default).
	AlgorithmSparse Algorithm = "sparse"
	// AlgorithmNaive visits every (i, j, k) cell inside the declared bounds.
	AlgorithmNaive Algorithm = "naive"
)

// ParseAlgorithm maps a configuration string onto an Algorithm.
// The empty string selects AlgorithmSparse.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmSparse, "":
		return AlgorithmSparse, nil
	case AlgorithmNaive:
		return AlgorithmNaive, nil
	default:
		return "", fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
	}
}
