// SPDX-License-Identifier: MIT

// Package sparse - arithmetic kernels.
//
// Purpose:
//   - Add/Sub merge the stored entries of two same-shape operands.
//   - Mul multiplies by walking stored entries only; MulNaive keeps the
//     reference triple loop over the declared bounds.
//
// Determinism:
//   - Add/Sub: result order is a's order, then b's new coordinates in b's order.
//   - Mul/MulNaive: result entries are inserted in row-major order, so both
//     kernels serialize to identical bytes.
//
// Numeric policy:
//   - int64 arithmetic; any overflow aborts the kernel with ErrOverflow.
package sparse

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/sparsecalc/internal/checked"
)

// Operation tags (error wrapping) and nouns (user-facing messages).
const (
	opAdd = "Add"
	opSub = "Sub"
	opMul = "Mul"

	nounAddition       = "addition"
	nounSubtraction    = "subtraction"
	nounMultiplication = "multiplication"
)

// mergeOp describes one entry-merging kernel.
type mergeOp struct {
	tag     string
	noun    string
	combine func(x, y int64) (int64, bool)
}

var (
	mergeAdd = mergeOp{tag: opAdd, noun: nounAddition, combine: checked.Add[int64]}
	mergeSub = mergeOp{tag: opSub, noun: nounSubtraction, combine: checked.Sub[int64]}
)

// merge computes out = a ∘ b entry-wise for ∘ ∈ {+, −}.
//
// Implementation:
//   - Stage 1: ValidateNotNil, then ValidateSameShape (-> *DimensionError).
//   - Stage 2: clone a (keeps a's order, no shared storage).
//   - Stage 3: for each entry of b in order, combine with the current value;
//     Set drops zero results and appends new coordinates.
//
// Complexity:
//   - Time O(nnz(a) + nnz(b)), Space O(nnz(a) + nnz(b)).
func merge(a, b *Matrix, op mergeOp) (*Matrix, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, sparseErrorf(op.tag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, newDimensionError(op.noun, a, b, err)
	}

	res := a.Clone()
	var err error
	b.Do(func(e Entry) bool {
		v, ok := op.combine(res.At(e.Row, e.Col), e.Value)
		if !ok {
			err = sparseErrorf(op.tag, fmt.Errorf("entry (%d, %d): %w", e.Row, e.Col, ErrOverflow))
			return false
		}
		res.Set(e.Row, e.Col, v)
		return true
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Add returns a + b.
//
// Errors:
//   - ErrNilMatrix (wrapped), *DimensionError "Matrix size mismatch for addition",
//     ErrOverflow (wrapped).
//
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *Matrix) (*Matrix, error) { return merge(a, b, mergeAdd) }

// Sub returns a − b. Coordinates stored only in b appear negated.
//
// Errors:
//   - ErrNilMatrix (wrapped), *DimensionError "Matrix size mismatch for subtraction",
//     ErrOverflow (wrapped).
//
// Complexity: O(nnz(a) + nnz(b)).
func Sub(a, b *Matrix) (*Matrix, error) { return merge(a, b, mergeSub) }

// Mul returns a × b using the sparse kernel. It is MulWith(a, b, AlgorithmSparse).
func Mul(a, b *Matrix) (*Matrix, error) { return MulWith(a, b, AlgorithmSparse) }

// MulNaive returns a × b using the reference triple loop.
// It is MulWith(a, b, AlgorithmNaive).
func MulNaive(a, b *Matrix) (*Matrix, error) { return MulWith(a, b, AlgorithmNaive) }

// MulWith multiplies a (r×n) by b (n×c) into a fresh r×c matrix with the
// selected kernel.
//
// Both kernels compute, for 0≤i<r and 0≤j<c, the sum over 0≤k<n of
// a[i,k]·b[k,j], storing only nonzero sums. Entries whose coordinates fall
// outside those ranges never contribute.
//
// Errors:
//   - ErrNilMatrix (wrapped), *DimensionError "Matrix size mismatch for multiplication",
//     ErrUnknownAlgorithm (wrapped), ErrOverflow (wrapped).
func MulWith(a, b *Matrix, alg Algorithm) (*Matrix, error) {
	if err := ValidateNotNil(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, newDimensionError(nounMultiplication, a, b, err)
	}

	switch alg {
	case AlgorithmSparse:
		return mulSparse(a, b)
	case AlgorithmNaive:
		return mulNaive(a, b)
	default:
		return nil, sparseErrorf(opMul, fmt.Errorf("algorithm %q: %w", alg, ErrUnknownAlgorithm))
	}
}

// mulSparse is the entry-driven product.
//
// Implementation:
//   - Stage 1: bucket b's in-bounds entries by row k.
//   - Stage 2: for each in-bounds a[i,k], fold a[i,k]·b[k,j] into acc[i,j].
//   - Stage 3: insert nonzero sums in row-major order.
//
// Complexity:
//   - Time O(nnz(a)·avgRowNNZ(b) + nnz(c) log nnz(c)), Space O(nnz(b) + nnz(c)).
func mulSparse(a, b *Matrix) (*Matrix, error) {
	rows, inner, cols := a.rows, a.cols, b.cols

	byRow := make(map[int][]Entry)
	b.Do(func(e Entry) bool {
		if e.Row >= 0 && e.Row < inner && e.Col >= 0 && e.Col < cols {
			byRow[e.Row] = append(byRow[e.Row], e)
		}
		return true
	})

	acc := make(map[Coord]int64)
	var err error
	a.Do(func(ea Entry) bool {
		if ea.Row < 0 || ea.Row >= rows || ea.Col < 0 || ea.Col >= inner {
			return true
		}
		for _, eb := range byRow[ea.Col] {
			p, ok := checked.Mul(ea.Value, eb.Value)
			if !ok {
				err = mulOverflow(ea.Row, eb.Col)
				return false
			}
			key := Coord{Row: ea.Row, Col: eb.Col}
			s, ok := checked.Add(acc[key], p)
			if !ok {
				err = mulOverflow(ea.Row, eb.Col)
				return false
			}
			acc[key] = s
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	keys := make([]Coord, 0, len(acc))
	for k, v := range acc {
		if v != 0 {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, compareCoords)

	res := New(rows, cols)
	for _, k := range keys {
		res.Set(k.Row, k.Col, acc[k])
	}

	return res, nil
}

// mulNaive is the reference i→j→k triple loop over the declared bounds.
// Zero a[i,k] are skipped; they cannot change the sum.
//
// Complexity:
//   - Time O(r·c·n) regardless of sparsity, Space O(nnz(c)).
func mulNaive(a, b *Matrix) (*Matrix, error) {
	rows, inner, cols := a.rows, a.cols, b.cols
	res := New(rows, cols)

	var (
		i, j, k     int
		av, p, sum  int64
		okMul, okAd bool
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				av = a.At(i, k)
				if av == 0 {
					continue
				}
				p, okMul = checked.Mul(av, b.At(k, j))
				if !okMul {
					return nil, mulOverflow(i, j)
				}
				sum, okAd = checked.Add(sum, p)
				if !okAd {
					return nil, mulOverflow(i, j)
				}
			}
			if sum != 0 {
				res.Set(i, j, sum)
			}
		}
	}

	return res, nil
}

// mulOverflow tags an overflow at result cell (i, j).
func mulOverflow(i, j int) error {
	return sparseErrorf(opMul, fmt.Errorf("cell (%d, %d): %w", i, j, ErrOverflow))
}
