// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Single source of truth for operand checks used by the kernels.
//  - Return plain sentinels wrapped with the validator tag so call sites can
//    turn them into user-facing errors uniformly.
//
// Note:
//  - Shape validators assume non-nil operands (call ValidateNotNil first).
//  - ValidateBounds is never called by the kernels; bounds are opt-in.

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures every operand is non-nil.
// Complexity: O(len(ms)).
func ValidateNotNil(ms ...*Matrix) error {
	for i, m := range ms {
		if m == nil {
			return validatorErrorf(fmt.Sprintf("ValidateNotNil: operand %d", i), ErrNilMatrix)
		}
	}

	return nil
}

// ValidateSameShape ensures a and b declare equal dimensions.
// Used by Add/Sub. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.rows != b.rows {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a.cols != b.rows {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBounds ensures every stored entry lies in [0,Rows)×[0,Cols).
// The first offending entry (in iteration order) is named in the error.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(nnz).
func ValidateBounds(m *Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var bad *Entry
	m.Do(func(e Entry) bool {
		if e.Row < 0 || e.Row >= m.rows || e.Col < 0 || e.Col >= m.cols {
			bad = &e
			return false
		}
		return true
	})
	if bad != nil {
		return validatorErrorf(
			fmt.Sprintf("ValidateBounds: entry %s outside %s", bad, m.Shape()),
			ErrOutOfRange,
		)
	}

	return nil
}
