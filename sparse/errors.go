// SPDX-License-Identifier: MIT

// Package sparse: sentinel and typed errors.
//
// Sentinels carry the "sparse:" prefix and are matched with errors.Is.
// FormatError and DimensionError keep the exact user-facing messages of the
// matrix tool ("Input file has wrong format", "Matrix size mismatch for
// ..."), so kernels return them unwrapped; callers still match them through
// errors.Is against ErrFormat / ErrDimensionMismatch.
package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError.
	ErrFormat = errors.New("sparse: wrong format")

	// ErrDimensionMismatch matches every *DimensionError. Validators return it
	// wrapped with their tag.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrOutOfRange indicates an entry outside the declared dimensions.
	// Only ValidateBounds reports it; storage itself is permissive.
	ErrOutOfRange = errors.New("sparse: entry out of range")

	// ErrOverflow indicates an int64 overflow inside a kernel.
	ErrOverflow = errors.New("sparse: integer overflow")

	// ErrUnknownAlgorithm indicates an unsupported multiplication kernel name.
	ErrUnknownAlgorithm = errors.New("sparse: unknown multiplication algorithm")
)

// msgFormat is the single user-facing message for all parse failures.
const msgFormat = "Input file has wrong format"

// FormatError reports malformed matrix text. Line is the 1-based line of the
// source text (0 when the input has too few lines to hold a header) and
// Reason is a short diagnostic; neither is part of Error().
type FormatError struct {
	Line   int
	Reason string
}

// Error returns the fixed format message.
func (e *FormatError) Error() string { return msgFormat }

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// formatErrorf builds a *FormatError for the given source line.
func formatErrorf(line int, format string, args ...any) *FormatError {
	return &FormatError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// DimensionError reports operands whose shapes are incompatible for Op.
// Op is the operation noun: "addition", "subtraction" or "multiplication".
type DimensionError struct {
	Op    string
	Left  Shape
	Right Shape
	Err   error // validator error, wraps ErrDimensionMismatch
}

// Error returns "Matrix size mismatch for <Op>".
func (e *DimensionError) Error() string { return "Matrix size mismatch for " + e.Op }

// Unwrap exposes the validator error.
func (e *DimensionError) Unwrap() error { return e.Err }

// newDimensionError captures both operand shapes next to the validator error.
func newDimensionError(op string, a, b *Matrix, err error) *DimensionError {
	return &DimensionError{Op: op, Left: a.Shape(), Right: b.Shape(), Err: err}
}

// sparseErrorf wraps err with an operation tag ("Add: ...: %w").
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
