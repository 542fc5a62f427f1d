// SPDX-License-Identifier: MIT

package calc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// Operation names one binary matrix operation.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
)

// Operations lists every supported operation in prompt order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply}

var (
	// ErrUnknownOperation is returned by ParseOperation for names it does not know.
	ErrUnknownOperation = errors.New("calc: unknown operation")
	// ErrRead wraps failures reading an operand file.
	ErrRead = errors.New("calc: cannot read matrix file")
	// ErrWrite wraps failures writing the result file.
	ErrWrite = errors.New("calc: cannot write result file")
)

// ParseOperation matches s exactly (after trimming whitespace) against the
// supported operation names.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.TrimSpace(s))
	for _, known := range Operations {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// String returns the operation name.
func (op Operation) String() string { return string(op) }

// Apply runs op on a and b. alg selects the multiplication kernel and is
// ignored by add and subtract.
func (op Operation) Apply(a, b *sparse.Matrix, alg sparse.Algorithm) (*sparse.Matrix, error) {
	switch op {
	case OpAdd:
		return sparse.Add(a, b)
	case OpSubtract:
		return sparse.Sub(a, b)
	case OpMultiply:
		return sparse.MulWith(a, b, alg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, string(op))
	}
}
