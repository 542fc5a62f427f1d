// SPDX-License-Identifier: MIT

// Package calc connects matrix files on disk to the sparse kernels.
//
// It owns everything the sparse package deliberately leaves out: choosing an
// operation by name, reading and writing files, naming the result file and
// logging each step. A single Run call reads both operands, applies the
// operation and writes the result; nothing is written when any step fails.
//
// Errors:
//   - ErrUnknownOperation for an operation name outside add/subtract/multiply.
//   - ErrRead / ErrWrite wrap the underlying *fs.PathError.
//   - sparse.ErrFormat, sparse.ErrDimensionMismatch, sparse.ErrOverflow and
//     sparse.ErrOutOfRange pass through unchanged.
package calc
