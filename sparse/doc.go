// SPDX-License-Identifier: MIT

// Package sparse implements integer sparse matrices stored as a
// dictionary of keys, together with the line-oriented text format used to
// exchange them and the three arithmetic kernels (Add, Sub, Mul).
//
// The package provides:
//
//   - Matrix, a coordinate-keyed store of nonzero int64 entries with
//     declared dimensions and insertion-ordered iteration.
//   - Parse / Read and String / WriteTo for the text format:
//
//     rows=<int>
//     cols=<int>
//     (<row>, <col>, <value>)
//
//   - Add, Sub, Mul (sparse kernel) and MulNaive (reference triple loop).
//   - Validators shared by the kernels, plus the opt-in ValidateBounds.
//
// Absent coordinates read as zero and storing zero removes a coordinate, so
// no stored entry is ever zero. Declared dimensions are not enforced against
// entry coordinates; call ValidateBounds when that is required.
//
// All kernels return fresh matrices and never mutate or alias their
// operands. Nothing in this package is safe for concurrent mutation.
package sparse
