// Package sparsecalc is a small toolkit for sparse integer matrices stored
// as plain text, plus the sparsecalc command that adds, subtracts and
// multiplies them.
//
// What is inside:
//
//	sparse/          - Matrix (dictionary of keys, insertion ordered), Parse/String,
//	                   Add, Sub, Mul (sparse kernel) and MulNaive (reference loop)
//	calc/            - operation names, file I/O and the Runner used by the CLI
//	config/          - koanf layering: embedded defaults, sparsecalc.toml, SPARSECALC_* env, flags
//	logging/         - zerolog setup and component loggers
//	cmd/sparsecalc/  - cobra CLI with an interactive prompt
//
// File format:
//
//	rows=2
//	cols=2
//	(0, 0, 4)
//	(1, 1, 2)
//
// Only nonzero entries are stored; every coordinate that is not listed reads
// as zero. Results are written in the order their entries were first stored,
// or row-major with --sorted.
//
// Quick example:
//
//	a, _ := sparse.Parse("rows=2\ncols=2\n(0, 0, 1)\n")
//	b, _ := sparse.Parse("rows=2\ncols=2\n(0, 0, 3)\n(0, 1, 4)\n")
//	sum, err := sparse.Add(a, b)
//	if err != nil {
//		// *sparse.DimensionError: "Matrix size mismatch for addition"
//	}
//	fmt.Print(sum) // rows=2 cols=2 (0, 0, 4) (0, 1, 4)
package sparsecalc
