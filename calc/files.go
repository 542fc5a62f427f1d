// SPDX-License-Identifier: MIT

package calc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/sparsecalc/sparse"
)

// resultPerm is the mode of newly created result files.
const resultPerm = 0o644

// ReadMatrixFile reads and parses the matrix file at path.
// I/O failures wrap ErrRead; parse errors are returned as-is.
func ReadMatrixFile(path string) (*sparse.Matrix, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return sparse.Parse(string(data))
}

// WriteResult serializes m to path, replacing any existing file.
// With sorted set the entries are written in row-major order.
func WriteResult(path string, m *sparse.Matrix, sorted bool) error {
	if err := sparse.ValidateNotNil(m); err != nil {
		return fmt.Errorf("WriteResult: %w", err)
	}
	if sorted {
		m = m.Sorted()
	}

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), resultPerm); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// ResultPath joins dir with pattern formatted by the operation name, e.g.
// ResultPath(".", "result_%s.txt", OpAdd) is "result_add.txt".
func ResultPath(dir, pattern string, op Operation) string {
	return filepath.Join(dir, fmt.Sprintf(pattern, op))
}
