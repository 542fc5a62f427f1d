// SPDX-License-Identifier: MIT

// Package sparse - text format codec.
//
// Format (line-oriented, blank lines ignored, every line trimmed):
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)
//	...
//
// Header integers are read permissively: leading whitespace, an optional
// sign and the longest run of digits after the first '=' ("rows=3x" is 3).
// Entry fields must be complete base-10 integers.
package sparse

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ---------- Format literals ----------
const (
	_hdrRows    = "rows="
	_hdrCols    = "cols="
	_entryOpen  = "("
	_entryClose = ")"
	_entrySep   = ","
	_entryParts = 3
)

// line is a non-empty trimmed source line and its 1-based number.
type line struct {
	no   int
	text string
}

// isTrimmable reports whitespace and the byte-order mark.
func isTrimmable(r rune) bool { return unicode.IsSpace(r) || r == '\uFEFF' }

// splitLines splits on '\n', trims each line and drops the empty ones.
func splitLines(content string) []line {
	raw := strings.Split(content, "\n")
	out := make([]line, 0, len(raw))
	for i, s := range raw {
		s = strings.TrimFunc(s, isTrimmable)
		if s == "" {
			continue
		}
		out = append(out, line{no: i + 1, text: s})
	}
	return out
}

// Parse builds a Matrix from the full text of a matrix file.
//
// Implementation:
//   - Stage 1: split, trim and drop blank lines.
//   - Stage 2: read the rows= and cols= header lines.
//   - Stage 3: parse every remaining line as (row, col, value) and Set it in
//     file order (later duplicates win, zero values store nothing).
//
// Errors:
//   - *FormatError (errors.Is(err, ErrFormat)) for any malformed line. No
//     partially built matrix is returned.
//
// Complexity:
//   - Time O(len(content)), Space O(nnz).
func Parse(content string) (*Matrix, error) {
	lines := splitLines(content)
	if len(lines) < 2 {
		no := 0
		if len(lines) == 1 {
			no = lines[0].no
		}
		return nil, formatErrorf(no, "missing %s/%s header", _hdrRows, _hdrCols)
	}

	rows, err := parseHeader(lines[0], _hdrRows)
	if err != nil {
		return nil, err
	}
	cols, err := parseHeader(lines[1], _hdrCols)
	if err != nil {
		return nil, err
	}

	m := New(rows, cols)
	for _, ln := range lines[2:] {
		e, err := parseEntry(ln)
		if err != nil {
			return nil, err
		}
		m.Set(e.Row, e.Col, e.Value)
	}

	return m, nil
}

// Read consumes r to EOF and parses it with Parse. Read errors are returned
// as-is (they are not format errors).
func Read(r io.Reader) (*Matrix, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	return Parse(string(b))
}

// parseHeader reads "<prefix><int>...". The integer is the field between the
// first and second '=' read by leadingInt.
func parseHeader(ln line, prefix string) (int, error) {
	if !strings.HasPrefix(ln.text, prefix) {
		return 0, formatErrorf(ln.no, "expected %q header", prefix)
	}
	field := ln.text[len(prefix):]
	if i := strings.IndexByte(field, '='); i >= 0 {
		field = field[:i]
	}
	n, ok := leadingInt(field)
	if !ok {
		return 0, formatErrorf(ln.no, "header %q has no integer", prefix)
	}
	return n, nil
}

// leadingInt parses optional leading whitespace, an optional sign and the
// longest digit run that follows; trailing text is ignored. ok is false when
// there are no digits or the value does not fit in an int.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, isTrimmable)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseEntry reads "(row, col, value)".
func parseEntry(ln line) (Entry, error) {
	if !strings.HasPrefix(ln.text, _entryOpen) || !strings.HasSuffix(ln.text, _entryClose) || len(ln.text) < 2 {
		return Entry{}, formatErrorf(ln.no, "entry must be wrapped in parentheses")
	}
	parts := strings.Split(ln.text[1:len(ln.text)-1], _entrySep)
	if len(parts) != _entryParts {
		return Entry{}, formatErrorf(ln.no, "entry has %d fields, want %d", len(parts), _entryParts)
	}
	for i := range parts {
		parts[i] = strings.TrimFunc(parts[i], isTrimmable)
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return Entry{}, formatErrorf(ln.no, "row %q is not an integer", parts[0])
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return Entry{}, formatErrorf(ln.no, "col %q is not an integer", parts[1])
	}
	val, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return Entry{}, formatErrorf(ln.no, "value %q is not an integer", parts[2])
	}

	return Entry{Row: row, Col: col, Value: val}, nil
}

// String renders m in the text format: the two header lines followed by one
// line per stored entry in iteration order, each terminated by '\n'.
// Complexity: O(nnz).
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow(32 + 24*m.NNZ())
	_, _ = m.WriteTo(&b)
	return b.String()
}

// WriteTo writes the String form of m to w and implements io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	buf := make([]byte, 0, 64)
	buf = appendHeader(buf, _hdrRows, m.rows)
	buf = appendHeader(buf, _hdrCols, m.cols)

	var total int64
	flush := func() error {
		n, err := w.Write(buf)
		total += int64(n)
		buf = buf[:0]
		return err
	}
	var err error
	m.Do(func(e Entry) bool {
		buf = appendEntry(buf, e)
		if len(buf) >= 4096 {
			err = flush()
		}
		return err == nil
	})
	if err != nil {
		return total, err
	}
	if err = flush(); err != nil {
		return total, err
	}

	return total, nil
}

// appendHeader appends "<prefix><n>\n".
func appendHeader(buf []byte, prefix string, n int) []byte {
	buf = append(buf, prefix...)
	buf = strconv.AppendInt(buf, int64(n), 10)
	return append(buf, '\n')
}

// appendEntry appends "(<row>, <col>, <value>)\n".
func appendEntry(buf []byte, e Entry) []byte {
	buf = append(buf, _entryOpen...)
	buf = strconv.AppendInt(buf, int64(e.Row), 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendInt(buf, int64(e.Col), 10)
	buf = append(buf, ", "...)
	buf = strconv.AppendInt(buf, e.Value, 10)
	buf = append(buf, _entryClose...)
	return append(buf, '\n')
}
