// SPDX-License-Identifier: MIT

// Package sparse - dictionary-of-keys storage with insertion order.
//
// Layout:
//   - index maps a Coord to the position of its slot in slots.
//   - slots keeps entries in first-insertion order; removed entries leave a
//     dead slot behind until the next compaction.
//
// Order contract (matches a key-ordered mapping):
//   - overwriting a stored coordinate keeps its position;
//   - removing and re-inserting a coordinate moves it to the end.
//
// Complexity quicksheet:
//   - At/Set: O(1) amortized; Entries/Do/Clone: O(nnz + dead); Sorted: O(nnz log nnz).
package sparse

import (
	"slices"
	"strconv"
)

// compactMin is the minimum number of dead slots before compaction is
// considered; below it a few tombstones are cheaper than reindexing.
const compactMin = 32

// slot is one position of the insertion-ordered entry log.
type slot struct {
	Entry
	live bool
}

// Matrix is a sparse integer matrix with declared dimensions.
// The zero value is an empty 0x0 matrix ready for use.
type Matrix struct {
	rows, cols int           // declared dimensions, never validated
	index      map[Coord]int // coordinate -> position in slots (live slots only)
	slots      []slot        // insertion-ordered log of entries
	dead       int           // number of !live slots in slots
}

// New returns an empty rows×cols matrix with no stored entries.
// Dimensions are recorded as given; negative values are not rejected.
// Complexity: O(1).
func New(rows, cols int) *Matrix {
	return &Matrix{
		rows:  rows,
		cols:  cols,
		index: make(map[Coord]int),
	}
}

// Rows returns the declared row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the declared column count.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns both declared dimensions.
func (m *Matrix) Shape() Shape { return Shape{Rows: m.rows, Cols: m.cols} }

// NNZ returns the number of stored (nonzero) entries.
func (m *Matrix) NNZ() int { return len(m.index) }

// At returns the value stored at (row, col), or 0 when nothing is stored.
// Any coordinate is accepted, including ones outside the declared shape.
// Complexity: O(1).
func (m *Matrix) At(row, col int) int64 {
	pos, ok := m.index[Coord{Row: row, Col: col}]
	if !ok {
		return 0
	}
	return m.slots[pos].Value
}

// Set stores v at (row, col).
//
// Implementation:
//   - Stage 1: v == 0 removes the coordinate if present, otherwise no-op.
//   - Stage 2: a stored coordinate is overwritten in place (order kept).
//   - Stage 3: a new coordinate is appended to the insertion log.
//
// Complexity: O(1) amortized; removals may trigger an O(slots) compaction.
func (m *Matrix) Set(row, col int, v int64) {
	if m.index == nil {
		m.index = make(map[Coord]int)
	}
	key := Coord{Row: row, Col: col}
	pos, ok := m.index[key]
	if v == 0 {
		if ok {
			m.remove(key, pos)
		}
		return
	}
	if ok {
		m.slots[pos].Value = v
		return
	}
	m.index[key] = len(m.slots)
	m.slots = append(m.slots, slot{Entry: Entry{Row: row, Col: col, Value: v}, live: true})
}

// remove drops key, whose live slot is at pos.
func (m *Matrix) remove(key Coord, pos int) {
	delete(m.index, key)
	m.slots[pos] = slot{}
	m.dead++
	if m.dead >= compactMin && 2*m.dead >= len(m.slots) {
		m.compact()
	}
}

// compact squeezes dead slots out of the log in place and reindexes.
func (m *Matrix) compact() {
	live := m.slots[:0]
	for _, s := range m.slots {
		if !s.live {
			continue
		}
		m.index[s.Coord()] = len(live)
		live = append(live, s)
	}
	clear(m.slots[len(live):])
	m.slots = live
	m.dead = 0
}

// Do calls f for every stored entry in insertion order and stops early when
// f returns false. f must not mutate m.
// Complexity: O(nnz + dead).
func (m *Matrix) Do(f func(e Entry) bool) {
	for i := range m.slots {
		if !m.slots[i].live {
			continue
		}
		if !f(m.slots[i].Entry) {
			return
		}
	}
}

// Entries returns a copy of the stored entries in insertion order.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, m.NNZ())
	m.Do(func(e Entry) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Clone returns an independent copy with the same dimensions, entries and
// iteration order. The copy starts without dead slots.
// Complexity: O(nnz + dead).
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{
		rows:  m.rows,
		cols:  m.cols,
		index: make(map[Coord]int, m.NNZ()),
		slots: make([]slot, 0, m.NNZ()),
	}
	m.Do(func(e Entry) bool {
		out.index[e.Coord()] = len(out.slots)
		out.slots = append(out.slots, slot{Entry: e, live: true})
		return true
	})
	return out
}

// Sorted returns a copy whose iteration order is row-major (by row, then
// column). Serializing it gives output independent of insertion history.
// Complexity: O(nnz log nnz).
func (m *Matrix) Sorted() *Matrix {
	entries := m.Entries()
	slices.SortFunc(entries, func(a, b Entry) int { return compareCoords(a.Coord(), b.Coord()) })

	out := New(m.rows, m.cols)
	for _, e := range entries {
		out.Set(e.Row, e.Col, e.Value)
	}
	return out
}

// Equal reports whether m and o have the same declared dimensions and the
// same set of stored entries. Iteration order is ignored.
// Two nil matrices are equal; a nil and a non-nil matrix are not.
// Complexity: O(nnz).
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols || m.NNZ() != o.NNZ() {
		return false
	}
	equal := true
	m.Do(func(e Entry) bool {
		equal = o.At(e.Row, e.Col) == e.Value
		return equal
	})
	return equal
}

// GoString renders a compact debug form, e.g. sparse.Matrix{2x3 nnz=4}.
func (m *Matrix) GoString() string {
	return "sparse.Matrix{" + m.Shape().String() + " nnz=" + strconv.Itoa(m.NNZ()) + "}"
}
