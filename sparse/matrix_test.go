// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsecalc/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyWithDeclaredShape(t *testing.T) {
	m := sparse.New(3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	require.Equal(t, sparse.Shape{Rows: 3, Cols: 4}, m.Shape())
	require.Zero(t, m.NNZ())
	require.Empty(t, m.Entries())
}

func TestNew_DimensionsNotEnforced(t *testing.T) {
	m := sparse.New(-1, 0)
	require.Equal(t, -1, m.Rows())
	require.Equal(t, 0, m.Cols())
}

func TestAt_NeverSetIsZero(t *testing.T) {
	m := sparse.New(2, 2)
	require.Zero(t, m.At(0, 0))
	require.Zero(t, m.At(1, 1))
	require.Zero(t, m.At(-7, 99), "out-of-shape coordinates read as zero too")
}

func TestSet_InsertOverwriteRemove(t *testing.T) {
	m := sparse.New(2, 2)

	m.Set(0, 1, 7)
	require.Equal(t, int64(7), m.At(0, 1))
	require.Equal(t, 1, m.NNZ())

	m.Set(0, 1, -3)
	require.Equal(t, int64(-3), m.At(0, 1))
	require.Equal(t, 1, m.NNZ())

	m.Set(0, 1, 0)
	require.Zero(t, m.At(0, 1))
	require.Zero(t, m.NNZ())
	require.Empty(t, m.Entries())

	// Removing an absent coordinate is a no-op.
	m.Set(1, 1, 0)
	require.Zero(t, m.NNZ())
}

func TestSet_CoordinatesOutsideShapeAreStored(t *testing.T) {
	m := sparse.New(1, 1)
	m.Set(5, -2, 9)
	require.Equal(t, int64(9), m.At(5, -2))
	require.Equal(t, []sparse.Entry{e(5, -2, 9)}, m.Entries())
}

func TestSet_KeysAreStructured(t *testing.T) {
	// (1,23) and (12,3) would collide under a separator-less string key.
	m := sparse.New(20, 30)
	m.Set(1, 23, 1)
	m.Set(12, 3, 2)
	require.Equal(t, int64(1), m.At(1, 23))
	require.Equal(t, int64(2), m.At(12, 3))
	require.Equal(t, 2, m.NNZ())
}

func TestEntries_InsertionOrder(t *testing.T) {
	m := fromEntries(3, 3, e(2, 2, 1), e(0, 0, 2), e(1, 0, 3))
	m.Set(2, 2, 10) // overwrite keeps position
	require.Equal(t, []sparse.Entry{e(2, 2, 10), e(0, 0, 2), e(1, 0, 3)}, m.Entries())

	m.Set(0, 0, 0) // remove
	m.Set(0, 0, 4) // re-insert moves to the end
	require.Equal(t, []sparse.Entry{e(2, 2, 10), e(1, 0, 3), e(0, 0, 4)}, m.Entries())
}

func TestEntries_OrderSurvivesCompaction(t *testing.T) {
	m := sparse.New(200, 1)
	for i := 0; i < 200; i++ {
		m.Set(i, 0, int64(i+1))
	}
	// Drop every even row; enough removals to force compaction.
	for i := 0; i < 200; i += 2 {
		m.Set(i, 0, 0)
	}
	got := m.Entries()
	require.Len(t, got, 100)
	for n, ent := range got {
		require.Equal(t, 2*n+1, ent.Row)
		require.Equal(t, int64(2*n+2), ent.Value)
		require.Equal(t, ent.Value, m.At(ent.Row, 0))
	}
	m.Set(0, 0, 42)
	require.Equal(t, e(0, 0, 42), m.Entries()[100])
}

func TestEntries_ReturnsCopy(t *testing.T) {
	m := fromEntries(1, 1, e(0, 0, 1))
	got := m.Entries()
	got[0].Value = 99
	require.Equal(t, int64(1), m.At(0, 0))
}

func TestDo_StopsEarly(t *testing.T) {
	m := fromEntries(3, 1, e(0, 0, 1), e(1, 0, 2), e(2, 0, 3))
	var seen []int64
	m.Do(func(ent sparse.Entry) bool {
		seen = append(seen, ent.Value)
		return len(seen) < 2
	})
	require.Equal(t, []int64{1, 2}, seen)
}

func TestZeroValueMatrix(t *testing.T) {
	var m sparse.Matrix
	require.Zero(t, m.At(0, 0))
	m.Set(0, 0, 5)
	require.Equal(t, int64(5), m.At(0, 0))
	require.Equal(t, sparse.Shape{}, m.Shape())
}

func TestClone_Independent(t *testing.T) {
	m := fromEntries(2, 2, e(1, 1, 2), e(0, 0, 1))
	c := m.Clone()
	require.True(t, m.Equal(c))
	require.Equal(t, m.Entries(), c.Entries())

	c.Set(1, 1, 0)
	c.Set(0, 1, 5)
	require.Equal(t, int64(2), m.At(1, 1))
	require.Zero(t, m.At(0, 1))
}

func TestEqual(t *testing.T) {
	a := fromEntries(2, 2, e(0, 0, 1), e(1, 1, 2))
	b := fromEntries(2, 2, e(1, 1, 2), e(0, 0, 1))

	assert.True(t, a.Equal(b), "order must not matter")
	assert.False(t, a.Equal(fromEntries(2, 3, e(0, 0, 1), e(1, 1, 2))), "shape differs")
	assert.False(t, a.Equal(fromEntries(2, 2, e(0, 0, 1))), "nnz differs")
	assert.False(t, a.Equal(fromEntries(2, 2, e(0, 0, 1), e(1, 1, 3))), "value differs")
	assert.False(t, a.Equal(nil))

	var n1, n2 *sparse.Matrix
	assert.True(t, n1.Equal(n2))
}

func TestSorted_RowMajor(t *testing.T) {
	m := fromEntries(3, 3, e(2, 0, 1), e(0, 2, 2), e(0, 1, 3), e(1, 1, 4))
	s := m.Sorted()
	require.True(t, m.Equal(s))
	require.Equal(t, []sparse.Entry{e(0, 1, 3), e(0, 2, 2), e(1, 1, 4), e(2, 0, 1)}, s.Entries())
	// Original order untouched.
	require.Equal(t, e(2, 0, 1), m.Entries()[0])
}

func TestGoString(t *testing.T) {
	m := fromEntries(2, 3, e(0, 0, 1))
	require.Equal(t, "sparse.Matrix{2x3 nnz=1}", m.GoString())
}
