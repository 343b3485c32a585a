// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdistance

import "fmt"

// Table represents the (m+1) x (n+1) matrix of sub-problem results used
// by the dynamic programming strategies. Row i and column j correspond to
// the first i elements of A and the first j elements of B; the extra 0th
// row and column hold the distances against an empty prefix.
type Table[V any] struct {
	rows, cols int
	cells      []V
}

// NewTable returns a table of (m+1) x (n+1) cells. The 0th row and the
// 0th column are initialized by border, which is called with the row or
// column index, all other cells are set to interior.
func NewTable[V any](m, n int, border func(i int) V, interior V) *Table[V] {
	if m < 0 || n < 0 {
		panic(fmt.Sprintf("invalid table size: %v x %v", m, n))
	}
	t := &Table[V]{
		rows:  m + 1,
		cols:  n + 1,
		cells: make([]V, (m+1)*(n+1)),
	}
	for i := range t.cells {
		t.cells[i] = interior
	}
	for j := 0; j < t.cols; j++ {
		t.cells[j] = border(j)
	}
	for i := 1; i < t.rows; i++ {
		t.cells[i*t.cols] = border(i)
	}
	return t
}

// Rows returns the number of rows, ie. len(A)+1.
func (t *Table[V]) Rows() int {
	return t.rows
}

// Cols returns the number of columns, ie. len(B)+1.
func (t *Table[V]) Cols() int {
	return t.cols
}

// At returns the value stored at row i, column j.
func (t *Table[V]) At(i, j int) V {
	return t.cells[t.offset(i, j)]
}

// Set stores v at row i, column j.
func (t *Table[V]) Set(i, j int, v V) {
	t.cells[t.offset(i, j)] = v
}

// Row returns a copy of the i'th row.
func (t *Table[V]) Row(i int) []V {
	r := make([]V, t.cols)
	copy(r, t.cells[i*t.cols:(i+1)*t.cols])
	return r
}

func (t *Table[V]) offset(i, j int) int {
	if i < 0 || i >= t.rows || j < 0 || j >= t.cols {
		panic(fmt.Sprintf("index [%v][%v] out of range for %v x %v table", i, j, t.rows, t.cols))
	}
	return i*t.cols + j
}

// Cell is a memoization table entry. The zero value is unset, which
// distinguishes a sub-problem that has not been computed yet from one
// whose distance is known without reserving any distance value as a
// marker.
type Cell struct {
	distance int
	set      bool
}

// Known returns a Cell holding distance d.
func Known(d int) Cell {
	return Cell{distance: d, set: true}
}

// Get returns the distance stored in the cell and true, or false if the
// cell is unset.
func (c Cell) Get() (int, bool) {
	return c.distance, c.set
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	if !c.set {
		return "-"
	}
	return fmt.Sprintf("%d", c.distance)
}

func identity(i int) int {
	return i
}

func knownIdentity(i int) Cell {
	return Known(i)
}
