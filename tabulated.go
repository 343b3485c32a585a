// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdistance

// Tabulated returns the edit distance between a and b by filling in
// a table of all sub-problems, bottom up. It requires O(len(a)*len(b))
// time and space.
// See https://en.wikipedia.org/wiki/Wagner%E2%80%93Fischer_algorithm.
func Tabulated[T comparable](a, b []T) int {
	return TabulatedFunc(a, b, equal[T])
}

// TabulatedFunc is like Tabulated but uses eq to compare elements.
func TabulatedFunc[T any](a, b []T, eq func(x, y T) bool) int {
	return tabulate(a, b, eq).At(len(a), len(b))
}

// tabulate fills the table in row major order so that the cells above,
// to the left and diagonally above-left of [i][j] are always available
// when [i][j] is computed.
func tabulate[T any](a, b []T, eq func(x, y T) bool) *Table[int] {
	table := NewTable(len(a), len(b), identity, 0)
	for i := 1; i < table.Rows(); i++ {
		for j := 1; j < table.Cols(); j++ {
			k := 1
			if eq(a[i-1], b[j-1]) {
				k = 0
			}
			del := table.At(i-1, j) + 1
			ins := table.At(i, j-1) + 1
			sub := table.At(i-1, j-1) + k
			table.Set(i, j, min(del, ins, sub))
		}
	}
	return table
}
