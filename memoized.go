// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdistance

// Memoized returns the edit distance between a and b using the same
// top-down recursion as Naive, but caching every sub-problem result so
// that each is computed at most once. Only the sub-problems that are
// actually needed are computed. It requires O(len(a)*len(b)) time and
// space and a recursion depth of up to len(a)+len(b).
func Memoized[T comparable](a, b []T) int {
	return MemoizedFunc(a, b, equal[T])
}

// MemoizedFunc is like Memoized but uses eq to compare elements.
func MemoizedFunc[T any](a, b []T, eq func(x, y T) bool) int {
	m := &memo[T]{
		a:  a,
		b:  b,
		eq: eq,
		// The borders are known, so the base cases are cache hits.
		table: NewTable(len(a), len(b), knownIdentity, Cell{}),
	}
	return m.distance(len(a), len(b))
}

type memo[T any] struct {
	a, b  []T
	eq    func(x, y T) bool
	table *Table[Cell]
}

// distance returns the edit distance between a[:i] and b[:j].
func (m *memo[T]) distance(i, j int) int {
	if d, ok := m.table.At(i, j).Get(); ok {
		return d
	}
	var d int
	if m.eq(m.a[i-1], m.b[j-1]) {
		d = m.distance(i-1, j-1)
	} else {
		del := m.distance(i-1, j)
		ins := m.distance(i, j-1)
		sub := m.distance(i-1, j-1)
		d = 1 + min(del, ins, sub)
	}
	m.table.Set(i, j, Known(d))
	return d
}
