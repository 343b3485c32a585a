// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdistance

// Naive returns the edit distance between a and b using a direct
// recursive evaluation of the edit distance recurrence. It has no memory
// of previously computed sub-problems and hence its running time is
// exponential in the length of its inputs; it is intended as a reference
// for the other strategies and should only be used with short inputs.
func Naive[T comparable](a, b []T) int {
	return NaiveFunc(a, b, equal[T])
}

// NaiveFunc is like Naive but uses eq to compare elements.
func NaiveFunc[T any](a, b []T, eq func(x, y T) bool) int {
	i, j := len(a), len(b)
	if min(i, j) == 0 {
		return max(i, j)
	}
	// An identical trailing pair never needs to be deleted, inserted or
	// substituted.
	if eq(a[i-1], b[j-1]) {
		return NaiveFunc(a[:i-1], b[:j-1], eq)
	}
	del := NaiveFunc(a[:i-1], b, eq)
	ins := NaiveFunc(a, b[:j-1], eq)
	sub := NaiveFunc(a[:i-1], b[:j-1], eq)
	return 1 + min(del, ins, sub)
}

func equal[T comparable](x, y T) bool {
	return x == y
}
