// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdistance_test

import (
	"testing"

	"cloudeng.io/editdistance"
)

func countingEqual(calls *int) func(x, y int) bool {
	return func(x, y int) bool {
		*calls++
		return x == y
	}
}

func sequence(start, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = start + i
	}
	return s
}

// TestMemoizedComputesOnce verifies that each sub-problem is computed at
// most once, that is, the element comparison for any [i][j] is made at
// most once, unlike the naive recursion.
func TestMemoizedComputesOnce(t *testing.T) {
	for i, tc := range []struct {
		a, b []int
	}{
		{sequence(0, 40), sequence(100, 40)},
		{sequence(0, 40), sequence(0, 40)},
		{sequence(0, 25), sequence(10, 30)},
		{sequence(0, 1), sequence(100, 60)},
	} {
		calls := 0
		d := editdistance.MemoizedFunc(tc.a, tc.b, countingEqual(&calls))
		if got, want := d, editdistance.Tabulated(tc.a, tc.b); got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if bound := len(tc.a) * len(tc.b); calls > bound {
			t.Errorf("%v: %v comparisons exceeds %v", i, calls, bound)
		}
	}

	// No shared elements requires every sub-problem.
	calls := 0
	a, b := sequence(0, 40), sequence(100, 40)
	editdistance.MemoizedFunc(a, b, countingEqual(&calls))
	if got, want := calls, len(a)*len(b); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	calls = 0
	a, b = sequence(0, 6), sequence(100, 6)
	editdistance.NaiveFunc(a, b, countingEqual(&calls))
	if bound := len(a) * len(b); calls <= bound {
		t.Errorf("naive recursion made %v comparisons, expected more than %v", calls, bound)
	}
}
