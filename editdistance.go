// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package editdistance provides implementations of the edit, or Levenshtein,
// distance between two sequences, that is, the minimum number of single
// element insertions, deletions and substitutions required to transform
// one into the other. Three strategies are provided that differ only in
// their performance characteristics:
//
//   - Naive: a direct recursive implementation, exponential in time.
//   - Tabulated: bottom-up dynamic programming over a Table.
//   - Memoized: top-down recursion that caches results in a Table.
//
// All of them operate on slices of any comparable type, or any type at all
// when an equality function is supplied via their ...Func variants. Only
// the distance is computed, not the edits required to achieve it; see
// cloudeng.io/algo/lcs for computing edit scripts.
package editdistance

import (
	"fmt"
	"strings"

	"cloudeng.io/errors"
)

// Func represents the common signature of all of the strategies.
type Func[T any] func(a, b []T, eq func(x, y T) bool) int

// ErrUnknownStrategy is returned by Strategy for unrecognised names.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrDisagreement is returned when strategies compute different distances
// for the same inputs.
var ErrDisagreement = errors.New("strategies disagree")

// Names of the supported strategies.
const (
	NaiveName     = "naive"
	TabulatedName = "tabulated"
	MemoizedName  = "memoized"
)

// StrategyNames returns the names of the supported strategies, in order
// of increasing efficiency.
func StrategyNames() []string {
	return []string{NaiveName, TabulatedName, MemoizedName}
}

// Strategy returns the strategy with the specified name.
func Strategy[T any](name string) (Func[T], error) {
	switch name {
	case NaiveName:
		return NaiveFunc[T], nil
	case TabulatedName:
		return TabulatedFunc[T], nil
	case MemoizedName:
		return MemoizedFunc[T], nil
	}
	return nil, fmt.Errorf("%q is not one of %v: %w", name, strings.Join(StrategyNames(), ", "), ErrUnknownStrategy)
}

// All computes the distance between a and b using each of the named
// strategies, or all of them if none are named, and returns the distance
// if they all agree, as determined by Consistent. An error is returned for
// an unknown strategy or if any of the strategies disagree.
func All[T any](a, b []T, eq func(x, y T) bool, names ...string) (int, error) {
	if len(names) == 0 {
		names = StrategyNames()
	}
	results := make([]int, len(names))
	errs := &errors.M{}
	for i, name := range names {
		fn, err := Strategy[T](name)
		if err != nil {
			errs.Append(err)
			continue
		}
		results[i] = fn(a, b, eq)
	}
	if err := errs.Err(); err != nil {
		return -1, err
	}
	return Consistent(names, results)
}

// Consistent returns the common distance if all of the distances, as
// computed by the correspondingly named strategies, are the same. An error
// wrapping ErrDisagreement that lists each strategy's result is returned
// otherwise. It returns 0 for no distances.
func Consistent(names []string, distances []int) (int, error) {
	if len(names) != len(distances) {
		panic(fmt.Sprintf("mismatched lengths: %v names, %v distances", len(names), len(distances)))
	}
	for i := 1; i < len(distances); i++ {
		if distances[i] == distances[0] {
			continue
		}
		results := make([]string, len(names))
		for j, name := range names {
			results[j] = fmt.Sprintf("%v: %v", name, distances[j])
		}
		return -1, fmt.Errorf("%w: %v", ErrDisagreement, strings.Join(results, ", "))
	}
	if len(distances) == 0 {
		return 0, nil
	}
	return distances[0], nil
}
