// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdistance_test

import (
	"math/rand"
	"testing"

	"cloudeng.io/algo/lcs"
	"cloudeng.io/editdistance"
	"cloudeng.io/errors"
	"cloudeng.io/text/testing/testtext"
)

// generator creates random rune sequences drawn from a small alphabet of
// runes of differing utf8 lengths so that the sequences share elements
// often enough to exercise the 'identical' branch of the recurrence.
// The alphabet is randomly generated for each run, hence both it and
// the seed are needed to replay a run via newGeneratorWithAlphabet.
type generator struct {
	alphabet []rune
	rnd      *rand.Rand
}

func newGenerator(t *testing.T, seed int64) *generator {
	alphabet := testtext.NewRandom().AllRuneLens(4)
	t.Logf("replay with: newGeneratorWithAlphabet(%#x, %q)", seed, alphabet)
	return newGeneratorWithAlphabet(seed, alphabet)
}

func newGeneratorWithAlphabet(seed int64, alphabet string) *generator {
	return &generator{
		alphabet: []rune(alphabet),
		rnd:      rand.New(rand.NewSource(seed)),
	}
}

func (g *generator) sequence(maxLen int) []rune {
	s := make([]rune, g.rnd.Intn(maxLen+1))
	for i := range s {
		s[i] = g.alphabet[g.rnd.Intn(len(g.alphabet))]
	}
	return s
}

func expectDistance(t *testing.T, name string, a, b []rune, got, want int) {
	if got != want {
		t.Errorf("%v: %v: %q, %q: got %v, want %v", errors.FileLocation(2, 1), name, string(a), string(b), got, want)
	}
}

func TestAgreement(t *testing.T) {
	g := newGenerator(t, 0x1234)
	for i := 0; i < 500; i++ {
		a, b := g.sequence(7), g.sequence(7)
		want := editdistance.Naive(a, b)
		expectDistance(t, editdistance.TabulatedName, a, b, editdistance.Tabulated(a, b), want)
		expectDistance(t, editdistance.MemoizedName, a, b, editdistance.Memoized(a, b), want)
	}
	for i := 0; i < 100; i++ {
		a, b := g.sequence(64), g.sequence(64)
		expectDistance(t, editdistance.MemoizedName, a, b, editdistance.Memoized(a, b), editdistance.Tabulated(a, b))
	}
}

func TestIdentityAndSymmetry(t *testing.T) {
	g := newGenerator(t, 0x5678)
	for i := 0; i < 200; i++ {
		a, b := g.sequence(6), g.sequence(6)
		for _, s := range strategies {
			expectDistance(t, s.name, a, a, s.fn(a, a), 0)
			expectDistance(t, s.name, a, b, s.fn(a, b), s.fn(b, a))
		}
	}
}

func TestEmpty(t *testing.T) {
	g := newGenerator(t, 0x9abc)
	for i := 0; i < 50; i++ {
		s := g.sequence(8)
		for _, st := range strategies {
			expectDistance(t, st.name, nil, s, st.fn(nil, s), len(s))
			expectDistance(t, st.name, s, nil, st.fn(s, nil), len(s))
			expectDistance(t, st.name, []rune{}, s, st.fn([]rune{}, s), len(s))
		}
	}
}

func TestTriangleInequality(t *testing.T) {
	g := newGenerator(t, 0xdef0)
	for i := 0; i < 300; i++ {
		a, b, c := g.sequence(20), g.sequence(20), g.sequence(20)
		ac := editdistance.Tabulated(a, c)
		ab := editdistance.Tabulated(a, b)
		bc := editdistance.Memoized(b, c)
		if ac > ab+bc {
			t.Errorf("%q, %q, %q: %v > %v + %v", string(a), string(b), string(c), ac, ab, bc)
		}
	}
}

// TestLCSBounds uses the longest common subsequence, as computed by
// an independent implementation, to bound the edit distance: at least
// max(m, n) - lcs elements must be edited and deleting everything not
// in the lcs and inserting everything missing from it always suffices.
func TestLCSBounds(t *testing.T) {
	g := newGenerator(t, 0x4321)
	for i := 0; i < 300; i++ {
		a, b := g.sequence(32), g.sequence(32)
		l := len(lcs.NewMyers(a, b).LCS())
		d := editdistance.Tabulated(a, b)
		lower, upper := max(len(a), len(b))-l, len(a)+len(b)-2*l
		if d < lower || d > upper {
			t.Errorf("%q, %q: %v not in [%v, %v]", string(a), string(b), d, lower, upper)
		}
	}
}

func TestGeneratorReplay(t *testing.T) {
	g := newGenerator(t, 0x2468)
	replay := newGeneratorWithAlphabet(0x2468, string(g.alphabet))
	for i := 0; i < 20; i++ {
		if got, want := string(replay.sequence(16)), string(g.sequence(16)); got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
	}
}
