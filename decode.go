// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package editdistance

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"cloudeng.io/algo/codec"
	"cloudeng.io/errors"
)

// ErrUnknownUnits is returned by Decode for unrecognised units.
var ErrUnknownUnits = errors.New("unknown units")

// Names of the units that a string may be decoded into.
const (
	BytesUnits = "bytes"
	RunesUnits = "runes"
	LinesUnits = "lines"
)

// UnitNames returns the names of the supported units.
func UnitNames() []string {
	return []string{BytesUnits, RunesUnits, LinesUnits}
}

var (
	byteDecoder = codec.NewDecoder(func(input []byte) (byte, int) {
		return input[0], 1
	})
	runeDecoder = codec.NewDecoder(utf8.DecodeRune)
	lineDecoder = codec.NewDecoder(decodeLine)
)

// decodeLine returns the next newline delimited line, without the newline.
func decodeLine(input []byte) (string, int) {
	idx := bytes.IndexByte(input, '\n')
	if idx < 0 {
		return string(input), len(input)
	}
	return string(input[:idx]), idx + 1
}

// Bytes returns s as a slice of bytes.
func Bytes(s string) []byte {
	return byteDecoder.Decode([]byte(s))
}

// Runes returns s as a slice of utf8 decoded runes.
func Runes(s string) []rune {
	return runeDecoder.Decode([]byte(s))
}

// Lines returns s as a slice of newline delimited lines. A trailing
// newline does not introduce an empty final line.
func Lines(s string) []string {
	return lineDecoder.Decode([]byte(s))
}

// Decode returns s split into the requested units with each unit
// represented as a string so that all units can be compared using
// the same strategy instantiation.
func Decode(units, s string) ([]string, error) {
	switch units {
	case BytesUnits:
		b := Bytes(s)
		r := make([]string, len(b))
		for i, c := range b {
			r[i] = string([]byte{c})
		}
		return r, nil
	case RunesUnits:
		rs := Runes(s)
		r := make([]string, len(rs))
		for i, c := range rs {
			r[i] = string(c)
		}
		return r, nil
	case LinesUnits:
		return Lines(s), nil
	}
	return nil, fmt.Errorf("%q is not one of %v: %w", units, strings.Join(UnitNames(), ", "), ErrUnknownUnits)
}
