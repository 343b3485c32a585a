// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloudeng.io/algo/digests"
	"cloudeng.io/editdistance"
	"cloudeng.io/editdistance/multilevel"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"cloudeng.io/logging/ctxlog"
)

var errNaiveTooLarge = errors.New("input too large for the naive strategy")

type commands struct {
	out io.Writer
}

// distance runs the configured strategies, printing the distance computed
// by each of them, and returns an error if they disagree.
func distance[T any](ctx context.Context, out io.Writer, cfg Config, a, b []T, eq func(x, y T) bool) error {
	logger := ctxlog.Logger(ctx)
	names := cfg.strategies()
	if size := len(a) + len(b); size > cfg.NaiveLimit {
		if cfg.Strategy == editdistance.NaiveName {
			return fmt.Errorf("%w: combined length %v exceeds --naive-limit of %v", errNaiveTooLarge, size, cfg.NaiveLimit)
		}
		if names[0] == editdistance.NaiveName {
			logger.Warn("skipping naive strategy", "combined_length", size, "naive_limit", cfg.NaiveLimit)
			names = names[1:]
		}
	}
	distances := make([]int, len(names))
	for i, name := range names {
		fn, err := editdistance.Strategy[T](name)
		if err != nil {
			return err
		}
		start := time.Now()
		distances[i] = fn(a, b, eq)
		logger.Debug("distance", "strategy", name, "units", cfg.Units, "len_a", len(a), "len_b", len(b), "distance", distances[i], "elapsed", time.Since(start))
		fmt.Fprintf(out, "%v: %v\n", name, distances[i])
	}
	_, err := editdistance.Consistent(names, distances)
	return err
}

func decodePair(cfg Config, a, b string) ([]string, []string, error) {
	da, err := editdistance.Decode(cfg.Units, a)
	if err != nil {
		return nil, nil, err
	}
	db, err := editdistance.Decode(cfg.Units, b)
	if err != nil {
		return nil, nil, err
	}
	return da, db, nil
}

func equalStrings(x, y string) bool {
	return x == y
}

func (c *commands) compare(ctx context.Context, values interface{}, args []string) error {
	ctx, cfg, cleanup, err := setup(ctx, values)
	defer cleanup()
	if err != nil {
		return err
	}
	a, b, err := decodePair(cfg, args[0], args[1])
	if err != nil {
		return err
	}
	return distance(ctx, c.out, cfg, a, b, equalStrings)
}

func (c *commands) files(ctx context.Context, values interface{}, args []string) error {
	ctx, cfg, cleanup, err := setup(ctx, values)
	defer cleanup()
	if err != nil {
		return err
	}
	contents := make([]string, len(args))
	for i, name := range args {
		buf, err := file.FSReadFile(ctx, name)
		if err != nil {
			return err
		}
		contents[i] = string(buf)
	}
	a, b, err := decodePair(cfg, contents[0], contents[1])
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("comparing files", "a", args[0], "b", args[1], "units", cfg.Units)
	return distance(ctx, c.out, cfg, a, b, equalStrings)
}

func (c *commands) trees(ctx context.Context, values interface{}, args []string) error {
	ctx, cfg, cleanup, err := setup(ctx, values)
	defer cleanup()
	if err != nil {
		return err
	}
	trees := make([]*multilevel.Node, len(args))
	for i, name := range args {
		if trees[i], err = multilevel.ParseFile(ctx, name); err != nil {
			return err
		}
		digest, err := trees[i].Digest("sha256")
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%v: sha256:%v\n", name, digests.ToHex(digest))
	}
	fmt.Fprintf(c.out, "equal: %v\n", trees[0].Equal(trees[1]))
	a, _ := trees[0].Children()
	b, _ := trees[1].Children()
	return distance(ctx, c.out, cfg, a, b, (*multilevel.Node).Equal)
}

func (c *commands) demo(ctx context.Context, values interface{}, _ []string) error {
	ctx, _, cleanup, err := setup(ctx, values)
	defer cleanup()
	if err != nil {
		return err
	}
	s1, s2 := "NOHELLO", "HELLGO"
	d := editdistance.Tabulated(editdistance.Bytes(s1), editdistance.Bytes(s2))
	ctxlog.Logger(ctx).Debug("demo", "a", s1, "b", s2, "distance", d)
	fmt.Fprintf(c.out, "Edit distance between %v and %v is %v\n", s1, s2, d)
	return nil
}
