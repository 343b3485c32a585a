// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/editdistance"
	"cloudeng.io/logging/ctxlog"
)

const (
	allStrategies     = "all"
	defaultUnits      = editdistance.RunesUnits
	defaultNaiveLimit = 24
	defaultLogFormat  = "json"
)

// CommonFlags represents the flags shared by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config     string `subcmd:"config,,'yaml configuration file, flags that are set override the values it contains'"`
	Strategy   string `subcmd:"strategy,,'one of naive, tabulated, memoized or all, the default is all'"`
	Units      string `subcmd:"units,,'compare strings or files as one of bytes, runes or lines, the default is runes'"`
	NaiveLimit int    `subcmd:"naive-limit,0,'the maximum combined length of the inputs for the naive strategy, the default is 24'"`
}

// Config represents the configuration that may be specified via the
// --config flag.
type Config struct {
	Strategy   string                `yaml:"strategy" cmd:"one of naive, tabulated, memoized or all"`
	Units      string                `yaml:"units" cmd:"one of bytes, runes or lines"`
	NaiveLimit int                   `yaml:"naive_limit" cmd:"the maximum combined length of the inputs for the naive strategy"`
	Logging    cmdutil.LoggingConfig `yaml:"logging" cmd:"logging configuration"`
}

// config returns the configuration obtained by reading the optional
// config file and then applying any flags that have been set.
func (cf *CommonFlags) config(ctx context.Context) (Config, error) {
	var cfg Config
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFileStrict(ctx, cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	if len(cf.Strategy) > 0 {
		cfg.Strategy = cf.Strategy
	}
	if len(cf.Units) > 0 {
		cfg.Units = cf.Units
	}
	if cf.NaiveLimit > 0 {
		cfg.NaiveLimit = cf.NaiveLimit
	}
	cfg.Logging = cf.overrideLogging(cfg.Logging)
	if len(cfg.Strategy) == 0 {
		cfg.Strategy = allStrategies
	}
	if len(cfg.Units) == 0 {
		cfg.Units = defaultUnits
	}
	if cfg.NaiveLimit <= 0 {
		cfg.NaiveLimit = defaultNaiveLimit
	}
	return cfg, cfg.validate()
}

// overrideLogging applies the logging flags that have been set to lc.
// --log-format always has a value, json by default, and hence it only
// replaces a format read from the config file when it differs from
// that default.
func (cf *CommonFlags) overrideLogging(lc cmdutil.LoggingConfig) cmdutil.LoggingConfig {
	if cf.Level > 0 {
		lc.Level = cf.Level
	}
	if len(cf.File) > 0 {
		lc.File = cf.File
	}
	if cf.SourceCode {
		lc.SourceCode = true
	}
	switch {
	case len(lc.Format) == 0 && len(cf.Format) == 0:
		lc.Format = defaultLogFormat
	case len(lc.Format) == 0, len(cf.Format) > 0 && cf.Format != defaultLogFormat:
		lc.Format = cf.Format
	}
	return lc
}

func (c Config) validate() error {
	if err := flags.OneOf(c.Strategy).Validate(allStrategies, editdistance.StrategyNames()...); err != nil {
		return fmt.Errorf("--strategy: %w", err)
	}
	if err := flags.OneOf(c.Units).Validate(editdistance.BytesUnits, editdistance.UnitNames()...); err != nil {
		return fmt.Errorf("--units: %w", err)
	}
	return nil
}

// strategies returns the names of the strategies to be run.
func (c Config) strategies() []string {
	if c.Strategy == allStrategies {
		return editdistance.StrategyNames()
	}
	return []string{c.Strategy}
}

// withLogger returns a context containing the configured logger and
// a function to be called to close it.
func (c Config) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := c.Logging.NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}

// setup is called by each command to obtain its configuration and logger.
func setup(ctx context.Context, values interface{}) (context.Context, Config, func(), error) {
	cfg, err := values.(*CommonFlags).config(ctx)
	if err != nil {
		return ctx, Config{}, func() {}, err
	}
	ctx, cleanup, err := cfg.withLogger(ctx)
	if err != nil {
		return ctx, Config{}, cleanup, err
	}
	ctxlog.Logger(ctx).Debug("configuration", "strategy", cfg.Strategy, "units", cfg.Units, "naive_limit", cfg.NaiveLimit)
	return ctx, cfg, cleanup, nil
}
