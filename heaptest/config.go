// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaptest

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/file"
	"github.com/pelletier/go-toml/v2"
)

// Weights are the relative frequencies with which each operation is
// chosen by Run.
type Weights struct {
	AddHeap    int `yaml:"add_heap" toml:"add_heap"`
	Insert     int `yaml:"insert" toml:"insert"`
	Min        int `yaml:"min" toml:"min"`
	ExtractMin int `yaml:"extract_min" toml:"extract_min"`
	Meld       int `yaml:"meld" toml:"meld"`
}

func (w Weights) forOp(op Op) int {
	switch op {
	case OpAddHeap:
		return w.AddHeap
	case OpInsert:
		return w.Insert
	case OpMin:
		return w.Min
	case OpExtractMin:
		return w.ExtractMin
	case OpMeld:
		return w.Meld
	}
	return 0
}

func (w Weights) total() int {
	return w.AddHeap + w.Insert + w.Min + w.ExtractMin + w.Meld
}

// Config describes a randomized differential workload, it may be read
// from YAML or TOML:
//
//	iterations: 10000
//	seed: 1
//	max_key: 100
//	progress_every: 1000
//	trace_len: 16
//	verify: true
//	weights:
//	  add_heap: 1
//	  insert: 1
//	  min: 1
//	  extract_min: 1
//	  meld: 1
type Config struct {
	// Iterations is the number of operations performed.
	Iterations int `yaml:"iterations" toml:"iterations"`
	// Seed seeds the random number generator, runs with the same
	// seed and weights perform the same operations.
	Seed uint64 `yaml:"seed" toml:"seed"`
	// MaxKey is the largest key inserted, keys are drawn from [1, MaxKey].
	MaxKey int `yaml:"max_key" toml:"max_key"`
	// ProgressEvery is the interval, in operations, between progress
	// log records, zero disables them.
	ProgressEvery int `yaml:"progress_every" toml:"progress_every"`
	// TraceLen is the number of recent operations reported in a
	// DivergenceError.
	TraceLen int `yaml:"trace_len" toml:"trace_len"`
	// Verify requests that heaps implementing Validate() error are
	// validated after every operation that modifies them.
	Verify  bool    `yaml:"verify" toml:"verify"`
	Weights Weights `yaml:"weights" toml:"weights"`
}

// DefaultConfig returns the configuration used when none is specified:
// 10,000 equally weighted operations over keys in [1, 100].
func DefaultConfig() Config {
	return Config{
		Iterations:    10000,
		Seed:          1,
		MaxKey:        100,
		ProgressEvery: 1000,
		TraceLen:      16,
		Verify:        true,
		Weights: Weights{
			AddHeap:    1,
			Insert:     1,
			Min:        1,
			ExtractMin: 1,
			Meld:       1,
		},
	}
}

// Validate returns an error describing every out of range field.
func (c Config) Validate() error {
	errs := &errors.M{}
	if c.Iterations < 1 {
		errs.Append(fmt.Errorf("iterations must be at least 1: %v", c.Iterations))
	}
	if c.MaxKey < 1 {
		errs.Append(fmt.Errorf("max_key must be at least 1: %v", c.MaxKey))
	}
	if c.ProgressEvery < 0 {
		errs.Append(fmt.Errorf("progress_every must not be negative: %v", c.ProgressEvery))
	}
	if c.TraceLen < 0 {
		errs.Append(fmt.Errorf("trace_len must not be negative: %v", c.TraceLen))
	}
	for op := OpAddHeap; op < numOps; op++ {
		if w := c.Weights.forOp(op); w < 0 {
			errs.Append(fmt.Errorf("weight for %v must not be negative: %v", op, w))
		}
	}
	if c.Weights.total() <= 0 {
		errs.Append(errors.New("at least one operation weight must be positive"))
	}
	return errs.Err()
}

// ParseConfig parses a configuration in YAML or, if ext is ".toml", TOML
// format. Fields that are not specified retain the values from
// DefaultConfig and unknown fields are reported as errors.
func ParseConfig(data []byte, ext string) (Config, error) {
	cfg := DefaultConfig()
	switch {
	case len(bytes.TrimSpace(data)) == 0:
		// an empty yaml document is reported as io.EOF by the decoder.
	case strings.EqualFold(ext, ".toml"):
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			var sme *toml.StrictMissingError
			if errors.As(err, &sme) {
				// The error string alone does not name the unknown fields.
				return Config{}, fmt.Errorf("invalid toml config: %w\n%v", err, sme.String())
			}
			return Config{}, fmt.Errorf("invalid toml config: %w", err)
		}
	default:
		if err := cmdyaml.ParseConfigStrict(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid yaml config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the configuration file at path, the file's
// extension determines its format.
func LoadConfig(ctx context.Context, path string) (Config, error) {
	data, err := file.FSReadFile(ctx, path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := ParseConfig(data, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", path, err)
	}
	return cfg, nil
}
