// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/meldheap/heaptest"
	"golang.org/x/sync/errgroup"
)

type checkFlags struct {
	cmdutil.LoggingFlags
	Variants   string `subcmd:"variants,,'comma separated list of heap variants to check, all are checked by default'"`
	ConfigFile string `subcmd:"config,,'yaml or toml file describing the workload, see heaptest.Config'"`
	Iterations int    `subcmd:"iterations,0,'overrides the configured number of iterations when positive'"`
	Seed       int    `subcmd:"seed,-1,'overrides the configured seed when not negative'"`
}

func (fv *checkFlags) config(ctx context.Context) (heaptest.Config, error) {
	cfg := heaptest.DefaultConfig()
	if len(fv.ConfigFile) > 0 {
		var err error
		if cfg, err = heaptest.LoadConfig(ctx, fv.ConfigFile); err != nil {
			return cfg, err
		}
	}
	if fv.Iterations > 0 {
		cfg.Iterations = fv.Iterations
	}
	if fv.Seed >= 0 {
		cfg.Seed = uint64(fv.Seed)
	}
	return cfg, cfg.Validate()
}

func (c *commands) check(ctx context.Context, values any, _ []string) error {
	fv := values.(*checkFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	cfg, err := fv.config(ctx)
	if err != nil {
		return err
	}
	variants, err := parseVariants(fv.Variants)
	if err != nil {
		return err
	}
	results := make([]heaptest.Stats, len(variants))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range variants {
		g.Go(func() error {
			vctx := ctxlog.WithAttributes(gctx, "variant", v.String())
			stats, err := heaptest.Run(vctx, cfg, newIntHeap(v), heaptest.NewReference[int])
			if err != nil {
				return fmt.Errorf("%v: %w", v, err)
			}
			results[i] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i, v := range variants {
		s := results[i]
		fmt.Fprintf(c.out, "%v: ok: %v operations, max population %v, max heap len %v, mean heap len %.2f (sd %.2f)\n",
			v, cfg.Iterations, s.MaxPopulation, s.MaxHeapLen, s.MeanHeapLen, s.StdDevHeapLen)
	}
	return nil
}
