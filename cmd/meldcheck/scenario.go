// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"slices"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/meldheap"
)

type scenarioFlags struct {
	cmdutil.LoggingFlags
	Variants string `subcmd:"variants,,'comma separated list of heap variants to run, all are run by default'"`
}

type scenario struct {
	name string
	run  func(meldheap.Variant) error
}

var scenarios = []scenario{
	{"insert-meld-extract", insertMeldExtract},
	{"descending-drain", descendingDrain},
}

func drain(h *meldheap.Heap[int]) []int {
	var keys []int
	for !h.Empty() {
		keys = append(keys, h.ExtractMin())
	}
	return keys
}

// insertMeldExtract inserts 5, 3, 8, 1, checks the minimum, extracts it,
// melds in a heap holding 0 and 10 and drains the result.
func insertMeldExtract(v meldheap.Variant) error {
	h := meldheap.New[int](v)
	for _, k := range []int{5, 3, 8, 1} {
		h.Insert(k)
	}
	if got, want := h.Min(), 1; got != want {
		return fmt.Errorf("min: got %v, want %v", got, want)
	}
	if got, want := h.ExtractMin(), 1; got != want {
		return fmt.Errorf("extract-min: got %v, want %v", got, want)
	}
	if got, want := h.Min(), 3; got != want {
		return fmt.Errorf("min after extract-min: got %v, want %v", got, want)
	}
	o := meldheap.New[int](v)
	o.Insert(0)
	o.Insert(10)
	h.Meld(o)
	if !o.Empty() || o.Len() != 0 {
		return fmt.Errorf("meld: donor still holds %v keys", o.Len())
	}
	if got, want := h.Len(), 5; got != want {
		return fmt.Errorf("len after meld: got %v, want %v", got, want)
	}
	if got, want := drain(h), []int{0, 3, 5, 8, 10}; !slices.Equal(got, want) {
		return fmt.Errorf("drain: got %v, want %v", got, want)
	}
	return nil
}

// descendingDrain inserts 10 down to 1 and checks they are extracted in
// ascending order.
func descendingDrain(v meldheap.Variant) error {
	h := meldheap.New[int](v)
	for k := 10; k >= 1; k-- {
		h.Insert(k)
	}
	if err := h.Validate(); err != nil {
		return err
	}
	if got, want := drain(h), []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}; !slices.Equal(got, want) {
		return fmt.Errorf("drain: got %v, want %v", got, want)
	}
	return nil
}

func (c *commands) scenario(ctx context.Context, values any, _ []string) error {
	fv := values.(*scenarioFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	variants, err := parseVariants(fv.Variants)
	if err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	var errs errors.M
	for _, v := range variants {
		for _, sc := range scenarios {
			if err := sc.run(v); err != nil {
				logger.Error("scenario failed", "variant", v.String(), "scenario", sc.name, "error", err)
				fmt.Fprintf(c.out, "%v: %v: FAIL: %v\n", v, sc.name, err)
				errs.Append(fmt.Errorf("%v: %v: %w", v, sc.name, err))
				continue
			}
			fmt.Fprintf(c.out, "%v: %v: ok\n", v, sc.name)
		}
	}
	return errs.Err()
}
