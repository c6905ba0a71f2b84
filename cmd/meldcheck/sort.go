// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/meldheap"
)

type sortFlags struct {
	cmdutil.LoggingFlags
	Variant string `subcmd:"variant,binomial,'heap variant to use, one of binomial, leftist or skew'"`
}

func (c *commands) sort(ctx context.Context, values any, args []string) error {
	fv := values.(*sortFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	v, err := meldheap.ParseVariant(fv.Variant)
	if err != nil {
		return err
	}
	h := meldheap.New[int](v)
	for _, arg := range args {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid key %q: %w", arg, err)
		}
		h.Insert(k)
	}
	ctxlog.Logger(ctx).Info("sorting", "variant", v.String(), "keys", h.Len())
	sorted := make([]int, 0, h.Len())
	for !h.Empty() {
		sorted = append(sorted, h.ExtractMin())
	}
	printKeys(c.out, sorted)
	return nil
}
