// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command meldcheck exercises the heaps in cloudeng.io/meldheap, either by
// running them against a reference multiset under a randomized workload
// or by running fixed scenarios.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/meldheap"
)

const cmdSpec = `name: meldcheck
summary: exercise and cross check the mergeable heaps in cloudeng.io/meldheap
commands:
  - name: check
    summary: run a randomized differential workload against each heap variant and a reference multiset
  - name: sort
    summary: heap sort integer keys using the selected heap variant
    arguments:
      - <key>
      - ...
  - name: scenario
    summary: run the fixed insert, extract-min and meld scenarios for each heap variant
`

type commands struct {
	out io.Writer
}

func newCommandSet(out io.Writer) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &commands{out: out}
	cmdSet.Set("check").MustRunnerAndFlags(c.check,
		subcmd.MustRegisteredFlagSet(&checkFlags{}))
	cmdSet.Set("sort").MustRunnerAndFlags(c.sort,
		subcmd.MustRegisteredFlagSet(&sortFlags{}))
	cmdSet.Set("scenario").MustRunnerAndFlags(c.scenario,
		subcmd.MustRegisteredFlagSet(&scenarioFlags{}))
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout))
}

// parseVariants parses a comma separated list of variant names, an empty
// list selects all variants.
func parseVariants(list string) ([]meldheap.Variant, error) {
	if len(strings.TrimSpace(list)) == 0 {
		return meldheap.Variants, nil
	}
	var variants []meldheap.Variant
	for _, name := range strings.Split(list, ",") {
		v, err := meldheap.ParseVariant(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	return variants, nil
}

func newIntHeap(v meldheap.Variant) func() *meldheap.Heap[int] {
	return func() *meldheap.Heap[int] {
		return meldheap.New[int](v)
	}
}

func printKeys(out io.Writer, keys []int) {
	strs := make([]string, len(keys))
	for i, k := range keys {
		strs[i] = fmt.Sprintf("%d", k)
	}
	fmt.Fprintln(out, strings.Join(strs, " "))
}
