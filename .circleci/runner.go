// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

var (
	testFlag       bool
	lintFlag       bool
	soakFlag       bool
	iterationsFlag int
)

func done(msg string, err error) {
	fmt.Printf("Failed: %s: %s\n", msg, err)
	os.Exit(1)
}

func main() {
	ctx := context.Background()
	flag.BoolVar(&testFlag, "test", false, "run tests, with and without the meldheap_debug tag")
	flag.BoolVar(&lintFlag, "lint", false, "run lint")
	flag.BoolVar(&soakFlag, "soak", false, "run a long differential check of every heap variant")
	flag.IntVar(&iterationsFlag, "iterations", 1000000, "number of operations for -soak")

	flag.Parse()

	if !(testFlag || lintFlag || soakFlag) {
		fmt.Fprintf(os.Stderr, "at least one flag is required\n")
		flag.Usage()
		os.Exit(1)
	}

	if testFlag {
		if err := runAll(ctx, testCommands()); err != nil {
			done("tests", err)
		}
	}

	if lintFlag {
		if err := run(ctx, "golangci-lint", "run", "./..."); err != nil {
			done("lint", err)
		}
	}

	if soakFlag {
		if err := run(ctx, "go", "run", "./cmd/meldcheck", "check",
			"-iterations="+strconv.Itoa(iterationsFlag), "-log-level=2"); err != nil {
			done("soak", err)
		}
	}
}

func testCommands() [][]string {
	common := []string{"test", "-failfast", "--covermode=atomic", "--vet=off", "-race"}
	return [][]string{
		append(append([]string{"go"}, common...), "./..."),
		append(append([]string{"go"}, common...), "-tags=meldheap_debug", "./..."),
	}
}

func runAll(ctx context.Context, cmds [][]string) error {
	failed := false
	for _, c := range cmds {
		if err := run(ctx, c[0], c[1:]...); err != nil {
			fmt.Fprintf(os.Stderr, "%v: failed: %v\n", c, err)
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("tests failed")
	}
	return nil
}

func run(ctx context.Context, name string, args ...string) error {
	fmt.Printf("%v %v...\n", name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		fmt.Printf("%v %v... ok\n", name, args)
	} else {
		fmt.Printf("%v %v... failed\n", name, args)
	}
	return err
}
