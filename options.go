// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap

import "fmt"

type options struct {
	validate bool
}

// Option represents the options that can be passed to the heap
// constructors.
type Option func(*options)

// WithValidation enables running Validate after every mutating operation,
// the heap panics if a violation is found. It is intended for tests, the
// same behaviour is enabled for all heaps when built with the
// meldheap_debug tag.
func WithValidation(v bool) Option {
	return func(o *options) {
		o.validate = v
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	o.validate = o.validate || debugChecks
	return o
}

func invariantPanic(op string, err error) {
	panic(fmt.Errorf("after %v: %w", op, err))
}
