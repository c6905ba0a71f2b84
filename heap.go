// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap

import (
	"cmp"
	"fmt"

	"cloudeng.io/errors"
)

// Interface is the contract shared by all of the mergeable heaps in this
// package. H is the concrete heap type so that Meld is only ever defined
// between two heaps of the same variant, for example *Binomial[K]
// implements Interface[K, *Binomial[K]].
type Interface[K any, H any] interface {
	// Insert adds one occurrence of key.
	Insert(key K)
	// Min returns, without removing it, a key equal to the minimum key
	// in the heap. It panics with ErrEmpty if the heap is empty.
	Min() K
	// ExtractMin removes and returns one occurrence of the minimum key.
	// It panics with ErrEmpty if the heap is empty.
	ExtractMin() K
	// Meld moves the entire contents of other into the receiver,
	// leaving other empty. Melding a heap with itself is a no-op.
	Meld(other H)
	// Empty returns true if the heap holds no keys.
	Empty() bool
	// Len returns the number of keys in the heap.
	Len() int
}

var (
	// ErrEmpty is the value that Min and ExtractMin panic with when
	// called on an empty heap.
	ErrEmpty = errors.New("min requested from an empty heap")

	// ErrVariantMismatch is the value that Heap.Meld panics with when
	// asked to meld two heaps of different variants.
	ErrVariantMismatch = errors.New("cannot meld heaps of different variants")

	// ErrInvariant is wrapped by all errors returned by Validate.
	ErrInvariant = errors.New("heap invariant violated")
)

// Compare returns the natural three-way ordering of a and b as defined
// by cmp.Compare, NaNs are ordered before all other values so that
// floating point keys remain totally ordered.
func Compare[K cmp.Ordered](a, b K) int {
	return cmp.Compare(a, b)
}

func emptyPanic(op string) {
	panic(fmt.Errorf("%v: %w", op, ErrEmpty))
}
