// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package meldheap provides mergeable min-heaps: binomial, leftist and
// skew heaps. All three implement Interface, that is, Insert, Min,
// ExtractMin, Empty, Len and Meld, where Meld destructively moves the
// contents of one heap into another of the same type in O(log n) time,
// amortized in the case of Skew.
//
//	a, b := meldheap.NewLeftist[int](), meldheap.NewLeftist[int]()
//	a.Insert(3)
//	b.Insert(1)
//	a.Meld(b) // b is now empty
//	a.Min()   // 1
//
// Keys are ordered either by their natural order, see Compare, or by
// a caller supplied three-way comparison function. Duplicate keys are
// allowed.
//
// Calling Min or ExtractMin on an empty heap is a programming error and
// panics with an error that wraps ErrEmpty. Each heap provides a Validate
// method that checks its structural invariants; heaps created with
// WithValidation(true), or any heap when built with the meldheap_debug
// tag, validate themselves after every mutation.
//
// Heap wraps any one of the variants for callers that need to hold heaps
// of different variants in a single collection. The heaptest package
// provides a reference implementation and a differential test harness.
package meldheap
