// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heaptest provides support for testing implementations of
// meldheap.Interface: a sorted multiset, Reference, that serves as a
// trusted oracle, a Collection of heaps addressed by index and Run, which
// drives a heap implementation and the oracle through the same randomized
// sequence of operations and reports the first point at which they
// disagree.
//
//	cfg := heaptest.DefaultConfig()
//	_, err := heaptest.Run(ctx, cfg,
//	    func() *meldheap.Skew[int] { return meldheap.NewSkew[int]() },
//	    heaptest.NewReference[int])
package heaptest
