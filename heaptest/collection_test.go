// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaptest_test

import (
	"testing"

	"cloudeng.io/meldheap"
	"cloudeng.io/meldheap/heaptest"
)

func TestCollection(t *testing.T) {
	c := heaptest.NewCollection[int](func() *meldheap.Skew[int] { return meldheap.NewSkew[int]() })
	if got, want := c.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for i, k := range []int{7, 3, 9} {
		if got, want := c.AddHeap(k), i; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	c.Insert(0, 1)
	c.Insert(2, 4)
	if got, want := c.Min(0), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.HeapLen(2), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Extracting the last key removes the heap.
	if got, want := c.ExtractMin(1), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.Len(), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.Min(1), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Melding removes the donor.
	donor := c.Heap(1)
	c.Meld(0, 1)
	if got, want := c.Len(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !donor.Empty() {
		t.Errorf("donor is not empty after meld")
	}
	if got, want := c.HeapLen(0), 4; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Self meld is a no-op.
	c.Meld(0, 0)
	if got, want := c.Len(), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, want := range []int{1, 4, 7, 9} {
		if got := c.ExtractMin(0); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if got, want := c.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
