// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap_test

import (
	"slices"
	"testing"

	"cloudeng.io/meldheap"
)

func TestSkew(t *testing.T) {
	testAll(t, func() *meldheap.Skew[int] { return meldheap.NewSkew[int]() })
	testAll(t, func() *meldheap.Skew[int] {
		return meldheap.NewSkew[int](meldheap.WithValidation(true))
	})
}

func TestSkewFunc(t *testing.T) {
	h := meldheap.NewSkewFunc(reverse)
	for k := 1; k <= 10; k++ {
		h.Insert(k)
	}
	o := meldheap.NewSkewFunc(reverse)
	o.Insert(20)
	h.Meld(o)
	if got, want := drain(t, h), []int{20, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSkewSequential(t *testing.T) {
	// Ascending and descending insertion produce degenerate shapes.
	for _, step := range []int{1, -1} {
		h := meldheap.NewSkew[int]()
		var want []int
		for i := 0; i < 2000; i++ {
			k := i * step
			h.Insert(k)
			want = append(want, k)
		}
		validate(t, h)
		slices.Sort(want)
		if got := drain(t, h); !slices.Equal(got, want) {
			t.Errorf("step %v: drained keys are out of order or missing: %v, want %v keys", step, len(got), len(want))
		}
	}
}
