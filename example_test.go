// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap_test

import (
	"fmt"

	"cloudeng.io/meldheap"
)

func ExampleBinomial() {
	h := meldheap.NewBinomial[int]()
	for _, k := range []int{5, 3, 8, 1} {
		h.Insert(k)
	}
	fmt.Println(h.ExtractMin(), h.Min())
	o := meldheap.NewBinomial[int]()
	o.Insert(0)
	o.Insert(10)
	h.Meld(o)
	fmt.Println(h.Len(), o.Len())
	for !h.Empty() {
		fmt.Print(h.ExtractMin(), " ")
	}
	fmt.Println()
	// Output:
	// 1 3
	// 5 0
	// 0 3 5 8 10
}

func ExampleNew() {
	for _, v := range meldheap.Variants {
		h := meldheap.New[string](v)
		for _, k := range []string{"pear", "apple", "fig"} {
			h.Insert(k)
		}
		fmt.Println(v, h.ExtractMin(), h.ExtractMin(), h.ExtractMin())
	}
	// Output:
	// binomial apple fig pear
	// leftist apple fig pear
	// skew apple fig pear
}
