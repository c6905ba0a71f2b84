// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaptest

import (
	"slices"

	"cloudeng.io/meldheap"
)

// Collection is a population of non-empty heaps of a single type that is
// addressed by index. Heaps that become empty, or that are melded into
// another heap, are removed from the population and the indices of the
// heaps that follow them are shifted down by one.
type Collection[K any, H meldheap.Interface[K, H]] struct {
	newHeap func() H
	heaps   []H
}

// NewCollection returns an empty collection that uses newHeap to create
// new heaps.
func NewCollection[K any, H meldheap.Interface[K, H]](newHeap func() H) *Collection[K, H] {
	return &Collection[K, H]{newHeap: newHeap}
}

// AddHeap appends a new heap containing key and returns its index.
func (c *Collection[K, H]) AddHeap(key K) int {
	h := c.newHeap()
	h.Insert(key)
	c.heaps = append(c.heaps, h)
	return len(c.heaps) - 1
}

// Insert inserts key into the i'th heap.
func (c *Collection[K, H]) Insert(i int, key K) {
	c.heaps[i].Insert(key)
}

// Min returns the minimum of the i'th heap.
func (c *Collection[K, H]) Min(i int) K {
	return c.heaps[i].Min()
}

// ExtractMin removes and returns the minimum of the i'th heap, the heap
// itself is removed if it becomes empty.
func (c *Collection[K, H]) ExtractMin(i int) K {
	k := c.heaps[i].ExtractMin()
	if c.heaps[i].Empty() {
		c.heaps = slices.Delete(c.heaps, i, i+1)
	}
	return k
}

// Meld melds the j'th heap into the i'th and removes the j'th heap from
// the collection. Melding a heap with itself leaves the collection
// unchanged.
func (c *Collection[K, H]) Meld(i, j int) {
	c.heaps[i].Meld(c.heaps[j])
	if i != j {
		c.heaps = slices.Delete(c.heaps, j, j+1)
	}
}

// Len returns the number of heaps in the collection.
func (c *Collection[K, H]) Len() int {
	return len(c.heaps)
}

// HeapLen returns the number of keys in the i'th heap.
func (c *Collection[K, H]) HeapLen(i int) int {
	return c.heaps[i].Len()
}

// Heap returns the i'th heap.
func (c *Collection[K, H]) Heap(i int) H {
	return c.heaps[i]
}
