// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaptest

import (
	"fmt"

	"cloudeng.io/meldheap"
	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints"
)

type entry[K any] struct {
	key K
	seq uint64 // distinguishes duplicate keys.
}

// Reference is a sorted multiset that implements meldheap.Interface. It
// is used as the trusted oracle when testing the heaps in meldheap and
// makes no attempt at an efficient Meld.
type Reference[K any] struct {
	cmp  func(a, b K) int
	tree *btree.BTreeG[entry[K]]
	seq  uint64
}

// NewReference returns an empty Reference using the natural ordering of K.
func NewReference[K constraints.Ordered]() *Reference[K] {
	return NewReferenceFunc(meldheap.Compare[K])
}

// NewReferenceFunc returns an empty Reference ordered by cmp.
func NewReferenceFunc[K any](cmp func(a, b K) int) *Reference[K] {
	r := &Reference[K]{cmp: cmp}
	r.tree = r.newTree()
	return r
}

func (r *Reference[K]) newTree() *btree.BTreeG[entry[K]] {
	return btree.NewBTreeGOptions(func(a, b entry[K]) bool {
		if c := r.cmp(a.key, b.key); c != 0 {
			return c < 0
		}
		return a.seq < b.seq
	}, btree.Options{NoLocks: true})
}

// Insert implements meldheap.Interface.
func (r *Reference[K]) Insert(key K) {
	r.seq++
	r.tree.Set(entry[K]{key: key, seq: r.seq})
}

// Min implements meldheap.Interface.
func (r *Reference[K]) Min() K {
	e, ok := r.tree.Min()
	if !ok {
		panic(fmt.Errorf("Min: %w", meldheap.ErrEmpty))
	}
	return e.key
}

// ExtractMin implements meldheap.Interface.
func (r *Reference[K]) ExtractMin() K {
	e, ok := r.tree.PopMin()
	if !ok {
		panic(fmt.Errorf("ExtractMin: %w", meldheap.ErrEmpty))
	}
	return e.key
}

// Meld implements meldheap.Interface.
func (r *Reference[K]) Meld(other *Reference[K]) {
	if other == nil || other == r {
		return
	}
	other.tree.Scan(func(e entry[K]) bool {
		r.Insert(e.key)
		return true
	})
	other.tree = other.newTree()
}

// Empty implements meldheap.Interface.
func (r *Reference[K]) Empty() bool {
	return r.tree.Len() == 0
}

// Len implements meldheap.Interface.
func (r *Reference[K]) Len() int {
	return r.tree.Len()
}

// Keys returns all of the keys in ascending order.
func (r *Reference[K]) Keys() []K {
	keys := make([]K, 0, r.tree.Len())
	r.tree.Scan(func(e entry[K]) bool {
		keys = append(keys, e.key)
		return true
	})
	return keys
}
