// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap

import "golang.org/x/exp/constraints"

type skewTree[K any] struct {
	key         K
	left, right *skewTree[K]
}

// Skew is a skew heap, the self-adjusting analogue of a leftist heap. No
// balance information is stored, instead the children of every node on
// the merge path are swapped. Operations are O(log n) amortized, a single
// operation may take O(n).
//
// A Skew heap must not be used concurrently. The zero value is not
// usable, heaps must be created with NewSkew or NewSkewFunc.
type Skew[K any] struct {
	cmp  func(a, b K) int
	root *skewTree[K]
	n    int
	opts options
}

// NewSkew returns an empty skew heap using the natural ordering of K.
func NewSkew[K constraints.Ordered](opts ...Option) *Skew[K] {
	return NewSkewFunc(Compare[K], opts...)
}

// NewSkewFunc returns an empty skew heap ordered by cmp.
func NewSkewFunc[K any](cmp func(a, b K) int, opts ...Option) *Skew[K] {
	return &Skew[K]{cmp: cmp, opts: newOptions(opts)}
}

// Len implements Interface.
func (h *Skew[K]) Len() int {
	return h.n
}

// Empty implements Interface.
func (h *Skew[K]) Empty() bool {
	return h.root == nil
}

// Insert implements Interface.
func (h *Skew[K]) Insert(key K) {
	h.root = h.merge(h.root, &skewTree[K]{key: key})
	h.n++
	h.check("Insert")
}

// Min implements Interface.
func (h *Skew[K]) Min() K {
	if h.root == nil {
		emptyPanic("Min")
	}
	return h.root.key
}

// ExtractMin implements Interface.
func (h *Skew[K]) ExtractMin() K {
	if h.root == nil {
		emptyPanic("ExtractMin")
	}
	old := h.root
	h.root = h.merge(old.left, old.right)
	old.left, old.right = nil, nil
	h.n--
	h.check("ExtractMin")
	return old.key
}

// Meld implements Interface.
func (h *Skew[K]) Meld(other *Skew[K]) {
	if other == nil || other == h {
		return
	}
	h.root = h.merge(h.root, other.root)
	h.n += other.n
	other.root, other.n = nil, 0
	h.check("Meld")
}

// merge is the top-down form of:
//
//	a.right = merge(a.right, b)
//	a.left, a.right = a.right, a.left
//
// where a is the operand with the smaller root. The loop walks the merged
// right path and so needs no stack proportional to its length.
func (h *Skew[K]) merge(a, b *skewTree[K]) *skewTree[K] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.cmp(b.key, a.key) < 0 {
		a, b = b, a
	}
	root := a
	for {
		r := a.right
		a.right = a.left
		if r == nil {
			a.left = b
			break
		}
		if h.cmp(b.key, r.key) < 0 {
			r, b = b, r
		}
		a.left = r
		a = r
	}
	return root
}

func (h *Skew[K]) check(op string) {
	if !h.opts.validate {
		return
	}
	if err := h.Validate(); err != nil {
		invariantPanic(op, err)
	}
}
