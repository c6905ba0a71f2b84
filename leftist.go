// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap

import "golang.org/x/exp/constraints"

type leftistTree[K any] struct {
	key         K
	left, right *leftistTree[K]
	rank        int // 1 + min(rank(left), rank(right)), nil has rank 0.
}

func (t *leftistTree[K]) getRank() int {
	if t == nil {
		return 0
	}
	return t.rank
}

// Leftist is a leftist heap, a heap ordered binary tree in which the rank
// (null path length) of every left child is at least that of its right
// sibling. The right spine therefore holds O(log n) nodes and since merge
// only descends right spines all operations are O(log n) in the worst case.
//
// A Leftist heap must not be used concurrently. The zero value is not
// usable, heaps must be created with NewLeftist or NewLeftistFunc.
type Leftist[K any] struct {
	cmp  func(a, b K) int
	root *leftistTree[K]
	n    int
	opts options
}

// NewLeftist returns an empty leftist heap using the natural ordering of K.
func NewLeftist[K constraints.Ordered](opts ...Option) *Leftist[K] {
	return NewLeftistFunc(Compare[K], opts...)
}

// NewLeftistFunc returns an empty leftist heap ordered by cmp.
func NewLeftistFunc[K any](cmp func(a, b K) int, opts ...Option) *Leftist[K] {
	return &Leftist[K]{cmp: cmp, opts: newOptions(opts)}
}

// Len implements Interface.
func (h *Leftist[K]) Len() int {
	return h.n
}

// Empty implements Interface.
func (h *Leftist[K]) Empty() bool {
	return h.root == nil
}

// Insert implements Interface.
func (h *Leftist[K]) Insert(key K) {
	h.root = h.merge(h.root, &leftistTree[K]{key: key, rank: 1})
	h.n++
	h.check("Insert")
}

// Min implements Interface.
func (h *Leftist[K]) Min() K {
	if h.root == nil {
		emptyPanic("Min")
	}
	return h.root.key
}

// ExtractMin implements Interface.
func (h *Leftist[K]) ExtractMin() K {
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
func (h *Leftist[K]) Meld(other *Leftist[K]) {
	if other == nil || other == h {
		return
	}
	h.root = h.merge(h.root, other.root)
	h.n += other.n
	other.root, other.n = nil, 0
	h.check("Meld")
}

func (h *Leftist[K]) merge(a, b *leftistTree[K]) *leftistTree[K] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.cmp(b.key, a.key) < 0 {
		a, b = b, a
	}
	a.right = h.merge(a.right, b)
	if a.right.getRank() > a.left.getRank() {
		a.left, a.right = a.right, a.left
	}
	a.rank = 1 + min(a.left.getRank(), a.right.getRank())
	return a
}

func (h *Leftist[K]) check(op string) {
	if !h.opts.validate {
		return
	}
	if err := h.Validate(); err != nil {
		invariantPanic(op, err)
	}
}
