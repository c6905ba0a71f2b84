// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap

import (
	"slices"

	"golang.org/x/exp/constraints"
)

type binomialTree[K any] struct {
	key      K
	children []*binomialTree[K] // ordered by degree, 0..degree-1.
}

func (t *binomialTree[K]) degree() int {
	return len(t.children)
}

// Binomial is a binomial heap: a forest of heap ordered binomial trees
// with at most one tree of any given degree. Meld is the analogue of
// binary addition over the degrees present in each forest and runs in
// O(log n) as do Insert, Min and ExtractMin.
//
// A Binomial heap must not be used concurrently. The zero value is not
// usable, heaps must be created with NewBinomial or NewBinomialFunc.
type Binomial[K any] struct {
	cmp   func(a, b K) int
	trees []*binomialTree[K] // strictly increasing degree.
	n     int
	opts  options
}

// NewBinomial returns an empty binomial heap using the natural ordering
// of K.
func NewBinomial[K constraints.Ordered](opts ...Option) *Binomial[K] {
	return NewBinomialFunc(Compare[K], opts...)
}

// NewBinomialFunc returns an empty binomial heap ordered by cmp.
func NewBinomialFunc[K any](cmp func(a, b K) int, opts ...Option) *Binomial[K] {
	return &Binomial[K]{cmp: cmp, opts: newOptions(opts)}
}

// Len implements Interface.
func (h *Binomial[K]) Len() int {
	return h.n
}

// Empty implements Interface.
func (h *Binomial[K]) Empty() bool {
	return len(h.trees) == 0
}

// Insert implements Interface.
func (h *Binomial[K]) Insert(key K) {
	h.trees = h.union(h.trees, []*binomialTree[K]{{key: key}})
	h.n++
	h.check("Insert")
}

// Min implements Interface.
func (h *Binomial[K]) Min() K {
	if len(h.trees) == 0 {
		emptyPanic("Min")
	}
	return h.trees[h.minRoot()].key
}

// ExtractMin implements Interface.
func (h *Binomial[K]) ExtractMin() K {
	if len(h.trees) == 0 {
		emptyPanic("ExtractMin")
	}
	i := h.minRoot()
	root := h.trees[i]
	h.trees = slices.Delete(h.trees, i, i+1)
	children := root.children
	root.children = nil
	h.trees = h.union(h.trees, children)
	h.n--
	h.check("ExtractMin")
	return root.key
}

// Meld implements Interface.
func (h *Binomial[K]) Meld(other *Binomial[K]) {
	if other == nil || other == h {
		return
	}
	h.trees = h.union(h.trees, other.trees)
	h.n += other.n
	other.trees, other.n = nil, 0
	h.check("Meld")
}

// minRoot returns the index of the first root holding the minimum key.
func (h *Binomial[K]) minRoot() int {
	m := 0
	for i := 1; i < len(h.trees); i++ {
		if h.cmp(h.trees[i].key, h.trees[m].key) < 0 {
			m = i
		}
	}
	return m
}

// link combines two trees of the same degree, the tree with the larger
// root key becomes the last, ie. highest degree, child of the other.
func (h *Binomial[K]) link(a, b *binomialTree[K]) *binomialTree[K] {
	if h.cmp(b.key, a.key) < 0 {
		a, b = b, a
	}
	a.children = append(a.children, b)
	return a
}

// mergeByDegree merges two forests into a single slice ordered by
// non-decreasing degree.
func mergeByDegree[K any](a, b []*binomialTree[K]) []*binomialTree[K] {
	merged := make([]*binomialTree[K], 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j].degree() < a[i].degree() {
			merged = append(merged, b[j])
			j++
			continue
		}
		merged = append(merged, a[i])
		i++
	}
	merged = append(merged, a[i:]...)
	return append(merged, b[j:]...)
}

// union returns the forest holding all of the trees in a and b. The merged
// sequence contains at most two trees of any degree, so with a carry there
// are at most three trees of the degree currently being considered: one
// is emitted and the remaining pair, if any, is linked into the carry for
// the next degree.
func (h *Binomial[K]) union(a, b []*binomialTree[K]) []*binomialTree[K] {
	if len(b) == 0 {
		return a
	}
	if len(a) == 0 {
		return b
	}
	merged := mergeByDegree(a, b)
	forest := make([]*binomialTree[K], 0, len(merged)+1)
	var carry *binomialTree[K]
	for i := 0; i < len(merged); {
		t := merged[i]
		if carry != nil && carry.degree() < t.degree() {
			forest = append(forest, carry)
			carry = nil
			continue
		}
		paired := i+1 < len(merged) && merged[i+1].degree() == t.degree()
		switch {
		case carry == nil && !paired:
			forest = append(forest, t)
			i++
		case carry == nil && paired:
			carry = h.link(t, merged[i+1])
			i += 2
		case !paired:
			carry = h.link(carry, t)
			i++
		default:
			forest = append(forest, carry)
			carry = h.link(t, merged[i+1])
			i += 2
		}
	}
	if carry != nil {
		forest = append(forest, carry)
	}
	return forest
}

func (h *Binomial[K]) check(op string) {
	if !h.opts.validate {
		return
	}
	if err := h.Validate(); err != nil {
		invariantPanic(op, err)
	}
}
