// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap

import (
	"fmt"

	"cloudeng.io/errors"
)

// maxViolations bounds the number of errors collected by a single call to
// Validate.
const maxViolations = 16

type violations struct {
	errs errors.M
	n    int
}

func (v *violations) add(format string, args ...any) bool {
	v.n++
	if v.n <= maxViolations {
		v.errs.Append(fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
	}
	return v.n < maxViolations
}

func (v *violations) err() error {
	return v.errs.Err()
}

// Validate checks the binomial forest invariants: root degrees strictly
// increase, a tree of degree d has children of degrees 0..d-1 in that
// order (and hence 2^d keys), every key is no smaller than its parent's
// and the sizes of all trees add up to Len.
func (h *Binomial[K]) Validate() error {
	var v violations
	total := 0
	for i, t := range h.trees {
		if i > 0 && h.trees[i-1].degree() >= t.degree() {
			if !v.add("forest: tree %v has degree %v, preceded by degree %v", i, t.degree(), h.trees[i-1].degree()) {
				break
			}
		}
		size, ok := h.validateTree(&v, t)
		if !ok {
			break
		}
		total += size
	}
	if total != h.n && v.n == 0 {
		v.add("forest holds %v keys, Len is %v", total, h.n)
	}
	return v.err()
}

func (h *Binomial[K]) validateTree(v *violations, root *binomialTree[K]) (int, bool) {
	size := 0
	stack := []*binomialTree[K]{root}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for d, c := range t.children {
			if c.degree() != d {
				if !v.add("tree %v: child %v has degree %v", t.key, d, c.degree()) {
					return size, false
				}
			}
			if h.cmp(c.key, t.key) < 0 {
				if !v.add("tree: child key %v is less than parent key %v", c.key, t.key) {
					return size, false
				}
			}
			stack = append(stack, c)
		}
	}
	if want := 1 << root.degree(); size != want {
		if !v.add("tree of degree %v holds %v keys, not %v", root.degree(), size, want) {
			return size, false
		}
	}
	return size, true
}

// Validate checks heap order, the leftist property
// rank(left) >= rank(right), that every stored rank equals
// 1 + min(rank(left), rank(right)) and that the tree holds Len keys.
func (h *Leftist[K]) Validate() error {
	var v violations
	size := 0
	stack := []*leftistTree[K]{}
	if h.root != nil {
		stack = append(stack, h.root)
	}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		l, r := t.left.getRank(), t.right.getRank()
		if l < r {
			if !v.add("node %v: rank(left) %v < rank(right) %v", t.key, l, r) {
				return v.err()
			}
		}
		if want := 1 + min(l, r); t.rank != want {
			if !v.add("node %v: rank is %v, should be %v", t.key, t.rank, want) {
				return v.err()
			}
		}
		for _, c := range []*leftistTree[K]{t.left, t.right} {
			if c == nil {
				continue
			}
			if h.cmp(c.key, t.key) < 0 {
				if !v.add("node %v: child key %v is less than parent key", t.key, c.key) {
					return v.err()
				}
			}
			stack = append(stack, c)
		}
	}
	if size != h.n {
		v.add("tree holds %v keys, Len is %v", size, h.n)
	}
	return v.err()
}

// Validate checks heap order and that the tree holds Len keys.
func (h *Skew[K]) Validate() error {
	var v violations
	size := 0
	stack := []*skewTree[K]{}
	if h.root != nil {
		stack = append(stack, h.root)
	}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		size++
		for _, c := range []*skewTree[K]{t.left, t.right} {
			if c == nil {
				continue
			}
			if h.cmp(c.key, t.key) < 0 {
				if !v.add("node %v: child key %v is less than parent key", t.key, c.key) {
					return v.err()
				}
			}
			stack = append(stack, c)
		}
	}
	if size != h.n {
		v.add("tree holds %v keys, Len is %v", size, h.n)
	}
	return v.err()
}
