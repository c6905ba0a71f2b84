// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap

import (
	"errors"
	"math/bits"
	"strings"
	"testing"
)

func expectViolation(t *testing.T, err error, contains string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a violation containing %q", contains)
	}
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("%v does not wrap ErrInvariant", err)
	}
	if !strings.Contains(err.Error(), contains) {
		t.Errorf("%v does not contain %q", err, contains)
	}
}

func TestBinomialShape(t *testing.T) {
	h := NewBinomial[int]()
	for i := 1; i <= 100; i++ {
		h.Insert(100 - i)
		if got, want := len(h.trees), bits.OnesCount(uint(i)); got != want {
			t.Fatalf("%v keys: got %v trees, want %v", i, got, want)
		}
		if got, want := h.trees[0].degree(), bits.TrailingZeros(uint(i)); got != want {
			t.Fatalf("%v keys: smallest tree has degree %v, want %v", i, got, want)
		}
	}
	for h.Len() > 0 {
		h.ExtractMin()
		if got, want := len(h.trees), bits.OnesCount(uint(h.Len())); got != want {
			t.Fatalf("%v keys: got %v trees, want %v", h.Len(), got, want)
		}
	}
}

func TestBinomialValidate(t *testing.T) {
	newHeap := func() *Binomial[int] {
		h := NewBinomial[int]()
		for _, k := range []int{1, 2, 3, 4, 5, 6, 7} {
			h.Insert(k)
		}
		if err := h.Validate(); err != nil {
			t.Fatal(err)
		}
		return h
	}

	h := newHeap()
	h.n++
	expectViolation(t, h.Validate(), "Len is 8")

	h = newHeap()
	h.trees[0], h.trees[1] = h.trees[1], h.trees[0]
	expectViolation(t, h.Validate(), "preceded by degree")

	h = newHeap()
	last := h.trees[len(h.trees)-1]
	last.children[0].key = -1
	expectViolation(t, h.Validate(), "less than parent key")

	h = newHeap()
	last = h.trees[len(h.trees)-1]
	last.children[0], last.children[1] = last.children[1], last.children[0]
	expectViolation(t, h.Validate(), "degree")
}

func TestLeftistValidate(t *testing.T) {
	h := NewLeftist[int]()
	if err := h.Validate(); err != nil {
		t.Fatal(err)
	}
	h.root = &leftistTree[int]{key: 1, rank: 1,
		right: &leftistTree[int]{key: 2, rank: 1},
	}
	h.n = 2
	expectViolation(t, h.Validate(), "rank(left) 0 < rank(right) 1")

	h.root = &leftistTree[int]{key: 3, rank: 2,
		left:  &leftistTree[int]{key: 2, rank: 1},
		right: &leftistTree[int]{key: 4, rank: 1},
	}
	h.n = 3
	expectViolation(t, h.Validate(), "less than parent key")

	h.root = &leftistTree[int]{key: 1, rank: 2,
		left: &leftistTree[int]{key: 2, rank: 1},
	}
	h.n = 2
	expectViolation(t, h.Validate(), "rank is 2, should be 1")

	h.root.rank = 1
	h.n = 5
	expectViolation(t, h.Validate(), "Len is 5")
}

func TestSkewValidate(t *testing.T) {
	h := NewSkew[int]()
	h.root = &skewTree[int]{key: 5,
		right: &skewTree[int]{key: 4},
	}
	h.n = 2
	expectViolation(t, h.Validate(), "less than parent key")
	h.root.right.key = 6
	if err := h.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	h.n = 1
	expectViolation(t, h.Validate(), "Len is 1")
}

func TestValidateLimit(t *testing.T) {
	h := NewSkew[int]()
	var tr *skewTree[int]
	for i := 0; i < 100; i++ {
		tr = &skewTree[int]{key: i, left: tr}
	}
	h.root, h.n = tr, 100
	err := h.Validate()
	expectViolation(t, err, "less than parent key")
	if got, want := strings.Count(err.Error(), "less than parent key"), maxViolations; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestValidationOption(t *testing.T) {
	h := NewLeftist[int](WithValidation(true))
	h.Insert(2)
	h.Insert(1)
	h.n = 7
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrInvariant) {
			t.Errorf("got %v, want a panic wrapping ErrInvariant", err)
		}
	}()
	h.Insert(3)
}
