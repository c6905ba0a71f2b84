// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package meldheap

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Variant identifies one of the heap implementations in this package.
type Variant int

// Values for Variant.
const (
	BinomialVariant Variant = iota
	LeftistVariant
	SkewVariant
)

// Variants lists all of the supported variants.
var Variants = []Variant{BinomialVariant, LeftistVariant, SkewVariant}

func (v Variant) String() string {
	switch v {
	case BinomialVariant:
		return "binomial"
	case LeftistVariant:
		return "leftist"
	case SkewVariant:
		return "skew"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant returns the Variant named by s, as returned by
// Variant.String. The comparison is case insensitive.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if strings.EqualFold(s, v.String()) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unrecognised heap variant: %q", s)
}

// Heap holds any one of the heap variants behind a single type for
// callers that need to store heaps of different variants together.
// Meld is still only defined between heaps of the same variant and
// panics with ErrVariantMismatch otherwise. The zero value is not usable,
// a Heap must be created with New or NewFunc.
type Heap[K any] struct {
	variant  Variant
	binomial *Binomial[K]
	leftist  *Leftist[K]
	skew     *Skew[K]
}

// New returns an empty heap of the requested variant using the natural
// ordering of K.
func New[K constraints.Ordered](v Variant, opts ...Option) *Heap[K] {
	return NewFunc(v, Compare[K], opts...)
}

// NewFunc returns an empty heap of the requested variant ordered by cmp.
// It panics if v is not one of the supported variants.
func NewFunc[K any](v Variant, cmp func(a, b K) int, opts ...Option) *Heap[K] {
	h := &Heap[K]{variant: v}
	switch v {
	case BinomialVariant:
		h.binomial = NewBinomialFunc(cmp, opts...)
	case LeftistVariant:
		h.leftist = NewLeftistFunc(cmp, opts...)
	case SkewVariant:
		h.skew = NewSkewFunc(cmp, opts...)
	default:
		panic(fmt.Sprintf("unsupported heap variant: %v", v))
	}
	return h
}

// Variant returns the variant of the heap.
func (h *Heap[K]) Variant() Variant {
	return h.variant
}

// Insert implements Interface.
func (h *Heap[K]) Insert(key K) {
	switch h.variant {
	case BinomialVariant:
		h.binomial.Insert(key)
	case LeftistVariant:
		h.leftist.Insert(key)
	default:
		h.skew.Insert(key)
	}
}

// Min implements Interface.
func (h *Heap[K]) Min() K {
	switch h.variant {
	case BinomialVariant:
		return h.binomial.Min()
	case LeftistVariant:
		return h.leftist.Min()
	default:
		return h.skew.Min()
	}
}

// ExtractMin implements Interface.
func (h *Heap[K]) ExtractMin() K {
	switch h.variant {
	case BinomialVariant:
		return h.binomial.ExtractMin()
	case LeftistVariant:
		return h.leftist.ExtractMin()
	default:
		return h.skew.ExtractMin()
	}
}

// Meld implements Interface.
func (h *Heap[K]) Meld(other *Heap[K]) {
	if other == nil || other == h {
		return
	}
	if other.variant != h.variant {
		panic(fmt.Errorf("%w: %v and %v", ErrVariantMismatch, h.variant, other.variant))
	}
	switch h.variant {
	case BinomialVariant:
		h.binomial.Meld(other.binomial)
	case LeftistVariant:
		h.leftist.Meld(other.leftist)
	default:
		h.skew.Meld(other.skew)
	}
}

// Empty implements Interface.
func (h *Heap[K]) Empty() bool {
	switch h.variant {
	case BinomialVariant:
		return h.binomial.Empty()
	case LeftistVariant:
		return h.leftist.Empty()
	default:
		return h.skew.Empty()
	}
}

// Len implements Interface.
func (h *Heap[K]) Len() int {
	switch h.variant {
	case BinomialVariant:
		return h.binomial.Len()
	case LeftistVariant:
		return h.leftist.Len()
	default:
		return h.skew.Len()
	}
}

// Validate calls Validate on the underlying heap.
func (h *Heap[K]) Validate() error {
	switch h.variant {
	case BinomialVariant:
		return h.binomial.Validate()
	case LeftistVariant:
		return h.leftist.Validate()
	default:
		return h.skew.Validate()
	}
}
