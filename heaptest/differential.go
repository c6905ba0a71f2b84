// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heaptest

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"cloudeng.io/algo/container/circular"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/meldheap"
	"gonum.org/v1/gonum/stat"
)

// Op represents the operations performed by Run.
type Op int

// Values for Op.
const (
	OpAddHeap Op = iota
	OpInsert
	OpMin
	OpExtractMin
	OpMeld
	numOps
)

func (o Op) String() string {
	switch o {
	case OpAddHeap:
		return "add-heap"
	case OpInsert:
		return "insert"
	case OpMin:
		return "min"
	case OpExtractMin:
		return "extract-min"
	case OpMeld:
		return "meld"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Step is a single operation performed by Run. I and J are indices into
// the population of heaps, J is only used by OpMeld and Key only by
// OpAddHeap and OpInsert.
type Step struct {
	N    int
	Op   Op
	I, J int
	Key  int
}

func (s Step) String() string {
	switch s.Op {
	case OpAddHeap:
		return fmt.Sprintf("#%d %v %d", s.N, s.Op, s.Key)
	case OpInsert:
		return fmt.Sprintf("#%d %v [%d] %d", s.N, s.Op, s.I, s.Key)
	case OpMeld:
		return fmt.Sprintf("#%d %v [%d] [%d]", s.N, s.Op, s.I, s.J)
	}
	return fmt.Sprintf("#%d %v [%d]", s.N, s.Op, s.I)
}

// DivergenceError is returned by Run when the heap under test disagrees
// with the oracle, fails validation or panics.
type DivergenceError struct {
	Step Step
	// Check names the comparison that failed, eg. "min" or "population".
	Check string
	Got   any
	Want  any
	// Trace holds the most recent operations, including Step.
	Trace []Step
	// Err is set for validation failures and panics.
	Err error
}

func (e *DivergenceError) Error() string {
	out := &strings.Builder{}
	if e.Err != nil {
		fmt.Fprintf(out, "%v: %v: %v", e.Step, e.Check, e.Err)
	} else {
		fmt.Fprintf(out, "%v: %v: got %v, want %v", e.Step, e.Check, e.Got, e.Want)
	}
	if len(e.Trace) > 0 {
		out.WriteString("\nrecent operations:")
		for _, s := range e.Trace {
			out.WriteString("\n  ")
			out.WriteString(s.String())
		}
	}
	return out.String()
}

// Unwrap returns the underlying validation or panic error, if any.
func (e *DivergenceError) Unwrap() error {
	return e.Err
}

// Stats summarises a run.
type Stats struct {
	Ops           map[Op]int
	MaxPopulation int
	MaxHeapLen    int
	// MeanHeapLen and StdDevHeapLen describe the size of the heap
	// touched by each operation.
	MeanHeapLen   float64
	StdDevHeapLen float64
}

type validator interface {
	Validate() error
}

type run[H meldheap.Interface[int, H], O meldheap.Interface[int, O]] struct {
	cfg    Config
	rng    *rand.Rand
	heaps  *Collection[int, H]
	oracle *Collection[int, O]
	trace  *circular.Buffer[Step]
	sizes  []float64
	stats  Stats
}

// Run performs cfg.Iterations randomly chosen operations on a population
// of heaps created by newHeap and the same operations on a population
// created by newOracle, checking that both agree after every operation.
// The first disagreement is returned as a *DivergenceError. The logger
// is obtained from ctx via ctxlog.Logger.
func Run[H meldheap.Interface[int, H], O meldheap.Interface[int, O]](ctx context.Context, cfg Config, newHeap func() H, newOracle func() O) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}
	r := &run[H, O]{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)), //nolint:gosec // reproducible test input.
		heaps:  NewCollection[int](newHeap),
		oracle: NewCollection[int](newOracle),
		trace:  circular.NewBuffer[Step](cfg.TraceLen + 1),
		sizes:  make([]float64, 0, cfg.Iterations),
		stats:  Stats{Ops: map[Op]int{}},
	}
	logger := ctxlog.Logger(ctx)
	logger.Info("differential run starting", "iterations", cfg.Iterations, "seed", cfg.Seed, "max_key", cfg.MaxKey)
	for n := 0; n < cfg.Iterations; n++ {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return r.summarize(), err
			}
		}
		if err := r.safeStep(n); err != nil {
			logger.Error("differential run diverged", "step", n, "error", err)
			return r.summarize(), err
		}
		if pe := cfg.ProgressEvery; pe > 0 && (n+1)%pe == 0 {
			logger.Debug("differential run progress", "step", n+1, "population", r.heaps.Len())
		}
	}
	stats := r.summarize()
	logger.Info("differential run complete",
		"iterations", cfg.Iterations,
		"max_population", stats.MaxPopulation,
		"max_heap_len", stats.MaxHeapLen,
		"mean_heap_len", stats.MeanHeapLen)
	return stats, nil
}

func (r *run[H, O]) summarize() Stats {
	s := r.stats
	switch len(r.sizes) {
	case 0:
	case 1:
		s.MeanHeapLen = r.sizes[0]
	default:
		s.MeanHeapLen, s.StdDevHeapLen = stat.MeanStdDev(r.sizes, nil)
	}
	return s
}

func (r *run[H, O]) pickOp() Op {
	n := r.rng.IntN(r.cfg.Weights.total())
	for op := OpAddHeap; op < numOps; op++ {
		if n -= r.cfg.Weights.forOp(op); n < 0 {
			return op
		}
	}
	return OpAddHeap
}

func (r *run[H, O]) record(s Step) {
	if r.cfg.TraceLen == 0 {
		return
	}
	r.trace.Append([]Step{s})
	if over := r.trace.Len() - r.cfg.TraceLen; over > 0 {
		r.trace.Head(over)
	}
}

func (r *run[H, O]) diverged(s Step, check string, got, want any, err error) error {
	return &DivergenceError{
		Step:  s,
		Check: check,
		Got:   got,
		Want:  want,
		Err:   err,
		Trace: r.trace.Head(r.trace.Len()),
	}
}

func (r *run[H, O]) safeStep(n int) (err error) {
	s := Step{N: n}
	defer func() {
		if p := recover(); p != nil {
			perr, ok := p.(error)
			if !ok {
				perr = fmt.Errorf("%v", p)
			}
			err = r.diverged(s, "panic", nil, nil, perr)
		}
	}()
	s = r.next(n)
	return r.apply(s)
}

func (r *run[H, O]) next(n int) Step {
	s := Step{N: n, Op: r.pickOp(), Key: 1 + r.rng.IntN(r.cfg.MaxKey)}
	if r.heaps.Len() == 0 {
		s.Op = OpAddHeap
	}
	if s.Op != OpAddHeap {
		s.I = r.rng.IntN(r.heaps.Len())
		s.J = r.rng.IntN(r.heaps.Len())
	}
	r.record(s)
	r.stats.Ops[s.Op]++
	return s
}

func (r *run[H, O]) apply(s Step) error {
	touched := s.I
	switch s.Op {
	case OpAddHeap:
		touched = r.heaps.AddHeap(s.Key)
		r.oracle.AddHeap(s.Key)
	case OpInsert:
		r.heaps.Insert(s.I, s.Key)
		r.oracle.Insert(s.I, s.Key)
	case OpMin:
		if got, want := r.heaps.Min(s.I), r.oracle.Min(s.I); got != want {
			return r.diverged(s, "min", got, want, nil)
		}
	case OpExtractMin:
		last := r.oracle.HeapLen(s.I) == 1
		if got, want := r.heaps.ExtractMin(s.I), r.oracle.ExtractMin(s.I); got != want {
			return r.diverged(s, "extract-min", got, want, nil)
		}
		if last {
			touched = -1
		}
	case OpMeld:
		donor := r.heaps.Heap(s.J)
		r.heaps.Meld(s.I, s.J)
		r.oracle.Meld(s.I, s.J)
		if s.I != s.J && (!donor.Empty() || donor.Len() != 0) {
			return r.diverged(s, "meld donor len", donor.Len(), 0, nil)
		}
		if s.J < s.I {
			touched--
		}
	}
	return r.compare(s, touched)
}

func (r *run[H, O]) compare(s Step, touched int) error {
	if got, want := r.heaps.Len(), r.oracle.Len(); got != want {
		return r.diverged(s, "population", got, want, nil)
	}
	r.stats.MaxPopulation = max(r.stats.MaxPopulation, r.heaps.Len())
	if touched < 0 {
		return nil
	}
	h, o := r.heaps.Heap(touched), r.oracle.Heap(touched)
	if got, want := h.Len(), o.Len(); got != want {
		return r.diverged(s, "len", got, want, nil)
	}
	if got, want := h.Empty(), o.Empty(); got != want {
		return r.diverged(s, "empty", got, want, nil)
	}
	if !o.Empty() {
		if got, want := h.Min(), o.Min(); got != want {
			return r.diverged(s, "min", got, want, nil)
		}
	}
	if r.cfg.Verify && s.Op != OpMin {
		if v, ok := any(h).(validator); ok {
			if err := v.Validate(); err != nil {
				return r.diverged(s, "validate", nil, nil, err)
			}
		}
	}
	r.stats.MaxHeapLen = max(r.stats.MaxHeapLen, h.Len())
	r.sizes = append(r.sizes, float64(h.Len()))
	return nil
}
