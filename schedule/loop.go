// SPDX-License-Identifier: MIT

// Package schedule - structured parallel-for over [0, n).
//
// Purpose:
//   - Start exactly `threads` goroutines; never spawn more during the loop.
//   - Hand out whole iterations according to the resolved Policy.
//   - Run Iter and Finalize for one iteration on the same worker, back to back.
//
// Determinism:
//   - Static assignment is a pure function of (n, threads, chunk).
//   - Dynamic and guided assignment depend on timing; each index is still
//     visited exactly once.

package schedule

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Body is the per-iteration work of a parallel loop with worker-private
// state S (typically a scratch buffer).
type Body[S any] struct {
	// Init builds the private state of one worker. It is called once per
	// worker before its first iteration. Nil means the zero S.
	Init func(worker int) S

	// Iter computes iteration i using the worker's state. Required.
	Iter func(i int, s S) error

	// Finalize runs right after Iter(i, s) succeeds, on the same worker.
	// It is the place to publish the iteration's result into shared state.
	// Optional.
	Finalize func(i int, s S) error
}

// Stats describes how a completed Run distributed its iterations.
type Stats struct {
	Policy Policy // resolved policy that was executed
	Rows   []int  // iterations executed per worker
	Claims []int  // chunks claimed per worker
}

// claimer hands out half-open ranges [lo, hi) of iterations to a worker.
type claimer interface {
	next(worker int) (lo, hi int, ok bool)
}

// Run executes body for every i in [0, n) on a pool of threads workers.
// Implementation:
//   - Stage 1: validate threads>0, n>=0, Iter non-nil; resolve p (a Runtime
//     policy reaching Run resolves with an empty setting, i.e. static).
//   - Stage 2: start the pool; each worker loops claim → Iter → Finalize.
//   - Stage 3: wait for every worker; return the first error seen.
//
// Behavior highlights:
//   - After the first error, workers stop claiming new work; iterations already
//     started still complete.
//   - n == 0 starts no work and returns empty Stats.
//
// Errors:
//   - ErrBadThreads, ErrBadRange, ErrNilBody, ErrUnknownSchedule, ErrBadChunk,
//     or the first error returned by Iter/Finalize.
//
// Complexity:
//   - Time O(n/threads) per worker plus O(n/chunk) cursor operations.
func Run[S any](n, threads int, p Policy, body Body[S]) (Stats, error) {
	if threads <= 0 {
		return Stats{}, fmt.Errorf("Run: threads=%d: %w", threads, ErrBadThreads)
	}
	if n < 0 {
		return Stats{}, fmt.Errorf("Run: n=%d: %w", n, ErrBadRange)
	}
	if body.Iter == nil {
		return Stats{}, fmt.Errorf("Run: %w", ErrNilBody)
	}
	resolved, err := Resolve(p, "")
	if err != nil {
		return Stats{}, fmt.Errorf("Run: %w", err)
	}

	stats := Stats{
		Policy: resolved,
		Rows:   make([]int, threads),
		Claims: make([]int, threads),
	}
	if n == 0 {
		return stats, nil
	}
	c := newClaimer(n, threads, resolved)

	// ctx is cancelled by the first failing worker; the others stop claiming.
	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < threads; w++ {
		worker := w
		g.Go(func() error {
			var state S
			if body.Init != nil {
				state = body.Init(worker)
			}
			for ctx.Err() == nil {
				lo, hi, ok := c.next(worker)
				if !ok {
					return nil
				}
				stats.Claims[worker]++ // slot owned by this worker only
				for i := lo; i < hi; i++ {
					if err := body.Iter(i, state); err != nil {
						return fmt.Errorf("Run: iteration %d: %w", i, err)
					}
					if body.Finalize != nil {
						if err := body.Finalize(i, state); err != nil {
							return fmt.Errorf("Run: finalize %d: %w", i, err)
						}
					}
					stats.Rows[worker]++
				}
			}

			return nil
		})
	}

	return stats, g.Wait()
}

// Plan returns the iterations each worker executes under a static policy.
// Dynamic and guided policies (including what Auto and Runtime resolve to)
// return ErrNotDeterministic.
func Plan(n, threads int, p Policy) ([][]int, error) {
	if threads <= 0 {
		return nil, fmt.Errorf("Plan: threads=%d: %w", threads, ErrBadThreads)
	}
	if n < 0 {
		return nil, fmt.Errorf("Plan: n=%d: %w", n, ErrBadRange)
	}
	resolved, err := Resolve(p, "")
	if err != nil {
		return nil, fmt.Errorf("Plan: %w", err)
	}
	if resolved.Kind != Static {
		return nil, fmt.Errorf("Plan: %s: %w", resolved, ErrNotDeterministic)
	}

	plan := make([][]int, threads)
	if n == 0 {
		return plan, nil
	}
	c := newClaimer(n, threads, resolved)
	for w := 0; w < threads; w++ {
		for {
			lo, hi, ok := c.next(w)
			if !ok {
				break
			}
			for i := lo; i < hi; i++ {
				plan[w] = append(plan[w], i)
			}
		}
	}

	return plan, nil
}

// newClaimer builds the claimer for an already resolved policy (n > 0).
// A chunk larger than n is clamped to n, so no cursor arithmetic can overflow.
func newClaimer(n, threads int, p Policy) claimer {
	chunk := min(p.Chunk, n)
	switch p.Kind {
	case Dynamic:
		if chunk == 0 {
			chunk = 1
		}
		return &dynamicClaimer{n: int64(n), chunk: int64(chunk)}
	case Guided:
		if chunk == 0 {
			chunk = 1
		}
		return &guidedClaimer{n: int64(n), threads: int64(threads), minChunk: int64(chunk)}
	default:
		return newStaticClaimer(n, threads, chunk)
	}
}

// staticClaimer assigns blocks up front. With chunk == 0 every worker gets one
// contiguous block of ceil(n/threads) rows; otherwise worker w gets blocks
// w, w+threads, w+2*threads, ... of chunk rows each.
type staticClaimer struct {
	n, threads, chunk int
	blocks            int   // ceil(n/chunk)
	round             []int // per-worker block counter, touched only by its owner
}

func newStaticClaimer(n, threads, chunk int) *staticClaimer {
	if chunk == 0 {
		chunk = n/threads + min(n%threads, 1) // ceil(n/threads) without n+threads overflow
	}

	return &staticClaimer{
		n:       n,
		threads: threads,
		chunk:   chunk,
		blocks:  n/chunk + min(n%chunk, 1),
		round:   make([]int, threads),
	}
}

func (c *staticClaimer) next(worker int) (int, int, bool) {
	// round < blocks/threads+1 here, so the products below stay within [0, 2n).
	if c.round[worker] >= (c.blocks-worker+c.threads-1)/c.threads {
		return 0, 0, false
	}
	block := c.round[worker]*c.threads + worker
	c.round[worker]++
	lo := block * c.chunk

	return lo, min(lo+c.chunk, c.n), true
}

// dynamicClaimer hands out fixed-size chunks from a shared atomic cursor.
type dynamicClaimer struct {
	n, chunk int64
	cursor   atomic.Int64
}

func (c *dynamicClaimer) next(int) (int, int, bool) {
	hi := c.cursor.Add(c.chunk)
	lo := hi - c.chunk
	if lo >= c.n {
		return 0, 0, false
	}

	return int(lo), int(min(hi, c.n)), true
}

// guidedClaimer hands out ceil(remaining/threads) rows per claim, never fewer
// than minChunk, so chunk sizes shrink geometrically as the loop drains.
type guidedClaimer struct {
	n, threads, minChunk int64
	cursor               atomic.Int64
}

func (c *guidedClaimer) next(int) (int, int, bool) {
	for {
		lo := c.cursor.Load()
		if lo >= c.n {
			return 0, 0, false
		}
		size := (c.n - lo + c.threads - 1) / c.threads
		if size < c.minChunk {
			size = c.minChunk
		}
		hi := lo + size
		if hi > c.n {
			hi = c.n
		}
		if c.cursor.CompareAndSwap(lo, hi) {
			return int(lo), int(hi), true
		}
	}
}
