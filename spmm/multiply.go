// SPDX-License-Identifier: MIT

package spmm

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/spmmbench/csr"
	"github.com/katalvlaran/spmmbench/matrix"
	"github.com/katalvlaran/spmmbench/schedule"
)

// Result is the outcome of one multiplication.
type Result struct {
	Product   *matrix.Dense   // dense N×N product, owned by the caller
	Elapsed   time.Duration   // wall-clock time of the parallel region
	Requested schedule.Policy // policy as passed in (may be runtime/auto)
	Policy    schedule.Policy // policy actually executed
	Threads   int             // worker count
	Rows      []int           // rows computed per worker
}

// Seconds returns Elapsed as fractional seconds, the scalar the run log records.
func (r *Result) Seconds() float64 { return r.Elapsed.Seconds() }

// Multiply computes the dense product of two compressed-row matrices.
// Implementation:
//   - Stage 1: validate options (threads, schedule) and operands (non-nil,
//     same size, well-formed rows so every stored column of l names a row
//     of r). Nothing runs when any check fails.
//   - Stage 2: allocate the zero product and start schedule.Run over the N
//     output rows. Each worker owns one N-long scratch buffer:
//     Iter accumulates row i into it, Finalize adds it into the product under
//     the shared lock and clears it for the next row.
//   - Stage 3: report the product with the elapsed time of Stage 2.
//
// Errors:
//   - ErrOptionViolation (wrapping schedule.ErrBadThreads,
//     schedule.ErrUnknownSchedule or schedule.ErrBadChunk).
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, csr.ErrMalformed.
//
// Determinism:
//   - Integer accumulation is exact, so the product is identical for every
//     policy and thread count; only timing differs.
//
// Complexity:
//   - Time O(Σ_i Σ_{k∈row i} len(R row k) + N²) total work, spread over the
//     workers; Space O(N² + threads·N).
func Multiply(l, r *csr.Matrix, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)

	// Stage 1: configuration first, then operands.
	if o.threads <= 0 {
		return nil, fmt.Errorf("spmm.Multiply: threads=%d: %w: %w",
			o.threads, ErrOptionViolation, schedule.ErrBadThreads)
	}
	policy, err := schedule.Resolve(o.policy, o.runtimeSetting)
	if err != nil {
		return nil, fmt.Errorf("spmm.Multiply: %w: %w", ErrOptionViolation, err)
	}
	if err = validateOperands(l, r); err != nil {
		return nil, fmt.Errorf("spmm.Multiply: %w", err)
	}

	// Stage 2: the parallel region.
	n := l.Size()
	product, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("spmm.Multiply: %w", err)
	}

	var mu sync.Mutex // guards product; held only for one row merge
	start := time.Now()
	stats, err := schedule.Run(n, o.threads, policy, schedule.Body[[]int64]{
		Init: func(int) []int64 { return make([]int64, n) },
		Iter: func(i int, acc []int64) error {
			return accumulateRow(l, r, i, acc)
		},
		Finalize: func(i int, acc []int64) error {
			mu.Lock()
			mergeErr := product.AddToRow(i, acc)
			mu.Unlock()
			clear(acc) // zeroed scratch for the worker's next row

			return mergeErr
		},
	})
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("spmm.Multiply: %w", err)
	}

	return &Result{
		Product:   product,
		Elapsed:   elapsed,
		Requested: o.policy,
		Policy:    stats.Policy,
		Threads:   o.threads,
		Rows:      stats.Rows,
	}, nil
}

// accumulateRow adds row i of l·r into acc.
// For each stored (k, L[i][k]) it walks r's row k and adds L[i][k]*R[k][j]
// into acc[j]. Sentinel entries hold value 0 and are skipped.
func accumulateRow(l, r *csr.Matrix, i int, acc []int64) error {
	lVals, lCols, err := l.Row(i)
	if err != nil {
		return err
	}

	var (
		rVals []int64
		rCols []int
	)
	for p, k := range lCols {
		lv := lVals[p]
		if lv == 0 {
			continue
		}
		rVals, rCols, err = r.Row(k)
		if err != nil {
			return err
		}
		for q, j := range rCols {
			acc[j] += lv * rVals[q]
		}
	}

	return nil
}

// validateOperands asserts what the row walk relies on: both operands exist,
// have the same size, and hold well-formed rows (columns in [0, N)), so every
// stored column of l is a valid row index of r.
func validateOperands(l, r *csr.Matrix) error {
	if l == nil || r == nil {
		return matrix.ErrNilMatrix
	}
	if l.Size() != r.Size() {
		return fmt.Errorf("left size %d, right size %d: %w",
			l.Size(), r.Size(), matrix.ErrDimensionMismatch)
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	return nil
}
