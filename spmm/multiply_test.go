// Package spmm_test verifies product correctness and schedule/thread invariance.
package spmm_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/spmmbench/csr"
	"github.com/katalvlaran/spmmbench/matrix"
	"github.com/katalvlaran/spmmbench/schedule"
	"github.com/katalvlaran/spmmbench/spmm"
	"github.com/stretchr/testify/require"
)

// TestMultiplyFixture checks the 3×3 fixture against an independent dense product.
func TestMultiplyFixture(t *testing.T) {
	l, err := matrix.FromRows([][]int64{{0, 2, 0}, {0, 0, 0}, {1, 0, 3}})
	require.NoError(t, err)
	r, err := matrix.FromRows([][]int64{{1, 0, 0}, {0, 0, 2}, {0, 4, 0}})
	require.NoError(t, err)

	res, err := spmm.Multiply(mustCSR(t, l), mustCSR(t, r))
	require.NoError(t, err)

	want := referenceProduct(t, l, r)
	require.Truef(t, want.Equal(res.Product), "got\n%swant\n%s", res.Product, want)
	require.Equal(t, "[0, 0, 4]\n[0, 0, 0]\n[1, 12, 0]\n", res.Product.String())
	require.Equal(t, 1, res.Threads)
	require.Equal(t, schedule.Policy{Kind: schedule.Static}, res.Policy)
	require.GreaterOrEqual(t, res.Seconds(), 0.0)
}

// TestMultiplyMatchesReference covers random sparse operands of several sizes.
func TestMultiplyMatchesReference(t *testing.T) {
	for _, tc := range []struct {
		n int
		p float64
	}{
		{1, 1.0}, {2, 0.5}, {5, 0.3}, {17, 0.1}, {64, 0.05}, {100, 0.02},
	} {
		t.Run(fmt.Sprintf("n=%d/p=%g", tc.n, tc.p), func(t *testing.T) {
			l := randomDense(t, tc.n, tc.p, int64(tc.n)+1)
			r := randomDense(t, tc.n, tc.p, int64(tc.n)+2)

			res, err := spmm.Multiply(mustCSR(t, l), mustCSR(t, r), spmm.WithThreads(3))
			require.NoError(t, err)
			require.True(t, referenceProduct(t, l, r).Equal(res.Product))
		})
	}
}

// TestScheduleAndThreadInvariance checks identical products for every policy
// and thread count 1, 2, 4, 8.
func TestScheduleAndThreadInvariance(t *testing.T) {
	const n = 120
	l := mustCSR(t, randomDense(t, n, 0.05, 11))
	r := mustCSR(t, randomDense(t, n, 0.05, 12))

	baseline, err := spmm.Multiply(l, r)
	require.NoError(t, err)

	for _, kind := range schedule.Kinds() {
		for _, threads := range []int{1, 2, 4, 8} {
			res, err := spmm.Multiply(l, r,
				spmm.WithSchedule(kind),
				spmm.WithThreads(threads),
				spmm.WithRuntimeSetting("dynamic,2"),
			)
			require.NoError(t, err)
			require.Truef(t, baseline.Product.Equal(res.Product), "%s threads=%d", kind, threads)

			total := 0
			for _, rows := range res.Rows {
				total += rows
			}
			require.Equal(t, n, total)
		}
	}
}

// TestRuntimeResolution checks which policy a runtime request actually executes.
func TestRuntimeResolution(t *testing.T) {
	m := mustCSR(t, randomDense(t, 10, 0.3, 5))

	res, err := spmm.Multiply(m, m,
		spmm.WithSchedule(schedule.Runtime),
		spmm.WithRuntimeSetting("guided,4"),
		spmm.WithThreads(2))
	require.NoError(t, err)
	require.Equal(t, schedule.Policy{Kind: schedule.Runtime}, res.Requested)
	require.Equal(t, schedule.Policy{Kind: schedule.Guided, Chunk: 4}, res.Policy)

	res, err = spmm.Multiply(m, m, spmm.WithSchedule(schedule.Auto))
	require.NoError(t, err)
	require.Equal(t, schedule.Guided, res.Policy.Kind)
}

// TestMultiplyHugeChunk checks that an oversized chunk still computes the
// exact product.
func TestMultiplyHugeChunk(t *testing.T) {
	d := randomDense(t, 30, 0.2, 9)
	m := mustCSR(t, d)
	want := referenceProduct(t, d, d)

	for _, p := range []schedule.Policy{
		{Kind: schedule.Static, Chunk: math.MaxInt},
		{Kind: schedule.Dynamic, Chunk: math.MaxInt},
	} {
		res, err := spmm.Multiply(m, m, spmm.WithThreads(4), spmm.WithPolicy(p))
		require.NoError(t, err, "%s", p)
		require.True(t, want.Equal(res.Product), "%s", p)
	}

	res, err := spmm.Multiply(m, m, spmm.WithThreads(5),
		spmm.WithSchedule(schedule.Runtime),
		spmm.WithRuntimeSetting("static,4611686018427387904"))
	require.NoError(t, err)
	require.True(t, want.Equal(res.Product))
}

// TestDegenerateRows checks that zero rows yield zero product rows.
func TestDegenerateRows(t *testing.T) {
	l, err := matrix.FromRows([][]int64{{3, 1}, {0, 0}})
	require.NoError(t, err)
	r, err := matrix.FromRows([][]int64{{0, 0}, {5, 7}})
	require.NoError(t, err)

	lc := mustCSR(t, l)
	zero, err := lc.IsZeroRow(1)
	require.NoError(t, err)
	require.True(t, zero)
	require.Equal(t, 2, lc.RowLength(1))

	res, err := spmm.Multiply(lc, mustCSR(t, r), spmm.WithThreads(2))
	require.NoError(t, err)
	require.Equal(t, "[5, 7]\n[0, 0]\n", res.Product.String())

	// Zero right operand: every row of the product is zero.
	zr, err := matrix.NewSquare(2)
	require.NoError(t, err)
	res, err = spmm.Multiply(lc, mustCSR(t, zr))
	require.NoError(t, err)
	require.Zero(t, res.Product.NonZeros())
}

// TestMultiplyRejectsBadConfiguration checks validation happens before any work.
func TestMultiplyRejectsBadConfiguration(t *testing.T) {
	m := mustCSR(t, randomDense(t, 4, 0.5, 1))

	_, err := spmm.Multiply(m, m, spmm.WithSchedule(schedule.Kind(99)))
	require.ErrorIs(t, err, spmm.ErrOptionViolation)
	require.ErrorIs(t, err, schedule.ErrUnknownSchedule)

	_, err = spmm.Multiply(m, m, spmm.WithSchedule(schedule.Runtime), spmm.WithRuntimeSetting("lifo"))
	require.ErrorIs(t, err, schedule.ErrUnknownSchedule)

	_, err = spmm.Multiply(m, m, spmm.WithPolicy(schedule.Policy{Kind: schedule.Dynamic, Chunk: -2}))
	require.ErrorIs(t, err, schedule.ErrBadChunk)

	for _, threads := range []int{0, -4} {
		_, err = spmm.Multiply(m, m, spmm.WithThreads(threads))
		require.ErrorIs(t, err, spmm.ErrOptionViolation)
		require.ErrorIs(t, err, schedule.ErrBadThreads)
	}
}

// TestMultiplyRejectsBadOperands covers nil and mismatched operands.
func TestMultiplyRejectsBadOperands(t *testing.T) {
	a := mustCSR(t, randomDense(t, 3, 0.5, 1))
	b := mustCSR(t, randomDense(t, 4, 0.5, 2))

	_, err := spmm.Multiply(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = spmm.Multiply(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = spmm.Multiply(a, (*csr.Matrix)(nil))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
