package spmm_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spmmbench/csr"
	"github.com/katalvlaran/spmmbench/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomDense fills an n×n matrix with values in [1,10] at density p.
func randomDense(tb testing.TB, n int, p float64, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := matrix.NewSquare(n)
	require.NoError(tb, err)
	for i := 0; i < n; i++ {
		row, _ := d.Row(i)
		for j := range row {
			if rng.Float64() < p {
				row[j] = int64(rng.Intn(10) + 1)
			}
		}
	}

	return d
}

// mustCSR converts d or fails the test.
func mustCSR(tb testing.TB, d *matrix.Dense) *csr.Matrix {
	tb.Helper()
	m, err := csr.FromDense(d)
	require.NoError(tb, err)

	return m
}

// toGonum copies an integer matrix into a gonum float64 matrix.
func toGonum(d *matrix.Dense) *mat.Dense {
	r, c := d.Shape()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		row, _ := d.Row(i)
		for _, v := range row {
			data = append(data, float64(v))
		}
	}

	return mat.NewDense(r, c, data)
}

// referenceProduct computes a·b with gonum's dense kernel, independently of
// the sparse path, and converts it back to integers. Test values stay far
// below 2^53, so the float64 round trip is exact.
func referenceProduct(tb testing.TB, a, b *matrix.Dense) *matrix.Dense {
	tb.Helper()
	var z mat.Dense
	z.Mul(toGonum(a), toGonum(b))

	r, c := z.Dims()
	out, err := matrix.NewDense(r, c)
	require.NoError(tb, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, out.Set(i, j, int64(z.At(i, j))))
		}
	}

	return out
}
