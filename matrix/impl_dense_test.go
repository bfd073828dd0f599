// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spmmbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewSquare(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseOverflow ensures element-count overflow is reported instead of allocating.
func TestNewDenseOverflow(t *testing.T) {
	const huge = int(^uint(0) >> 2) // large enough that huge*4 overflows int
	_, err := matrix.NewDense(huge, 8)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, -7))
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-7), val)
	require.Equal(t, 1, m.NonZeros())
}

// TestFromRows covers literal construction and ragged input.
func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	_, err = matrix.FromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestRowIsCapped checks that Row exposes live storage but cannot grow into the next row.
func TestRowIsCapped(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(0)
	require.NoError(t, err)
	row[1] = 9           // live write
	_ = append(row, 100) // must reallocate, not overwrite row 1
	v, _ := m.At(0, 1)
	require.Equal(t, int64(9), v)
	v, _ = m.At(1, 0)
	require.Equal(t, int64(3), v)
}

// TestAddToRow validates element-wise accumulation and its guards.
func TestAddToRow(t *testing.T) {
	m, err := matrix.NewSquare(3)
	require.NoError(t, err)

	require.NoError(t, m.AddToRow(1, []int64{1, 2, 3}))
	require.NoError(t, m.AddToRow(1, []int64{1, 0, -3}))
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 2, 0}, row)

	require.ErrorIs(t, m.AddToRow(3, []int64{0, 0, 0}), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddToRow(0, []int64{0}), matrix.ErrDimensionMismatch)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 0, 3)) // modify the clone only
	require.False(t, m.Equal(clone))

	orig, _ := m.At(0, 0)
	require.Equal(t, int64(1), orig)
}

// TestEqualShapes checks that shape differences and nils compare unequal.
func TestEqualShapes(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(3, 2)
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	wide, _ := matrix.NewDense(2, 4) // same rows, one extra column
	require.False(t, a.Equal(wide))
	require.False(t, wide.Equal(a))

	same, _ := matrix.NewDense(2, 3)
	require.True(t, a.Equal(same))
	require.NoError(t, same.Set(1, 2, 7))
	require.False(t, a.Equal(same))

	var nilDense *matrix.Dense
	require.True(t, nilDense.Equal(nil))
}
