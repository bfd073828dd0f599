// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spmmbench/matrix"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, mustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", mustDense(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", mustDense(t, 2, 3), mustDense(t, 2, 3), nil},
		{"row mismatch", mustDense(t, 2, 3), mustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", mustDense(t, 2, 3), mustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    *matrix.Dense
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", mustDense(t, 1, 1), nil},
		{"3x3", mustDense(t, 3, 3), nil},
		{"2x3", mustDense(t, 2, 3), matrix.ErrNonSquare},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
