// SPDX-License-Identifier: MIT

// Package csr - compressed rows: construction, access, reconstruction.
//
// Purpose:
//   - Convert a square matrix.Dense into per-row (value, column) sequences.
//   - Materialize all-zero rows as the (0,0),(0,0) sentinel pair.
//   - Offer O(1) row views for the multiplier's hot loop.

package csr

import (
	"fmt"

	"github.com/katalvlaran/spmmbench/matrix"
)

// sentinelLen is the stored length of a row that has no non-zero entry.
const sentinelLen = 2

// Matrix is the compressed-row form of an N×N integer matrix.
//   - offsets has N+1 entries; row i occupies [offsets[i], offsets[i+1]).
//   - values and columns are parallel buffers of equal length.
type Matrix struct {
	n       int     // matrix size N (>0)
	offsets []int   // row starts, len == n+1, offsets[0] == 0
	values  []int64 // stored values, row after row
	columns []int   // stored column indices, parallel to values
}

// FromDense converts a square Dense into compressed rows.
// Implementation:
//   - Stage 1: validate d is non-nil and square.
//   - Stage 2: count non-zeros per row to size the buffers exactly
//     (an all-zero row counts as sentinelLen).
//   - Stage 3: rescan in column order and fill values/columns; sentinel rows
//     keep their zero-initialized (0,0) pair.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (from Stage 1).
//
// Determinism:
//   - Row-major scan; identical input gives identical buffers.
//
// Complexity:
//   - Time O(N²), Space O(nnz + N).
func FromDense(d *matrix.Dense) (*Matrix, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, fmt.Errorf("csr.FromDense: %w", err)
	}
	n := d.Rows()

	// Stage 2: exact sizing.
	offsets := make([]int, n+1)
	var (
		i, count int
		row      []int64
		v        int64
	)
	for i = 0; i < n; i++ {
		row, _ = d.Row(i) // i < n: cannot fail
		count = 0
		for _, v = range row {
			if v != 0 {
				count++
			}
		}
		if count == 0 {
			count = sentinelLen
		}
		offsets[i+1] = offsets[i] + count
	}

	m := &Matrix{
		n:       n,
		offsets: offsets,
		values:  make([]int64, offsets[n]),
		columns: make([]int, offsets[n]),
	}

	// Stage 3: fill in ascending column order.
	var j, pos int
	for i = 0; i < n; i++ {
		row, _ = d.Row(i)
		pos = offsets[i]
		for j, v = range row {
			if v != 0 {
				m.values[pos] = v
				m.columns[pos] = j
				pos++
			}
		}
		// pos == offsets[i] here means a sentinel row: its two slots are
		// already (0,0) from make().
	}

	return m, nil
}

// FromRows assembles a Matrix from per-row value and column sequences, as
// parsed from the text files written by package store.
// Implementation:
//   - Stage 1: require len(values) == len(columns) > 0.
//   - Stage 2: validate every row (see Validate) and copy it into the buffers.
//
// Errors:
//   - ErrMalformed with the offending row index.
//
// Complexity:
//   - Time O(nnz + N), Space O(nnz + N).
func FromRows(values [][]int64, columns [][]int) (*Matrix, error) {
	if len(values) == 0 || len(values) != len(columns) {
		return nil, fmt.Errorf("csr.FromRows: %d value rows, %d column rows: %w",
			len(values), len(columns), ErrMalformed)
	}
	n := len(values)

	offsets := make([]int, n+1)
	var i int
	for i = 0; i < n; i++ {
		if err := checkRow(n, values[i], columns[i]); err != nil {
			return nil, fmt.Errorf("csr.FromRows: row %d: %w", i, err)
		}
		offsets[i+1] = offsets[i] + len(values[i])
	}

	m := &Matrix{
		n:       n,
		offsets: offsets,
		values:  make([]int64, 0, offsets[n]),
		columns: make([]int, 0, offsets[n]),
	}
	for i = 0; i < n; i++ {
		m.values = append(m.values, values[i]...)
		m.columns = append(m.columns, columns[i]...)
	}

	return m, nil
}

// checkRow validates a single row against the compressed-row invariants.
// A row is either the sentinel pair or a non-empty run of non-zero values with
// strictly increasing columns in [0, n).
func checkRow(n int, vals []int64, cols []int) error {
	if len(vals) != len(cols) {
		return fmt.Errorf("%d values, %d columns: %w", len(vals), len(cols), ErrMalformed)
	}
	if len(vals) == 0 {
		return fmt.Errorf("empty row: %w", ErrMalformed)
	}
	if isSentinel(vals, cols) {
		return nil
	}

	prev := -1
	for k, c := range cols {
		if c < 0 || c >= n {
			return fmt.Errorf("column %d out of [0,%d): %w", c, n, ErrMalformed)
		}
		if c <= prev {
			return fmt.Errorf("columns not increasing at entry %d: %w", k, ErrMalformed)
		}
		if vals[k] == 0 {
			return fmt.Errorf("stored zero at column %d: %w", c, ErrMalformed)
		}
		prev = c
	}

	return nil
}

// isSentinel reports whether a row is exactly the (0,0),(0,0) placeholder.
func isSentinel(vals []int64, cols []int) bool {
	return len(vals) == sentinelLen &&
		vals[0] == 0 && vals[1] == 0 &&
		cols[0] == 0 && cols[1] == 0
}

// Size returns N. Complexity: O(1).
func (m *Matrix) Size() int { return m.n }

// RowLength returns the number of stored entries of row i (sentinels
// included), or 0 when i is out of range. A valid row never has length 0.
// Complexity: O(1).
func (m *Matrix) RowLength(i int) int {
	if i < 0 || i >= m.n {
		return 0
	}

	return m.offsets[i+1] - m.offsets[i]
}

// Row returns read-only views of row i's values and column indices.
// Both slices have RowLength(i) elements and capped capacity.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) Row(i int) ([]int64, []int, error) {
	if i < 0 || i >= m.n {
		return nil, nil, fmt.Errorf("csr.Row(%d): %w", i, ErrOutOfRange)
	}
	lo, hi := m.offsets[i], m.offsets[i+1]

	return m.values[lo:hi:hi], m.columns[lo:hi:hi], nil
}

// IsZeroRow reports whether every stored value of row i is zero, which is the
// only correct "empty row" test under the sentinel convention.
// Errors: ErrOutOfRange.
func (m *Matrix) IsZeroRow(i int) (bool, error) {
	vals, _, err := m.Row(i)
	if err != nil {
		return false, err
	}
	for _, v := range vals {
		if v != 0 {
			return false, nil
		}
	}

	return true, nil
}

// Stored returns the total number of stored entries, sentinels included.
func (m *Matrix) Stored() int { return len(m.values) }

// NonZeros returns the number of stored entries with a non-zero value.
// Complexity: O(nnz).
func (m *Matrix) NonZeros() int {
	var count int
	for _, v := range m.values {
		if v != 0 {
			count++
		}
	}

	return count
}

// ToDense reconstructs the N×N dense matrix. Sentinel rows become zero rows.
// Complexity: Time O(N² + nnz), Space O(N²).
func (m *Matrix) ToDense() (*matrix.Dense, error) {
	d, err := matrix.NewSquare(m.n)
	if err != nil {
		return nil, fmt.Errorf("csr.ToDense: %w", err)
	}

	var (
		i, k int
		dst  []int64
	)
	for i = 0; i < m.n; i++ {
		dst, _ = d.Row(i) // i < n: cannot fail
		for k = m.offsets[i]; k < m.offsets[i+1]; k++ {
			if m.values[k] != 0 {
				dst[m.columns[k]] = m.values[k]
			}
		}
	}

	return d, nil
}

// Validate checks the structural invariants of every row.
// Errors: ErrMalformed.
// Complexity: O(nnz + N).
func (m *Matrix) Validate() error {
	if m == nil {
		return fmt.Errorf("csr.Validate: %w", matrix.ErrNilMatrix)
	}
	if m.n <= 0 || len(m.offsets) != m.n+1 || len(m.values) != len(m.columns) ||
		m.offsets[m.n] != len(m.values) {
		return fmt.Errorf("csr.Validate: buffer layout: %w", ErrMalformed)
	}

	var i int
	for i = 0; i < m.n; i++ {
		lo, hi := m.offsets[i], m.offsets[i+1]
		if lo > hi || hi > len(m.values) {
			return fmt.Errorf("csr.Validate: row %d: offsets decrease: %w", i, ErrMalformed)
		}
		if err := checkRow(m.n, m.values[lo:hi], m.columns[lo:hi]); err != nil {
			return fmt.Errorf("csr.Validate: row %d: %w", i, err)
		}
	}

	return nil
}

// Equal reports whether o stores exactly the same rows.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n || len(m.values) != len(o.values) {
		return false
	}
	for i := range m.offsets {
		if m.offsets[i] != o.offsets[i] {
			return false
		}
	}
	for k := range m.values {
		if m.values[k] != o.values[k] || m.columns[k] != o.columns[k] {
			return false
		}
	}

	return true
}
