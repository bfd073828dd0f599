// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major int64 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxAddToRow = "AddToRow" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stage 1: format "Dense.<method>(row,col): %w".
// Stage 2: return wrapped error; the sentinel is preserved via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of signed integers.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: reject shapes whose element count overflows int (ErrBadShape).
//   - Stage 3: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - A failed allocation is a fatal runtime error in Go; there is no partial
//     matrix to recover.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Guard the element count against int overflow before make().
	if rows > math.MaxInt/cols {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]int64, rows*cols), // make() zero-fills deterministically
	}, nil
}

// NewSquare is shorthand for NewDense(n, n).
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// FromRows builds a Dense from a literal row-major grid (deep copy).
// Implementation:
//   - Stage 1: reject empty grids and empty first rows (ErrBadShape).
//   - Stage 2: reject ragged rows (ErrDimensionMismatch).
//   - Stage 3: copy every row into the flat buffer.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, fmt.Errorf("FromRows: %w", err)
	}

	var i int
	for i = 0; i < len(rows); i++ { // stable row order
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w",
				i, len(rows[i]), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns the live slice backing row i (len == Cols()).
// Implementation:
//   - Stage 1: bounds-check i.
//   - Stage 2: reslice the flat buffer with a capped capacity so appends
//     cannot spill into row i+1.
//
// Notes:
//   - Writes through the slice mutate the matrix. Concurrent writers to the
//     same row must synchronize externally.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) ([]int64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// AddToRow adds src element-wise into row i: row[j] += src[j].
// Implementation:
//   - Stage 1: bounds-check i and require len(src) == Cols().
//   - Stage 2: single forward pass over the row.
//
// Errors:
//   - ErrOutOfRange, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Dense) AddToRow(i int, src []int64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxAddToRow, i, 0, ErrOutOfRange)
	}
	if len(src) != m.c {
		return denseErrorf(ctxAddToRow, i, len(src), ErrDimensionMismatch)
	}
	dst := m.data[i*m.c : (i+1)*m.c]
	for j, v := range src {
		dst[j] += v
	}

	return nil
}

// NonZeros counts the cells that hold a non-zero value.
// Complexity: O(r*c).
func (m *Dense) NonZeros() int {
	var count int
	for _, v := range m.data {
		if v != 0 {
			count++
		}
	}

	return count
}

// Equal reports whether o has the same shape and identical values.
// A nil argument is never equal to a non-nil receiver.
// Complexity: O(r*c).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if ValidateSameShape(m, o) != nil {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy (new buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]int64, len(m.data)) // allocate same length
	copy(cp, m.data)                 // deep copy

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows as lines with comma-separated values, for diagnostics.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(strconv.FormatInt(m.data[base+j], 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
