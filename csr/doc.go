// SPDX-License-Identifier: MIT

// Package csr implements the compressed-row representation of a square
// integer matrix.
//
// For a matrix of size N every row i stores an ordered sequence of non-zero
// values and a parallel sequence of their column indices, in increasing
// column order. Storage is one contiguous values buffer, one contiguous
// columns buffer and N+1 row offsets; RowLength(i) is the distance between
// two consecutive offsets.
//
// Sentinel rows:
//
//	A row without any non-zero entry is not stored empty. It is materialized
//	as two (value=0, column=0) entries, so RowLength(i) is never 0. The
//	phantom zero contributes nothing to a product, but it means a zero length
//	can never be used as an "empty row" test: use IsZeroRow instead.
//
// A Matrix is immutable after construction. Row returns views into the
// shared buffers; callers must not write through them.
//
// Complexity:
//
//	FromDense O(N²) time, O(nnz+N) space; Row/RowLength O(1); ToDense O(N²).
package csr
