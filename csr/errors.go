// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.

package csr

import "errors"

var (
	// ErrMalformed reports a compressed structure that violates the row
	// invariants: mismatched lengths, out-of-range or non-increasing columns,
	// or an empty row.
	ErrMalformed = errors.New("csr: malformed compressed rows")

	// ErrOutOfRange indicates a row index outside [0, Size()).
	ErrOutOfRange = errors.New("csr: row index out of range")
)
