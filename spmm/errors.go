// SPDX-License-Identifier: MIT
// Package spmm: sentinel error set.
//
// Operand problems are reported with the matrix sentinels
// (matrix.ErrNilMatrix, matrix.ErrDimensionMismatch); configuration problems
// with ErrOptionViolation wrapping the schedule sentinel that caused them.

package spmm

import "errors"

// ErrOptionViolation indicates an invalid thread count or schedule passed via
// options. It is always detected before the parallel region starts.
var ErrOptionViolation = errors.New("spmm: invalid option value")
