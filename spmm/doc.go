// SPDX-License-Identifier: MIT

// Package spmm multiplies two compressed-row matrices in parallel.
//
// For every output row i the multiplier walks the stored entries (k, L[i][k])
// of the left operand's row i and, for each of them, every stored entry
// (j, R[k][j]) of the right operand's row k, accumulating L[i][k]*R[k][j] into
// a worker-private scratch buffer at column j. When row i is complete the
// worker takes the shared lock once, adds the N scratch values into row i of
// the dense product and releases it. The result is therefore
//
//	Z[i][j] = Σ_k L[i][k] · R[k][j]
//
// Rows are the unit of parallelism; how they are spread over the workers is
// decided by a schedule.Policy. The numeric result does not depend on the
// policy or on the thread count.
package spmm
