// SPDX-License-Identifier: MIT

// Package matrix provides the dense integer grid used at the edges of the
// sparse multiplication pipeline.
//
// What & Why:
//
//	Dense is a square (or rectangular) grid of int64 values stored in a single
//	row-major buffer. It is produced by the random generator, consumed by the
//	compressed-row conversion (package csr) and populated by the parallel
//	multiplier (package spmm). No row is ever aliased between two matrices:
//	each Dense owns exactly one buffer.
//
// Errors:
//
//	Every user-triggered failure is reported with one of the sentinels in
//	errors.go, wrapped with method context; branch with errors.Is.
//
// Complexity:
//
//	NewDense O(r*c); At/Set/Row O(1); Clone/Equal/String O(r*c).
package matrix
