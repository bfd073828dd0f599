// SPDX-License-Identifier: MIT

// Package store persists benchmark runs as plain text.
//
// Compressed-row files hold one line per matrix row: the row's stored values
// (values file) or stored column indices (columns file), space separated, in
// storage order and including the (0,0) sentinel of all-zero rows. There is
// no length header; a reader counts tokens.
//
// A run log holds one run as key: value lines:
//
//	Size: 1000
//	Probability: 0.01
//	Threads: 4
//	Schedule: dynamic
//	Time taken: 0.012345 seconds
//
// Files are laid out as <root>/<size>/<schedule>/. Every I/O failure is
// wrapped with ErrNotPersisted so callers can tell "computed but not saved"
// from a failed computation.
package store
