// SPDX-License-Identifier: MIT
// Package store: sentinel error set.

package store

import "errors"

var (
	// ErrNotPersisted wraps every failure to create, write or close an
	// output file. The computation itself succeeded.
	ErrNotPersisted = errors.New("store: run not persisted")

	// ErrBadToken reports a token in a compressed-row file that is not a
	// base-10 integer.
	ErrBadToken = errors.New("store: malformed integer token")

	// ErrBadLog reports a run log that lacks a required key or holds an
	// unparsable value.
	ErrBadLog = errors.New("store: malformed run log")
)
