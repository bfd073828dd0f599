// SPDX-License-Identifier: MIT
// Package schedule: sentinel error set.

package schedule

import "errors"

var (
	// ErrUnknownSchedule is returned for a schedule name outside
	// static|dynamic|guided|runtime|auto.
	ErrUnknownSchedule = errors.New("schedule: unknown schedule name")

	// ErrBadChunk is returned for a negative or unparsable chunk size.
	ErrBadChunk = errors.New("schedule: chunk size must be a positive integer")

	// ErrBadThreads is returned when the worker count is not positive.
	ErrBadThreads = errors.New("schedule: thread count must be > 0")

	// ErrBadRange is returned for a negative iteration count.
	ErrBadRange = errors.New("schedule: iteration count must be >= 0")

	// ErrNotDeterministic is returned by Plan for policies whose assignment
	// depends on timing (dynamic, guided).
	ErrNotDeterministic = errors.New("schedule: assignment is decided at run time")
)

// ErrNilBody is returned by Run when Body.Iter is nil.
var ErrNilBody = errors.New("schedule: loop body has no Iter function")
