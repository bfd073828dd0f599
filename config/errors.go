// SPDX-License-Identifier: MIT
// Package config: sentinel error set.

package config

import "errors"

var (
	// ErrBadSize indicates a matrix size that is not positive.
	ErrBadSize = errors.New("config: size must be > 0")

	// ErrProbabilityNotAllowed indicates a probability outside the benchmark set.
	ErrProbabilityNotAllowed = errors.New("config: probability not allowed")

	// ErrBadThreads indicates a thread count (single or sweep) that is not positive.
	ErrBadThreads = errors.New("config: threads must be > 0")

	// ErrUndefinedField indicates a TOML key that Config does not define.
	ErrUndefinedField = errors.New("config: undefined field")
)
