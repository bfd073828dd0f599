// SPDX-License-Identifier: MIT
// Package: generator
//
// errors.go: sentinel errors for the generator package.
// Callers MUST use errors.Is(err, ErrX) to branch on semantics.

package generator

import "errors"

// ErrTooSmall indicates a matrix size below 1.
var ErrTooSmall = errors.New("generator: size must be >= 1")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("generator: probability out of range")
