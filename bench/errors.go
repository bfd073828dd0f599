// SPDX-License-Identifier: MIT
// Package bench: sentinel error set and exit-code mapping.

package bench

import (
	"errors"

	"github.com/katalvlaran/spmmbench/store"
)

// ErrConfig wraps every configuration error detected before work starts.
var ErrConfig = errors.New("bench: invalid configuration")

// Process exit codes.
const (
	ExitOK           = 0
	ExitCompute      = 1
	ExitConfig       = 2
	ExitNotPersisted = 3
)

// ExitCode maps an error returned by Run or Sweep to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrConfig):
		return ExitConfig
	case errors.Is(err, store.ErrNotPersisted):
		return ExitNotPersisted
	default:
		return ExitCompute
	}
}
