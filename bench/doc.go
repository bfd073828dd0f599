// SPDX-License-Identifier: MIT

// Package bench drives the sparse multiplication benchmark.
//
// A Runner generates two random operands, converts them to compressed rows,
// multiplies them under one scheduling policy and thread count, converts the
// product back to compressed rows and persists it with package store. Sweep
// repeats the multiplication for every schedule and every configured thread
// count over the same operands and prints a summary table.
//
// Errors fall into three classes that ExitCode maps to process exit codes:
// configuration (ErrConfig, 2), computation (1) and persistence
// (store.ErrNotPersisted, 3).
package bench
