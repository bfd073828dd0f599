// SPDX-License-Identifier: MIT

// Package spmm: functional configuration for Multiply.
//
// Defaults:
//   - one worker, static schedule, empty runtime setting.
//
// Option constructors never panic: thread counts and schedules usually come
// straight from operator input, so they are validated by Multiply and
// reported as ErrOptionViolation before any work starts.

package spmm

import "github.com/katalvlaran/spmmbench/schedule"

// DefaultThreads is the worker count used when WithThreads is not given.
const DefaultThreads = 1

// Option mutates the multiplier configuration.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	threads        int             // > 0 after validation
	policy         schedule.Policy // requested, possibly Runtime/Auto
	runtimeSetting string          // consulted only when policy.Kind == Runtime
}

// WithThreads sets the number of worker goroutines (must be > 0).
func WithThreads(n int) Option {
	return func(o *options) { o.threads = n }
}

// WithPolicy sets the scheduling policy including its chunk size.
func WithPolicy(p schedule.Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithSchedule sets the scheduling kind with its default chunk size.
func WithSchedule(k schedule.Kind) Option {
	return func(o *options) { o.policy = schedule.Policy{Kind: k} }
}

// WithRuntimeSetting supplies the "kind[,chunk]" value a Runtime policy
// resolves to at call time.
func WithRuntimeSetting(setting string) Option {
	return func(o *options) { o.runtimeSetting = setting }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) options {
	o := options{
		threads: DefaultThreads,
		policy:  schedule.Policy{Kind: schedule.Static},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
