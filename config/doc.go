// SPDX-License-Identifier: MIT

// Package config holds the benchmark driver configuration.
//
// A Config starts from Default, is optionally overlaid by a TOML file (Load)
// and then by command-line flags (Parse). Unknown TOML keys are an error, not
// a silent no-op, so a typo in a config file never runs the wrong benchmark.
//
// Example file:
//
//	size = 5000
//	schedule = "guided"
//	probability = 0.02
//	threads = 8
//	output_dir = "results"
//	sweep_threads = [1, 2, 4, 8]
//	sweep_sizes = [1000, 5000, 10000]
package config
