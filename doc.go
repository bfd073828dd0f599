// Package spmmbench benchmarks parallel multiplication of random sparse
// integer matrices stored in compressed-row form.
//
// What is inside?
//
//	A small, dependency-light toolkit that brings together:
//		• Dense storage: flat row-major int64 matrices with checked access
//		• Compressed rows: per-row (value, column) runs with a (0,0) sentinel for empty rows
//		• Scheduling: static, dynamic, guided, runtime and auto row distribution
//		• Multiplication: row-driven sparse × sparse → dense on a fixed worker pool
//		• Generation: reproducible Bernoulli sparsity with uniform values in [1,10]
//		• Persistence: plain-text values/columns files plus a per-run timing log
//
// Packages:
//
//	matrix/    Dense matrix, validators, sentinel errors
//	csr/       compressed-row matrix: FromDense, ToDense, row views
//	schedule/  policies, runtime-setting parsing, structured parallel-for
//	spmm/      Multiply with functional options (threads, policy)
//	generator/ random sparse operands, seeded and split into streams
//	store/     text files, run logs, <root>/<size>/<schedule> layout
//	config/    TOML + flags configuration and validation
//	bench/     single runs, sweeps, summary table, exit codes
//
// Quick start:
//
//	go run ./cmd/spmmbench -size 1000 -schedule guided -threads 8 -probability 0.02
//	go run ./cmd/spmmbench -sweep -sweep-threads 1,2,4,8
//
// For library use, see the Example functions of package spmm.
package spmmbench
