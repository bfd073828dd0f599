// SPDX-License-Identifier: MIT

// Package generator samples random sparse integer matrices.
//
// Every cell of a size×size grid is an independent Bernoulli trial with
// probability p; a successful trial stores a value drawn from [1, 10].
// Trials run in row-major order, so a fixed seed always reproduces the same
// matrix. Pair derives two independent streams from one seed for the left and
// right operands of a benchmark run.
package generator
