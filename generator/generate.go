// SPDX-License-Identifier: MIT
// Package: generator
//
// generate.go - random sparse matrix sampling.
//
// Contract:
//   - size ≥ 1 (else ErrTooSmall).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Trial order is row-major: for each i asc, j asc.
//
// Complexity:
//   - Time: O(size²) Bernoulli trials.
//   - Space: O(size²) for the dense result.

package generator

import (
	"fmt"

	"github.com/katalvlaran/spmmbench/matrix"
)

// File-local constants (stable method tags and domains).
const (
	methodGenerate = "Generate"
	methodPair     = "Pair"
	minSize        = 1
	probMin        = 0.0
	probMax        = 1.0

	// Stream identifiers for Pair; distinct so the operands are independent.
	streamLeft  uint64 = 1
	streamRight uint64 = 2
)

// Generate samples a size×size matrix where every cell is non-zero with
// probability p, holding a value from the configured range (default 1..10).
func Generate(size int, p float64, opts ...Option) (*matrix.Dense, error) {
	if err := validate(methodGenerate, size, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)

	d, err := matrix.NewSquare(size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	var (
		i, j int
		row  []int64
	)
	for i = 0; i < size; i++ { // stable outer loop: i asc
		row, _ = d.Row(i)          // i < size: cannot fail
		for j = 0; j < size; j++ { // inner loop: j asc
			// A trial is always drawn, so the stream position does not depend on p.
			if cfg.rng.Float64() < p {
				row[j] = cfg.valueFn(cfg.rng)
			}
		}
	}

	return d, nil
}

// Pair samples the left and right operands of one run from two independent
// streams derived from seed (0 selects the default seed).
func Pair(size int, p float64, seed int64, opts ...Option) (left, right *matrix.Dense, err error) {
	if err = validate(methodPair, size, p); err != nil {
		return nil, nil, err
	}

	leftOpts := append(append([]Option(nil), opts...), WithRand(deriveRNG(seed, streamLeft)))
	if left, err = Generate(size, p, leftOpts...); err != nil {
		return nil, nil, fmt.Errorf("%s: left: %w", methodPair, err)
	}
	rightOpts := append(append([]Option(nil), opts...), WithRand(deriveRNG(seed, streamRight)))
	if right, err = Generate(size, p, rightOpts...); err != nil {
		return nil, nil, fmt.Errorf("%s: right: %w", methodPair, err)
	}

	return left, right, nil
}

// validate checks size and probability domains.
func validate(method string, size int, p float64) error {
	if size < minSize {
		return fmt.Errorf("%s: size=%d < min=%d: %w", method, size, minSize, ErrTooSmall)
	}
	// The negated form also rejects NaN.
	if !(p >= probMin && p <= probMax) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}
