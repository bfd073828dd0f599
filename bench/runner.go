// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/xid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/spmmbench/config"
	"github.com/katalvlaran/spmmbench/csr"
	"github.com/katalvlaran/spmmbench/generator"
	"github.com/katalvlaran/spmmbench/schedule"
	"github.com/katalvlaran/spmmbench/spmm"
	"github.com/katalvlaran/spmmbench/store"
)

// Report describes one persisted (or attempted) multiplication.
type Report struct {
	RunID       xid.ID
	Size        int
	Probability float64
	Threads     int
	Schedule    string // requested schedule name, as used in file names
	Policy      string // policy actually executed, e.g. "guided,1"
	Seconds     float64
	NonZeros    int // non-zeros of the product
	Files       store.Files
	Persisted   bool
}

// Runner executes benchmark runs for one Config.
type Runner struct {
	Config config.Config
	Logger zerolog.Logger
	Out    io.Writer // summary output of Sweep; nil discards
}

// operands holds the compressed inputs shared by the runs of one invocation.
type operands struct {
	left, right *csr.Matrix
}

// Run performs a single multiplication with the configured schedule and
// thread count.
// Implementation:
//   - Stage 1: validate the configuration (ErrConfig on failure).
//   - Stage 2: generate and convert both operands.
//   - Stage 3: multiply, convert the product, persist it.
//
// Cancellation is honored between stages, never inside the multiplication.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	policy, err := r.validate()
	if err != nil {
		return Report{}, err
	}
	ops, err := r.operands(ctx, r.Config.Size)
	if err != nil {
		return Report{}, err
	}

	return r.multiply(ctx, ops, policy, r.Config.Threads)
}

// Sweep runs every size in Config.Sizes. For each size it generates one
// operand pair and multiplies it for every schedule in SweepOrder and every
// thread count in Config.SweepThreads. It then writes a summary table to Out. A persistence failure marks its report as not persisted and the sweep
// continues; the returned error then wraps store.ErrNotPersisted. Any other
// failure stops the sweep.
func (r *Runner) Sweep(ctx context.Context) ([]Report, error) {
	if _, err := r.validate(); err != nil {
		return nil, err
	}

	var (
		reports []Report
		unsaved []error
	)
	for _, size := range r.Config.Sizes() {
		ops, err := r.operands(ctx, size)
		if err != nil {
			return reports, err
		}
		for _, kind := range SweepOrder() {
			for _, threads := range r.Config.SweepThreads {
				rep, err := r.multiply(ctx, ops, schedule.Policy{Kind: kind}, threads)
				if err != nil && !errors.Is(err, store.ErrNotPersisted) {
					return reports, err
				}
				if err != nil {
					unsaved = append(unsaved, err)
				}
				reports = append(reports, rep)
			}
		}
	}

	if r.Out != nil {
		if err := WriteSummary(r.Out, reports); err != nil {
			r.Logger.Warn().Err(err).Msg("summary not written")
		}
	}

	return reports, errors.Join(unsaved...)
}

// SweepOrder is the schedule order of a sweep.
func SweepOrder() []schedule.Kind {
	return []schedule.Kind{schedule.Static, schedule.Dynamic, schedule.Guided, schedule.Auto, schedule.Runtime}
}

// validate checks the configuration and returns the requested policy.
func (r *Runner) validate() (schedule.Policy, error) {
	if err := r.Config.Validate(); err != nil {
		return schedule.Policy{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	policy, err := r.Config.Policy()
	if err != nil {
		return schedule.Policy{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return policy, nil
}

// operands generates both size×size inputs from the configured seed and
// compresses them.
func (r *Runner) operands(ctx context.Context, size int) (operands, error) {
	if err := ctx.Err(); err != nil {
		return operands{}, err
	}
	c := r.Config
	start := time.Now()
	ld, rd, err := generator.Pair(size, c.Probability, c.Seed)
	if err != nil {
		return operands{}, fmt.Errorf("bench: generate: %w", err)
	}
	l, err := csr.FromDense(ld)
	if err != nil {
		return operands{}, fmt.Errorf("bench: compress left: %w", err)
	}
	rr, err := csr.FromDense(rd)
	if err != nil {
		return operands{}, fmt.Errorf("bench: compress right: %w", err)
	}
	r.Logger.Debug().
		Int("size", size).
		Float64("probability", c.Probability).
		Int("left_nnz", l.NonZeros()).
		Int("right_nnz", rr.NonZeros()).
		Dur("took", time.Since(start)).
		Msg("operands ready")

	return operands{left: l, right: rr}, ctx.Err()
}

// multiply runs one multiplication and persists its product.
func (r *Runner) multiply(ctx context.Context, ops operands, policy schedule.Policy, threads int) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	c := r.Config
	rep := Report{
		RunID:       xid.New(),
		Size:        ops.left.Size(),
		Probability: c.Probability,
		Threads:     threads,
		Schedule:    policy.Kind.String(),
	}
	log := r.Logger.With().
		Str("run_id", rep.RunID.String()).
		Int("size", rep.Size).
		Str("schedule", rep.Schedule).
		Int("threads", threads).
		Logger()

	res, err := spmm.Multiply(ops.left, ops.right,
		spmm.WithThreads(threads),
		spmm.WithPolicy(policy),
		spmm.WithRuntimeSetting(c.RuntimeSetting),
	)
	if err != nil {
		if errors.Is(err, spmm.ErrOptionViolation) {
			err = fmt.Errorf("%w: %w", ErrConfig, err)
		}
		log.Error().Err(err).Msg("multiplication failed")

		return rep, fmt.Errorf("bench: run %s: %w", rep.RunID, err)
	}
	rep.Policy = res.Policy.String()
	rep.Seconds = res.Seconds()
	log.Debug().Ints("rows_per_worker", res.Rows).Str("policy", rep.Policy).Msg("parallel region done")

	product, err := csr.FromDense(res.Product)
	if err != nil {
		return rep, fmt.Errorf("bench: run %s: compress product: %w", rep.RunID, err)
	}
	rep.NonZeros = product.NonZeros()
	if err = ctx.Err(); err != nil {
		return rep, err
	}

	layout := store.Layout{Root: c.OutputDir}
	rep.Files, err = store.Persist(layout, store.RunInfo{
		Size:        rep.Size,
		Probability: rep.Probability,
		Threads:     threads,
		Schedule:    rep.Schedule,
		Elapsed:     res.Elapsed,
	}, product)
	if err != nil {
		log.Error().Err(err).Float64("seconds", rep.Seconds).Msg("run not persisted")

		return rep, fmt.Errorf("bench: run %s: %w", rep.RunID, err)
	}
	rep.Persisted = true
	log.Info().
		Str("policy", rep.Policy).
		Float64("seconds", rep.Seconds).
		Int("nnz", rep.NonZeros).
		Str("dir", layout.Dir(rep.Size, rep.Schedule)).
		Msg("run complete")

	return rep, nil
}
