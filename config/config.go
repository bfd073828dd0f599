// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/spmmbench/schedule"
)

// Defaults used by Default.
const (
	DefaultSize        = 1000
	DefaultSchedule    = "static"
	DefaultProbability = 0.01
	DefaultThreads     = 4
	DefaultOutputDir   = "results"
	DefaultSeed        = 1
)

// AllowedProbabilities is the benchmark's fixed set of non-zero densities.
var AllowedProbabilities = []float64{0.01, 0.02, 0.05}

// DefaultSweepThreads are the thread counts of a sweep: 1, 2, 4, 8.
func DefaultSweepThreads() []int { return []int{1, 2, 4, 8} }

// DefaultSweepSizes are the matrix sizes of a sweep: small, medium, large.
func DefaultSweepSizes() []int { return []int{1000, 5000, 10000} }

// Config is one benchmark invocation.
type Config struct {
	Size           int     `toml:"size"`
	Schedule       string  `toml:"schedule"`
	Probability    float64 `toml:"probability"`
	Threads        int     `toml:"threads"`
	RuntimeSetting string  `toml:"runtime_setting"` // "kind[,chunk]" for the runtime schedule
	OutputDir      string  `toml:"output_dir"`
	Seed           int64   `toml:"seed"`
	Sweep          bool    `toml:"sweep"`
	SweepThreads   []int   `toml:"sweep_threads"`
	SweepSizes     []int   `toml:"sweep_sizes"` // empty sweeps Size only
	CPUProfile     string  `toml:"cpu_profile"` // profile directory; empty disables
	Verbose        bool    `toml:"verbose"`
}

// Default returns the configuration of a plain single run.
func Default() Config {
	return Config{
		Size:         DefaultSize,
		Schedule:     DefaultSchedule,
		Probability:  DefaultProbability,
		Threads:      DefaultThreads,
		OutputDir:    DefaultOutputDir,
		Seed:         DefaultSeed,
		SweepThreads: DefaultSweepThreads(),
		SweepSizes:   DefaultSweepSizes(),
	}
}

// Load overlays the TOML file at path onto c. Keys absent from the file keep
// their current value.
//
// Errors: ErrUndefinedField, or the decoder's error.
func (c *Config) Load(path string) error {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("config.Load(%s): %w", path, err)
	}

	return checkUndecoded(meta, path)
}

// Decode overlays TOML read from r onto c, like Load.
func (c *Config) Decode(r io.Reader) error {
	meta, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return fmt.Errorf("config.Decode: %w", err)
	}

	return checkUndecoded(meta, "input")
}

// checkUndecoded rejects keys the decoder could not map onto Config.
func checkUndecoded(meta toml.MetaData, source string) error {
	keys := meta.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("config: %s: %s: %w", source, strings.Join(names, ", "), ErrUndefinedField)
}

// Policy returns the scheduling policy named by c.Schedule.
func (c Config) Policy() (schedule.Policy, error) {
	kind, err := schedule.ParseKind(c.Schedule)
	if err != nil {
		return schedule.Policy{}, err
	}

	return schedule.Policy{Kind: kind}, nil
}

// Sizes returns the matrix sizes of a sweep: SweepSizes, or Size when empty.
func (c Config) Sizes() []int {
	if len(c.SweepSizes) == 0 {
		return []int{c.Size}
	}

	return c.SweepSizes
}

// Validate checks every field before any work starts.
//
// Errors: ErrBadSize, schedule.ErrUnknownSchedule, schedule.ErrBadChunk,
// ErrProbabilityNotAllowed, ErrBadThreads.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("config.Validate: size=%d: %w", c.Size, ErrBadSize)
	}
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("config.Validate: %w", err)
	}
	if _, err := schedule.ParseSetting(c.RuntimeSetting); err != nil {
		return fmt.Errorf("config.Validate: runtime setting: %w", err)
	}
	if !probabilityAllowed(c.Probability) {
		return fmt.Errorf("config.Validate: probability=%g (allowed %v): %w",
			c.Probability, AllowedProbabilities, ErrProbabilityNotAllowed)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("config.Validate: threads=%d: %w", c.Threads, ErrBadThreads)
	}
	if c.Sweep && len(c.SweepThreads) == 0 {
		return fmt.Errorf("config.Validate: empty sweep_threads: %w", ErrBadThreads)
	}
	for _, n := range c.SweepSizes {
		if n <= 0 {
			return fmt.Errorf("config.Validate: sweep_sizes contains %d: %w", n, ErrBadSize)
		}
	}
	for _, t := range c.SweepThreads {
		if t <= 0 {
			return fmt.Errorf("config.Validate: sweep_threads contains %d: %w", t, ErrBadThreads)
		}
	}

	return nil
}

func probabilityAllowed(p float64) bool {
	for _, a := range AllowedProbabilities {
		if p == a {
			return true
		}
	}

	return false
}
