// SPDX-License-Identifier: MIT

package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// EnvRuntimeSetting supplies RuntimeSetting when neither the file nor the
// flags set it.
const EnvRuntimeSetting = "SPMM_SCHEDULE"

// Parse builds a Config from command-line arguments.
// Implementation:
//   - Stage 1: parse flags (flag.ContinueOnError, usage to output).
//   - Stage 2: start from Default and overlay -config, if given.
//   - Stage 3: overlay only the flags that were set explicitly.
//
// Parse does not validate; call Validate on the result.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	var (
		fv   = Default()
		path string
		sw   string
		ss   string
	)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&path, "config", "", "TOML configuration `file`")
	fs.IntVar(&fv.Size, "size", fv.Size, "matrix size N")
	fs.StringVar(&fv.Schedule, "schedule", fv.Schedule, "static|dynamic|guided|runtime|auto")
	fs.StringVar(&fv.RuntimeSetting, "runtime", "", "`kind[,chunk]` used by the runtime schedule (default $"+EnvRuntimeSetting+")")
	fs.Float64Var(&fv.Probability, "probability", fv.Probability, "non-zero probability (0.01, 0.02 or 0.05)")
	fs.IntVar(&fv.Threads, "threads", fv.Threads, "worker count")
	fs.StringVar(&fv.OutputDir, "out", fv.OutputDir, "result root `directory`")
	fs.Int64Var(&fv.Seed, "seed", fv.Seed, "generator seed")
	fs.BoolVar(&fv.Sweep, "sweep", false, "run every schedule for every sweep thread count")
	fs.StringVar(&sw, "sweep-threads", joinInts(fv.SweepThreads), "comma separated thread counts of a sweep")
	fs.StringVar(&ss, "sweep-sizes", joinInts(fv.SweepSizes), "comma separated matrix sizes of a sweep")
	fs.StringVar(&fv.CPUProfile, "cpuprofile", "", "write a CPU profile into `directory`")
	fs.BoolVar(&fv.Verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config.Parse: unexpected arguments %q", fs.Args())
	}

	cfg := Default()
	if path != "" {
		if err := cfg.Load(path); err != nil {
			return Config{}, err
		}
	}

	var parseErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = fv.Size
		case "schedule":
			cfg.Schedule = fv.Schedule
		case "runtime":
			cfg.RuntimeSetting = fv.RuntimeSetting
		case "probability":
			cfg.Probability = fv.Probability
		case "threads":
			cfg.Threads = fv.Threads
		case "out":
			cfg.OutputDir = fv.OutputDir
		case "seed":
			cfg.Seed = fv.Seed
		case "sweep":
			cfg.Sweep = fv.Sweep
		case "sweep-threads":
			ts, err := splitInts(sw)
			if err != nil {
				parseErr = fmt.Errorf("config.Parse: -sweep-threads %q: %w", sw, ErrBadThreads)
				return
			}
			cfg.SweepThreads = ts
		case "sweep-sizes":
			ns, err := splitInts(ss)
			if err != nil {
				parseErr = fmt.Errorf("config.Parse: -sweep-sizes %q: %w", ss, ErrBadSize)
				return
			}
			cfg.SweepSizes = ns
		case "cpuprofile":
			cfg.CPUProfile = fv.CPUProfile
		case "v":
			cfg.Verbose = fv.Verbose
		}
	})
	if parseErr != nil {
		return Config{}, parseErr
	}

	return cfg, nil
}

// ApplyEnv fills RuntimeSetting from EnvRuntimeSetting when it is empty.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if c.RuntimeSetting != "" {
		return
	}
	if v, ok := lookup(EnvRuntimeSetting); ok {
		c.RuntimeSetting = strings.TrimSpace(v)
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, ",")
}

func splitInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		x, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}

	return out, nil
}
