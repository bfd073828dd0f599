// SPDX-License-Identifier: MIT

// Command spmmbench benchmarks parallel sparse matrix multiplication.
//
// Usage:
//
//	spmmbench [-config file.toml] [-size N] [-schedule static|dynamic|guided|runtime|auto]
//	          [-runtime kind[,chunk]] [-probability 0.01|0.02|0.05] [-threads T]
//	          [-out dir] [-seed S] [-sweep [-sweep-threads 1,2,4,8] [-sweep-sizes 1000,5000,10000]] [-cpuprofile dir] [-v]
//
// Results go to <out>/<N>/<schedule>/. The runtime schedule reads its setting
// from -runtime, the config file, or $SPMM_SCHEDULE, in that order.
//
// Exit codes: 0 success, 1 computation failure, 2 configuration error,
// 3 product computed but not persisted.
package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/tebeka/atexit"

	"github.com/katalvlaran/spmmbench/bench"
	"github.com/katalvlaran/spmmbench/config"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		log.Error().Err(err).Msg("bad arguments")
		atexit.Exit(bench.ExitConfig)
	}
	cfg.ApplyEnv(os.LookupEnv)

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log = log.Level(level)

	if cfg.CPUProfile != "" {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfile), profile.Quiet)
		atexit.Register(p.Stop)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)

	runner := &bench.Runner{Config: cfg, Logger: log, Out: os.Stdout}
	log.Info().
		Int("size", cfg.Size).
		Str("schedule", cfg.Schedule).
		Int("threads", cfg.Threads).
		Float64("probability", cfg.Probability).
		Bool("sweep", cfg.Sweep).
		Msg("starting")

	if cfg.Sweep {
		_, err = runner.Sweep(ctx)
	} else {
		_, err = runner.Run(ctx)
	}
	if err != nil {
		log.Error().Err(err).Msg("benchmark failed")
	}

	atexit.Exit(bench.ExitCode(err))
}
