// SPDX-License-Identifier: MIT

// Package correlation: functional configuration for engine runs.
//
// Design goals:
//   - Deterministic behavior: no global state; options apply left to right.
//   - Safe by construction: WithX panics only on nonsensical values
//     (programmer error), never on data.

package correlation

import (
	"log/slog"
	"runtime"
)

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultMode is the execution mode when WithMode is not given.
	DefaultMode = Sequential

	// DefaultTiming controls whether ExecutionTime is recorded.
	DefaultTiming = false

	// DefaultWorkers of 0 resolves to runtime.GOMAXPROCS(0) at run time.
	DefaultWorkers = 0

	// chunksPerWorker is the number of chunks per worker in Parallel mode.
	chunksPerWorker = 4
)

const (
	panicModeInvalid    = "correlation: WithMode: unknown mode"
	panicWorkersInvalid = "correlation: WithWorkers: workers must be >= 1"
)

// Option mutates run Options.
type Option func(*Options)

// Options is the effective configuration of one run.
type Options struct {
	timing  bool
	mode    Mode
	workers int
	logger  *slog.Logger
}

// WithTiming records the wall-clock duration of the pair loop in
// Result.ExecutionTime.
func WithTiming() Option {
	return func(o *Options) { o.timing = true }
}

// WithMode selects the execution mode. Panics on an undeclared Mode value.
func WithMode(m Mode) Option {
	if !m.valid() {
		panic(panicModeInvalid)
	}

	return func(o *Options) { o.mode = m }
}

// WithWorkers bounds the number of goroutines in Parallel mode.
// Ignored by Sequential. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithLogger sets the structured logger for run diagnostics. Runs log at
// Debug level only. A nil logger restores the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions resolves opts over the documented defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		timing:  DefaultTiming,
		mode:    DefaultMode,
		workers: DefaultWorkers,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	return o
}
