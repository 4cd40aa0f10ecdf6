// Package runner orchestrates rounds of error injection and sweep
// decoding against one code.Code: it advances a direction.Schedule,
// drives the round/readout/timeout algorithm of spec.md §4.4, and reports
// whether the decoder restored the logical state. The Monte-Carlo driver
// that aggregates many trials, parses CLI flags, and writes results to
// disk is out of scope (spec.md §1) and lives outside this module;
// RunOneTrial is the single entry point such a driver calls, once per
// trial, each with its own Params.RNG.
package runner

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/sweeplattice/sweepdecoder/code"
	"github.com/sweeplattice/sweepdecoder/direction"
	"github.com/sweeplattice/sweepdecoder/internal/stats"
	"github.com/sweeplattice/sweepdecoder/internal/telemetry"
	"github.com/sweeplattice/sweepdecoder/lattice"
)

// Result is RunOneTrial's outcome.
type Result struct {
	// Success reports whether check_correction judged the accumulated
	// correction a pure stabilizer (no logical Z applied). Only
	// meaningful when Converged is true.
	Success bool
	// Converged reports whether the readout loop cleared the syndrome
	// before Params.Timeout sweeps elapsed. Timeout is not an error: it
	// is an expected, countable outcome (spec.md §7).
	Converged bool
	// TrialID lets an external orchestrator correlate this Result with
	// the structured log lines and metric samples emitted for the same
	// trial.
	TrialID uuid.UUID
	// Sweeps is how many readout sweeps were run before the loop
	// returned, whether by convergence or by timeout.
	Sweeps int
}

type runConfig struct {
	logger    telemetry.Logger
	collector *stats.Collector
}

// Option configures optional instrumentation for one RunOneTrial call.
type Option func(*runConfig)

// WithLogger attaches a structured logger; the default is telemetry.Noop,
// so the core stays silent unless a caller opts in.
func WithLogger(l telemetry.Logger) Option {
	return func(c *runConfig) { c.logger = l }
}

// WithCollector attaches a Prometheus metrics collector. A nil Collector
// (the default) disables metrics entirely.
func WithCollector(c *stats.Collector) Option {
	return func(rc *runConfig) { rc.collector = c }
}

// RunOneTrial runs one trial against a fresh Lattice and Code built from
// params: rounds of error injection and sweeping, then a readout phase
// that sweeps until the syndrome clears or Params.Timeout elapses.
func RunOneTrial(params Params, opts ...Option) (Result, error) {
	cfg := runConfig{logger: telemetry.Noop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	variant, err := lattice.ParseVariant(params.Variant)
	if err != nil {
		return Result{}, fmt.Errorf("runner: %w", err)
	}
	schedule, err := direction.ParseSchedule(params.Schedule)
	if err != nil {
		return Result{}, fmt.Errorf("runner: parse schedule %q: %w", params.Schedule, ErrInvalidSchedule)
	}

	lat, err := variant.Build(params.L)
	if err != nil {
		return Result{}, fmt.Errorf("runner: %w", err)
	}

	rng := params.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(cryptoSeed()))
	}

	c, err := code.New(lat, params.P, params.QErr, rng)
	if err != nil {
		return Result{}, fmt.Errorf("runner: %w", err)
	}

	trialID := uuid.New()
	log := cfg.logger.With(
		telemetry.String("trial_id", trialID.String()),
		telemetry.String("variant", variant.String()),
		telemetry.String("schedule", schedule.Name()),
	)

	cursor := direction.NewCursor(schedule, rng)

	sweepsUsed := 0
	for r := 0; r < params.Rounds; r++ {
		if sweepsUsed >= params.SweepLimit {
			cursor.Advance(rng)
			sweepsUsed = 0
		}

		c.GenerateDataError(params.Correlated)
		c.CalculateSyndrome()
		if params.QErr > 0 {
			c.GenerateMeasError()
		}

		for i := 0; i < params.SweepRate; i++ {
			if err := c.Sweep(cursor.Current(), params.Greedy); err != nil {
				return Result{}, fmt.Errorf("runner: %w", err)
			}
			sweepsUsed++
		}
	}

	// Readout: one final data-error tick models the measurement's own
	// error, then sweep until clean or Params.Timeout elapses. The
	// schedule advances every L sweeps regardless of SweepLimit — an
	// asymmetry spec.md §9 flags as intentional, not a bug to fix.
	c.GenerateDataError(false)
	c.CalculateSyndrome()

	for sweeps := 0; sweeps < params.Timeout; sweeps++ {
		if sweeps > 0 && sweeps%params.L == 0 {
			cursor.Advance(rng)
		}
		if err := c.Sweep(cursor.Current(), params.Greedy); err != nil {
			return Result{}, fmt.Errorf("runner: %w", err)
		}
		if c.SyndromeClean() {
			result := Result{
				Success:   c.CheckCorrection(),
				Converged: true,
				TrialID:   trialID,
				Sweeps:    sweeps + 1,
			}
			log.Info(context.Background(), "trial converged",
				telemetry.Int("sweeps", result.Sweeps), telemetry.Any("success", result.Success))
			cfg.collector.Observe(result.Converged, result.Success, result.Sweeps)
			return result, nil
		}
	}

	result := Result{TrialID: trialID, Sweeps: params.Timeout}
	log.Warn(context.Background(), "trial timed out", telemetry.Int("sweeps", result.Sweeps))
	cfg.collector.Observe(result.Converged, result.Success, result.Sweeps)
	return result, nil
}

func cryptoSeed() int64 {
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
