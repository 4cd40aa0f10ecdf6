// Command sweepsim runs a single sweep-decoder trial and prints its
// outcome. It is a smoke-test binary demonstrating runner.RunOneTrial, not
// the Monte-Carlo driver that aggregates many trials and writes results to
// disk — that orchestration is explicitly out of scope (spec.md §1) and
// belongs outside this module.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sweeplattice/sweepdecoder/internal/stats"
	"github.com/sweeplattice/sweepdecoder/internal/telemetry"
	"github.com/sweeplattice/sweepdecoder/runner"
)

func main() {
	l := flag.Int("l", 6, "lattice linear size (>= 4, even)")
	rounds := flag.Int("rounds", 10, "number of error/sweep rounds before readout")
	p := flag.Float64("p", 0.05, "data-error probability")
	qErr := flag.Float64("q-err", 0.0, "measurement-error probability")
	sweepLimit := flag.Int("sweep-limit", 1, "sweeps per schedule direction during rounds")
	sweepRate := flag.Int("sweep-rate", 1, "sweeps run per round")
	timeout := flag.Int("timeout", 200, "max sweeps during readout")
	variant := flag.String("variant", "rhombic_toric", "rhombic_toric|rhombic_boundaries|cubic_toric|cubic_boundaries")
	schedule := flag.String("schedule", "rotating_XZ", "schedule name")
	greedy := flag.Bool("greedy", false, "restrict |S|=1 flips to extremal vertices")
	correlated := flag.Bool("correlated", false, "apply correlated data errors")
	logLevel := flag.String("log-level", "info", "debug|info|warn|error")
	flag.Parse()

	log := telemetry.New(telemetry.Config{Level: *logLevel, Format: "text"})
	collector, err := stats.NewCollector(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sweepsim: metrics setup:", err)
		os.Exit(1)
	}

	params := runner.Params{
		L:          *l,
		Rounds:     *rounds,
		P:          *p,
		QErr:       *qErr,
		SweepLimit: *sweepLimit,
		SweepRate:  *sweepRate,
		Timeout:    *timeout,
		Variant:    *variant,
		Schedule:   *schedule,
		Greedy:     *greedy,
		Correlated: *correlated,
	}

	result, err := runner.RunOneTrial(params, runner.WithLogger(log), runner.WithCollector(collector))
	if err != nil {
		fmt.Fprintln(os.Stderr, "sweepsim: trial failed:", err)
		os.Exit(1)
	}

	log.Info(context.Background(), "trial complete",
		telemetry.String("trial_id", result.TrialID.String()),
		telemetry.Any("converged", result.Converged),
		telemetry.Any("success", result.Success),
		telemetry.Int("sweeps", result.Sweeps),
	)
	if !result.Converged {
		os.Exit(2)
	}
}
