package runner

import (
	"fmt"
	"math/rand"

	"github.com/sweeplattice/sweepdecoder/code"
	"github.com/sweeplattice/sweepdecoder/lattice"
)

// Params is the sole configuration surface for one trial; it carries no
// env/file parsing itself (that belongs to the out-of-scope CLI driver)
// and validates itself fail-fast before RunOneTrial does anything else.
type Params struct {
	L          int     // linear lattice size, >= 4, even
	Rounds     int     // number of error/sweep rounds before readout, >= 0
	P          float64 // data-error probability, in [0,1]
	QErr       float64 // measurement-error probability, in [0,1]
	SweepLimit int     // sweeps per schedule direction during rounds, >= 1
	SweepRate  int     // sweeps run per round, >= 1
	Timeout    int     // max sweeps during readout, >= 0
	Variant    string  // one of lattice.ParseVariant's canonical names
	Schedule   string  // one of direction.ParseSchedule's canonical names
	Greedy     bool    // restrict |S|=1 flips to extremal vertices
	Correlated bool    // apply correlated data errors

	// RNG is the trial's private PRNG. If nil, RunOneTrial seeds one from
	// a crypto-random source, matching spec.md §5's requirement that no
	// trial ever reads a shared, package-level generator.
	RNG *rand.Rand
}

// Validate checks every field against spec.md §7's error table, run once
// at RunOneTrial's entry.
func (p Params) Validate() error {
	if p.L < 4 || p.L%2 != 0 {
		return fmt.Errorf("runner: %w", lattice.ErrInvalidSize)
	}
	if p.P < 0 || p.P > 1 || p.QErr < 0 || p.QErr > 1 {
		return fmt.Errorf("runner: %w", code.ErrInvalidProbability)
	}
	if p.SweepLimit < 1 {
		return fmt.Errorf("%w: sweep_limit must be >= 1", ErrInvalidParams)
	}
	if p.SweepRate < 1 {
		return fmt.Errorf("%w: sweep_rate must be >= 1", ErrInvalidParams)
	}
	if p.Rounds < 0 {
		return fmt.Errorf("%w: rounds must be >= 0", ErrInvalidParams)
	}
	if p.Timeout < 0 {
		return fmt.Errorf("%w: timeout must be >= 0", ErrInvalidParams)
	}
	return nil
}
