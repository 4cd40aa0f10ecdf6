// Package code owns the mutable per-trial state the sweep decoder operates
// on: which qubits hold a data error, which edges carry syndrome, and
// which qubits the current sweep proposes to flip. It generates noise,
// recomputes the syndrome from the fixed face/edge incidence a Lattice
// precomputes, and checks a proposed correction against the lattice's
// logical operators. Code owns its Lattice read-only and its own *rand.Rand,
// so many trials can run concurrently over one shared Lattice.
package code

import (
	"math/rand"

	"github.com/sweeplattice/sweepdecoder/direction"
	"github.com/sweeplattice/sweepdecoder/lattice"
	"github.com/sweeplattice/sweepdecoder/sweep"
)

// Code holds one trial's error, syndrome and flip state against a shared,
// read-only Lattice.
type Code struct {
	lat  *lattice.Lattice
	p    float64
	qErr float64
	rng  *rand.Rand

	errorSet []bool // qubit id -> has a data error
	syndrome []bool // edge id -> syndrome bit
	flip     []bool // qubit id -> pending correction bit
}

// New allocates a Code over lat with data-error probability p and
// measurement-error probability qErr, both in [0,1]. rng is the trial's
// private PRNG; callers that want reproducible trials supply a seeded
// *rand.Rand, matching spec.md §5's "no shared mutable state" requirement.
func New(lat *lattice.Lattice, p, qErr float64, rng *rand.Rand) (*Code, error) {
	if p < 0 || p > 1 || qErr < 0 || qErr > 1 {
		return nil, ErrInvalidProbability
	}
	return &Code{
		lat:      lat,
		p:        p,
		qErr:     qErr,
		rng:      rng,
		errorSet: make([]bool, lat.FaceCount()),
		syndrome: make([]bool, lat.EdgeCount()),
		flip:     make([]bool, lat.FaceCount()),
	}, nil
}

// Lattice returns the Code's underlying, read-only Lattice.
func (c *Code) Lattice() *lattice.Lattice { return c.lat }

// Error returns the current error bitset, indexed by qubit id. The slice
// is the Code's live state, not a copy: writes to it change the error the
// next CalculateSyndrome sees.
func (c *Code) Error() []bool { return c.errorSet }

// Syndrome returns the current syndrome bitset, indexed by edge id.
// Callers must not mutate the returned slice.
func (c *Code) Syndrome() []bool { return c.syndrome }

// Flip returns the currently pending correction bitset, indexed by qubit
// id. It is cleared at the start of every Sweep call.
func (c *Code) Flip() []bool { return c.flip }

// Reset clears error, syndrome and flip back to zero for a fresh trial,
// keeping the Lattice and PRNG.
func (c *Code) Reset() {
	for i := range c.errorSet {
		c.errorSet[i] = false
	}
	for i := range c.syndrome {
		c.syndrome[i] = false
	}
	for i := range c.flip {
		c.flip[i] = false
	}
}

// GenerateDataError independently samples Bernoulli(p) for every qubit,
// toggling its membership in error on success. When correlated is true, a
// second-order correlation pass additionally toggles the paired qubits
// BuildCorrelatedIndices names, each pair independently sampled at the
// same rate p.
func (c *Code) GenerateDataError(correlated bool) {
	for q := range c.errorSet {
		if c.rng.Float64() < c.p {
			c.errorSet[q] = !c.errorSet[q]
		}
	}
	if !correlated {
		return
	}
	for _, pair := range BuildCorrelatedIndices(c.lat) {
		if c.rng.Float64() < c.p {
			c.errorSet[pair[0]] = !c.errorSet[pair[0]]
			c.errorSet[pair[1]] = !c.errorSet[pair[1]]
		}
	}
}

// CalculateSyndrome recomputes every edge's syndrome bit as the parity of
// the errors on the qubits incident to it. Idempotent for a fixed error.
func (c *Code) CalculateSyndrome() {
	for e := range c.syndrome {
		parity := false
		for _, q := range c.lat.EdgeFaces(e) {
			if c.errorSet[q] {
				parity = !parity
			}
		}
		c.syndrome[e] = parity
	}
}

// GenerateMeasError independently flips every edge's syndrome bit with
// probability qErr, modeling a noisy round of stabilizer measurement.
func (c *Code) GenerateMeasError() {
	for e := range c.syndrome {
		if c.rng.Float64() < c.qErr {
			c.syndrome[e] = !c.syndrome[e]
		}
	}
}

// LocalFlip toggles qubit q's pending correction bit. Calling it twice on
// the same qubit is a no-op.
func (c *Code) LocalFlip(q int) { c.flip[q] = !c.flip[q] }

// Sweep runs one full pass of the sweep engine's decoding rule over every
// vertex in index order for direction d, then applies the accumulated
// flip to error and recomputes the syndrome. Returns ErrInvalidDirection
// if d is not one of the eight canonical directions.
func (c *Code) Sweep(d direction.Direction, greedy bool) error {
	if !d.Valid() {
		return ErrInvalidDirection
	}
	for i := range c.flip {
		c.flip[i] = false
	}
	for v := 0; v < c.lat.VertexCount(); v++ {
		if q, ok := sweep.Rule(c.lat, c.syndrome, v, d, greedy, c.rng); ok {
			c.LocalFlip(q)
		}
	}
	c.applyFlip()
	c.CalculateSyndrome()
	return nil
}

func (c *Code) applyFlip() {
	for q, f := range c.flip {
		if f {
			c.errorSet[q] = !c.errorSet[q]
		}
	}
}

// SyndromeClean reports whether every edge's syndrome bit is zero.
func (c *Code) SyndromeClean() bool {
	for _, s := range c.syndrome {
		if s {
			return false
		}
	}
	return true
}

// CheckCorrection applies any still-pending flip to error, verifies the
// resulting syndrome is entirely zero (an incomplete correction otherwise
// returns false), and reports whether every logical Z operator's parity
// against error is even — true means the accumulated correction differs
// from the injected error by a stabilizer, not a logical operator.
func (c *Code) CheckCorrection() bool {
	applied := false
	for q, f := range c.flip {
		if f {
			c.errorSet[q] = !c.errorSet[q]
			c.flip[q] = false
			applied = true
		}
	}
	if applied {
		c.CalculateSyndrome()
	}
	if !c.SyndromeClean() {
		return false
	}
	for k := 0; k < c.lat.LogicalZCount(); k++ {
		parity := false
		for _, q := range c.lat.LogicalZ(k) {
			if c.errorSet[q] {
				parity = !parity
			}
		}
		if parity {
			return false
		}
	}
	return true
}
