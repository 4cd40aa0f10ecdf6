package runner_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeplattice/sweepdecoder/runner"
)

func baseParams(seed int64) runner.Params {
	return runner.Params{
		L:          4,
		Rounds:     3,
		P:          0.01,
		QErr:       0,
		SweepLimit: 1,
		SweepRate:  1,
		Timeout:    50,
		Variant:    "rhombic_toric",
		Schedule:   "rotating_XZ",
		RNG:        rand.New(rand.NewSource(seed)),
	}
}

func TestRunOneTrial_RejectsUnknownVariant(t *testing.T) {
	p := baseParams(1)
	p.Variant = "not_a_variant"
	_, err := runner.RunOneTrial(p)
	assert.Error(t, err)
}

func TestRunOneTrial_RejectsUnknownSchedule(t *testing.T) {
	p := baseParams(1)
	p.Schedule = "not_a_schedule"
	_, err := runner.RunOneTrial(p)
	assert.ErrorIs(t, err, runner.ErrInvalidSchedule)
}

func TestRunOneTrial_RejectsInvalidProbability(t *testing.T) {
	p := baseParams(1)
	p.P = 1.5
	_, err := runner.RunOneTrial(p)
	assert.Error(t, err)
}

func TestRunOneTrial_RejectsTooSmallLatticeSize(t *testing.T) {
	p := baseParams(1)
	p.L = 2
	_, err := runner.RunOneTrial(p)
	assert.Error(t, err)
}

func TestRunOneTrial_ZeroErrorProbabilityAlwaysConvergesAndSucceeds(t *testing.T) {
	p := baseParams(7)
	p.P = 0
	p.QErr = 0
	result, err := runner.RunOneTrial(p)
	require.NoError(t, err)
	assert.True(t, result.Converged)
	assert.True(t, result.Success)
}

func TestRunOneTrial_LowNoiseHighSuccessRate(t *testing.T) {
	const trials = 50
	successes := 0
	for i := 0; i < trials; i++ {
		p := baseParams(int64(100 + i))
		p.L = 6
		p.P = 0.005
		p.Timeout = 200
		result, err := runner.RunOneTrial(p)
		require.NoError(t, err)
		if result.Converged && result.Success {
			successes++
		}
	}
	assert.Greater(t, successes, trials/2, "low-noise trials should mostly succeed")
}

func TestRunOneTrial_AssignsDistinctTrialIDs(t *testing.T) {
	p1 := baseParams(1)
	p2 := baseParams(2)
	r1, err := runner.RunOneTrial(p1)
	require.NoError(t, err)
	r2, err := runner.RunOneTrial(p2)
	require.NoError(t, err)
	assert.NotEqual(t, r1.TrialID, r2.TrialID)
}

func TestRunOneTrial_TimeoutZeroNeverConverges(t *testing.T) {
	p := baseParams(1)
	p.Timeout = 0
	result, err := runner.RunOneTrial(p)
	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.False(t, result.Success)
}
