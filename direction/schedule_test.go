package direction_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeplattice/sweepdecoder/direction"
)

// Every eight-direction schedule must use each of the eight directions
// exactly once (spec.md §8 "Schedule cover").
func TestParseSchedule_EightTupleSchedulesCoverAllDirections(t *testing.T) {
	eightTuple := []string{
		"rotating_XZ", "rotating_YZ", "rotating_XY",
		"alternating_XZ", "alternating_YZ", "alternating_XY",
	}
	for _, name := range eightTuple {
		sched, err := direction.ParseSchedule(name)
		require.NoError(t, err)
		require.Equal(t, 8, sched.Len())

		seen := map[direction.Direction]bool{}
		for i := 0; i < sched.Len(); i++ {
			seen[sched.At(i)] = true
		}
		assert.Len(t, seen, 8, "schedule %s must use every direction exactly once", name)
	}
}

func TestParseSchedule_ShortSchedules(t *testing.T) {
	c, err := direction.ParseSchedule("const")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, direction.NegXYZ, c.At(0))

	pm, err := direction.ParseSchedule("pm_XYZ")
	require.NoError(t, err)
	assert.Equal(t, 2, pm.Len())

	four, err := direction.ParseSchedule("four_directions")
	require.NoError(t, err)
	assert.Equal(t, 4, four.Len())
}

func TestParseSchedule_Random(t *testing.T) {
	sched, err := direction.ParseSchedule("random")
	require.NoError(t, err)
	assert.True(t, sched.IsRandom())
}

func TestParseSchedule_RejectsUnknownName(t *testing.T) {
	_, err := direction.ParseSchedule("not-a-schedule")
	assert.ErrorIs(t, err, direction.ErrInvalidSchedule)
}

func TestCursor_FixedScheduleWrapsAround(t *testing.T) {
	sched, err := direction.ParseSchedule("pm_XYZ")
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))
	cur := direction.NewCursor(sched, rng)

	assert.Equal(t, direction.NegXYZ, cur.Current())
	cur.Advance(rng)
	assert.Equal(t, direction.XYZ, cur.Current())
	cur.Advance(rng)
	assert.Equal(t, direction.NegXYZ, cur.Current(), "schedule must wrap back to the start")
}

func TestCursor_RandomScheduleAlwaysYieldsAValidDirection(t *testing.T) {
	sched, err := direction.ParseSchedule("random")
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(7))
	cur := direction.NewCursor(sched, rng)

	for i := 0; i < 50; i++ {
		assert.True(t, cur.Current().Valid())
		cur.Advance(rng)
	}
}
