package runner

import "errors"

// ErrInvalidSchedule is returned by RunOneTrial when params.Schedule names
// something other than one of the ten canonical schedules.
var ErrInvalidSchedule = errors.New("runner: not one of the canonical schedules")

// ErrInvalidParams is returned by Params.Validate for any field outside
// its documented domain that isn't already covered by a more specific
// sentinel from code or lattice.
var ErrInvalidParams = errors.New("runner: invalid trial parameters")
