package code

import "errors"

// ErrInvalidProbability is returned by New when p or q_err falls outside
// [0, 1].
var ErrInvalidProbability = errors.New("code: p and q_err must be in [0,1]")

// ErrInvalidDirection is returned by Sweep when asked to sweep in a
// direction outside the eight canonical directions.
var ErrInvalidDirection = errors.New("code: direction is not one of the eight canonical directions")
