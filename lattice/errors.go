package lattice

import "errors"

// Sentinel errors for lattice construction and queries.
var (
	// ErrInvalidVariant is returned when a variant name does not match one
	// of the four canonical lattice families.
	ErrInvalidVariant = errors.New("lattice: not one of the four canonical variants")

	// ErrInvalidSize is returned when L is too small or odd-sized for a
	// variant that requires an even side length.
	ErrInvalidSize = errors.New("lattice: L must be even and >= 4")

	// ErrInvalidDirections is returned by FaceQubit and FaceVertices when
	// the supplied direction pair does not bound a face at the given
	// vertex: the two directions are equal or opposite, or no face with
	// those two edges at that vertex exists.
	ErrInvalidDirections = errors.New("lattice: directions do not form a valid face")
)
