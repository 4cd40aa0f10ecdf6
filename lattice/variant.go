package lattice

import "fmt"

var variantNames = map[string]Variant{
	"rhombic_toric":      RhombicToric,
	"rhombic_boundaries": RhombicBounded,
	"cubic_toric":        CubicToric,
	"cubic_boundaries":   CubicBounded,
}

// ParseVariant resolves one of the four canonical variant names used at the
// runner boundary ("rhombic_toric", "rhombic_boundaries", "cubic_toric",
// "cubic_boundaries") into a Variant. This is the only place in the module
// that should compare variant names as strings.
func ParseVariant(name string) (Variant, error) {
	v, ok := variantNames[name]
	if !ok {
		return 0, fmt.Errorf("lattice: parse variant %q: %w", name, ErrInvalidVariant)
	}
	return v, nil
}

// Build constructs a Lattice of this variant at linear size l, dispatching
// to the matching NewXxx constructor.
func (v Variant) Build(l int) (*Lattice, error) {
	switch v {
	case RhombicToric:
		return NewRhombicToric(l)
	case RhombicBounded:
		return NewRhombicBounded(l)
	case CubicToric:
		return NewCubicToric(l)
	case CubicBounded:
		return NewCubicBounded(l)
	default:
		return nil, ErrInvalidVariant
	}
}
