package linalg

// Kind represents the element kind of a matrix at the buffer boundary.
// Real kinds hold one IEEE-754 value per element, complex kinds hold a
// (real, imaginary) pair of the matching width.
type Kind int

// Supported element kinds.
const (
	F32 Kind = iota
	F64
	C64
	C128
)

// Size returns the byte width of one element of the kind.
func (k Kind) Size() int {
	switch k {
	case F32:
		return 4
	case F64, C64:
		return 8
	case C128:
		return 16
	default:
		panic("unknown element kind")
	}
}

// Complex reports whether the kind carries an imaginary component.
func (k Kind) Complex() bool {
	return k == C64 || k == C128
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case F32:
		return "f32"
	case F64:
		return "f64"
	case C64:
		return "c64"
	case C128:
		return "c128"
	default:
		return "unknown"
	}
}
