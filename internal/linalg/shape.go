package linalg

import "fmt"

// Shape describes the dimensions accompanying a raw buffer at the
// boundary: (length) for a vector, (rows, cols) for a matrix.
type Shape []int

// NumElements returns the total number of elements the shape spans.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that the shape is rank 1 or 2 with positive dimensions.
func (s Shape) Validate() error {
	if len(s) != 1 && len(s) != 2 {
		return fmt.Errorf("%w: rank %d, want 1 or 2", ErrShape, len(s))
	}
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrShape, i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}
