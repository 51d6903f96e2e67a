package linalg

import (
	"math"
	"math/cmplx"
)

// modulus returns the complex modulus of v. For elements of real kinds
// (zero imaginary part) this is the plain absolute value.
func modulus(v complex128) float64 {
	return cmplx.Abs(v)
}

// componentClose compares two real components within eps. NaN-vs-NaN
// pairs and exactly equal values (including matching infinities) are
// accepted.
func componentClose(x, y, eps float64) bool {
	if math.IsNaN(x) && math.IsNaN(y) {
		return true
	}
	if x == y {
		return true
	}
	return math.Abs(x-y) <= eps
}

// scalarClose compares two scalars component-wise within eps, with the
// componentClose special-case rules.
func scalarClose(a, b complex128, eps float64) bool {
	return componentClose(real(a), real(b), eps) && componentClose(imag(a), imag(b), eps)
}

// hermitianWithin reports whether the square matrix m equals its own
// conjugate transpose within eps: real parts of m[i][j] and m[j][i] must
// match, and their imaginary parts must cancel. NaN-vs-NaN and
// matching-infinity components are accepted as equal.
func hermitianWithin(m Matrix, eps float64) bool {
	for i := 0; i < m.rows; i++ {
		for j := i; j < m.cols; j++ {
			a := m.At(i, j)
			b := m.At(j, i)
			if !componentClose(real(a), real(b), eps) {
				return false
			}
			if !componentClose(imag(a), -imag(b), eps) {
				return false
			}
		}
	}
	return true
}
