package linalg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// hermitianEps is the fixed tolerance of the Cholesky Hermitian
// precondition check.
const hermitianEps = 1e-10

// Cholesky factors a Hermitian matrix into a lower-triangular L with
// A = L·Lᴴ using the Cholesky–Banachiewicz recurrence. The input must be
// square and Hermitian within 1e-10, otherwise it fails with
// ErrNonSquare or ErrNotHermitian.
func Cholesky(a Matrix) (Matrix, error) {
	if a.rows != a.cols {
		return Matrix{}, fmt.Errorf("Cholesky: %w: %dx%d", ErrNonSquare, a.rows, a.cols)
	}
	if !hermitianWithin(a, hermitianEps) {
		return Matrix{}, fmt.Errorf("Cholesky: %w", ErrNotHermitian)
	}

	n := a.rows
	l := New(a.kind, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			sum := a.At(i, j)
			for k := 0; k < j; k++ {
				sum -= l.At(i, k) * cmplx.Conj(l.At(j, k))
			}
			l.set(i, j, sum/l.At(j, j))
		}

		diag := a.At(i, i)
		for k := 0; k < i; k++ {
			v := l.At(i, k)
			diag -= v * cmplx.Conj(v)
		}
		if a.kind.Complex() {
			l.set(i, i, cmplx.Sqrt(diag))
		} else {
			l.set(i, i, complex(math.Sqrt(real(diag)), 0))
		}
	}
	return l, nil
}
