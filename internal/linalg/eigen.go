package linalg

import "fmt"

// EighOptions parameterizes a Hermitian eigendecomposition.
type EighOptions struct {
	Eps     float64
	MaxIter int
}

// Eigh computes the eigendecomposition of a Hermitian matrix: first a
// Hessenberg reduction by Householder reflectors, then unshifted QR
// iteration up to MaxIter rounds, stopping early once successive Q
// iterates agree within Eps. Exhausting MaxIter is not an error; the
// last iterate is returned.
//
// Eigenvalues are the real parts of the converged diagonal (Hermitian
// spectra are real, the imaginary residue is discarded); eigenvectors
// are the columns of the accumulated Q. Both are eps-cleaned.
//
// The input must be square and Hermitian within Eps, otherwise Eigh
// fails with ErrNonSquare or ErrNotHermitian.
func Eigh(a Matrix, opts EighOptions) (values, vectors Matrix, err error) {
	if a.rows != a.cols {
		return Matrix{}, Matrix{}, fmt.Errorf("Eigh: %w: %dx%d", ErrNonSquare, a.rows, a.cols)
	}
	if !hermitianWithin(a, opts.Eps) {
		return Matrix{}, Matrix{}, fmt.Errorf("Eigh: %w", ErrNotHermitian)
	}
	n := a.rows

	// Stage 1: Hessenberg reduction, A ← H·A·Hᴴ.
	h := a.asMatrix()
	q := Identity(a.kind, n)
	for i := 0; i < n-1; i++ {
		hi := householder(vectorOf(h.Slice(i+1, i, n-i-1, 1)), n, opts.Eps)
		if i == 0 {
			q = hi
		} else {
			q = matmul(q, hi, false)
		}
		h = matmul(matmul(hi, h, false), hi.Adjoint(), false)
	}
	h = h.ApproximateZeros(opts.Eps)
	q = q.ApproximateZeros(opts.Eps)

	// Stage 2: unshifted QR iteration, A ← R·Q.
	for it := 0; it < opts.MaxIter; it++ {
		qk, rk, qrErr := QR(h, QROptions{Mode: QRModeFull, Eps: opts.Eps})
		if qrErr != nil {
			return Matrix{}, Matrix{}, fmt.Errorf("Eigh: %w", qrErr)
		}
		h = matmul(rk, qk, false)
		next := matmul(q, qk, false)
		converged := equalWithin(next, q, opts.Eps)
		q = next
		if converged {
			break
		}
	}

	values = NewVector(a.kind, n)
	for i := 0; i < n; i++ {
		values.set(i, 0, complex(real(h.At(i, i)), 0))
	}
	return values.ApproximateZeros(opts.Eps), q.ApproximateZeros(opts.Eps), nil
}
