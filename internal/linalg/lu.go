package linalg

import "fmt"

// LUOptions parameterizes an LU decomposition.
type LUOptions struct {
	Eps float64
}

// LU factors a square matrix with partial pivoting into P, L, U such
// that A = P·L·U: P a permutation, L unit-lower-triangular, U
// upper-triangular. Entries whose magnitude falls below Eps are snapped
// to exact zero. A zero-magnitude pivot during elimination fails with
// ErrSingular, the same policy as triangular solve.
func LU(a Matrix, opts LUOptions) (p, l, u Matrix, err error) {
	if a.rows != a.cols {
		return Matrix{}, Matrix{}, Matrix{}, fmt.Errorf("LU: %w: %dx%d", ErrNonSquare, a.rows, a.cols)
	}
	n := a.rows

	// Partial pivoting: bring the largest-magnitude candidate of each
	// column to the diagonal, mirroring every swap into the permutation.
	// The final column needs no search.
	work := a.asMatrix().Clone()
	perm := Identity(a.kind, n)
	for j := 0; j < n-1; j++ {
		piv := j
		max := modulus(work.At(j, j))
		for i := j + 1; i < n; i++ {
			if v := modulus(work.At(i, j)); v > max {
				max = v
				piv = i
			}
		}
		if piv != j {
			swapRows(work, j, piv)
			swapRows(perm, j, piv)
		}
	}

	// Doolittle elimination with the L diagonal fixed at 1.
	l = Identity(a.kind, n)
	u = New(a.kind, n, n)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			sum := work.At(i, j)
			for k := 0; k < i; k++ {
				sum -= u.At(k, j) * l.At(i, k)
			}
			if modulus(sum) < opts.Eps {
				sum = 0
			}
			u.set(i, j, sum)
		}
		for i := j + 1; i < n; i++ {
			pivot := u.At(j, j)
			if modulus(pivot) == 0 {
				return Matrix{}, Matrix{}, Matrix{}, fmt.Errorf("LU: %w: zero pivot at column %d", ErrSingular, j)
			}
			sum := work.At(i, j)
			for k := 0; k < j; k++ {
				sum -= u.At(k, j) * l.At(i, k)
			}
			v := sum / pivot
			if modulus(v) < opts.Eps {
				v = 0
			}
			l.set(i, j, v)
		}
	}

	// P·A' = A requires returning the permutation transposed.
	return perm.Transpose(), l, u, nil
}

// swapRows exchanges two rows in place. Only for matrices under
// construction that have not been returned to a caller yet.
func swapRows(m Matrix, i, j int) {
	for c := 0; c < m.cols; c++ {
		m.data[i*m.cols+c], m.data[j*m.cols+c] = m.data[j*m.cols+c], m.data[i*m.cols+c]
	}
}
