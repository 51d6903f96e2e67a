package linalg

import "fmt"

// QRMode selects between the full and reduced (economy) factorization.
type QRMode int

// Supported QR modes.
const (
	QRModeFull QRMode = iota
	QRModeReduced
)

// QROptions parameterizes a QR decomposition.
type QROptions struct {
	Mode QRMode
	Eps  float64
}

// QR factors a rows≥cols matrix into an orthogonal/unitary Q and an
// upper-triangular R with Q·R ≈ A, by iterative Householder reduction.
// Underdetermined inputs (rows < cols) fail with ErrShape.
//
// In reduced mode with rows > cols, Q is trimmed to its first cols
// columns and R to its matching cols rows.
func QR(a Matrix, opts QROptions) (q, r Matrix, err error) {
	m, n := a.rows, a.cols
	if m < n {
		return Matrix{}, Matrix{}, fmt.Errorf("QR: %w: %dx%d has fewer rows than columns", ErrShape, m, n)
	}

	last := n - 2
	if m > n {
		last = n - 1
	}

	r = a.asMatrix()
	for i := 0; i <= last; i++ {
		col := vectorOf(r.Slice(i, i, m-i, 1))
		h := householder(col, m, opts.Eps)
		if i == 0 {
			q = h
		} else {
			q = matmul(q, h, false)
		}
		r = matmul(h, r, false)
	}
	if last < 0 {
		q = Identity(a.kind, m)
	}

	q = q.ApproximateZeros(opts.Eps)
	r = r.ApproximateZeros(opts.Eps)

	if opts.Mode == QRModeReduced && m > n {
		q = q.Slice(0, 0, m, n)
		r = r.Slice(0, 0, n, n)
	}
	return q, r, nil
}
