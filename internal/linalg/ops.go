package linalg

import (
	"fmt"
	"math/cmplx"
)

// Transpose swaps rows and columns. A vector becomes its explicit column
// of singleton rows.
func (m Matrix) Transpose() Matrix {
	if m.vector {
		return m.asMatrix()
	}
	out := New(m.kind, m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.set(c, r, m.At(r, c))
		}
	}
	return out
}

// Adjoint returns the conjugate transpose.
func (m Matrix) Adjoint() Matrix {
	out := m.Transpose()
	for i, v := range out.data {
		out.data[i] = cmplx.Conj(v)
	}
	return out
}

// Dot computes the matrix product a·conj(b), conjugating the second
// operand's elements. It is the Hermitian inner product used where
// orthogonality checks require one; for real kinds it coincides with
// DotReal.
func Dot(a, b Matrix) (Matrix, error) {
	if a.cols != b.rows {
		return Matrix{}, fmt.Errorf("Dot: %w: %dx%d by %dx%d", ErrShape, a.rows, a.cols, b.rows, b.cols)
	}
	return matmul(a, b, true), nil
}

// DotReal computes the plain matrix product a·b with no conjugation,
// used when intermediate values are known real or when the plain complex
// product is wanted.
func DotReal(a, b Matrix) (Matrix, error) {
	if a.cols != b.rows {
		return Matrix{}, fmt.Errorf("DotReal: %w: %dx%d by %dx%d", ErrShape, a.rows, a.cols, b.rows, b.cols)
	}
	return matmul(a, b, false), nil
}

// matmul is the shared product kernel. Dimensions must already agree.
func matmul(a, b Matrix, conjB bool) Matrix {
	if a.cols != b.rows {
		panic(fmt.Sprintf("linalg: matmul dimension mismatch: %dx%d by %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	out := New(a.kind, a.rows, b.cols)
	for r := 0; r < a.rows; r++ {
		for c := 0; c < b.cols; c++ {
			var sum complex128
			for k := 0; k < a.cols; k++ {
				bv := b.At(k, c)
				if conjB {
					bv = cmplx.Conj(bv)
				}
				sum += a.At(r, k) * bv
			}
			out.set(r, c, sum)
		}
	}
	if b.vector && out.cols == 1 {
		out.vector = true
	}
	return out
}

// Slice returns the rlen×clen sub-matrix starting at (r0, c0).
// The caller guarantees the window is in bounds; violations panic.
func (m Matrix) Slice(r0, c0, rlen, clen int) Matrix {
	if r0 < 0 || c0 < 0 || rlen <= 0 || clen <= 0 || r0+rlen > m.rows || c0+clen > m.cols {
		panic(fmt.Sprintf("linalg: slice [%d:%d, %d:%d] out of bounds for %dx%d matrix",
			r0, r0+rlen, c0, c0+clen, m.rows, m.cols))
	}
	out := New(m.kind, rlen, clen)
	for r := 0; r < rlen; r++ {
		for c := 0; c < clen; c++ {
			out.set(r, c, m.At(r0+r, c0+c))
		}
	}
	return out
}

// SelectRows projects the given rows, in the supplied index order.
func (m Matrix) SelectRows(idx ...int) Matrix {
	out := New(m.kind, len(idx), m.cols)
	for r, src := range idx {
		for c := 0; c < m.cols; c++ {
			out.set(r, c, m.At(src, c))
		}
	}
	return out
}

// SelectColumns projects the given columns, in the supplied index order.
func (m Matrix) SelectColumns(idx ...int) Matrix {
	out := New(m.kind, m.rows, len(idx))
	for c, src := range idx {
		for r := 0; r < m.rows; r++ {
			out.set(r, c, m.At(r, src))
		}
	}
	return out
}

// Column extracts one column as a vector.
func (m Matrix) Column(c int) Matrix {
	out := NewVector(m.kind, m.rows)
	for r := 0; r < m.rows; r++ {
		out.set(r, 0, m.At(r, c))
	}
	return out
}

// ElementsAt looks up the elements at the given (row, col) coordinates.
// Any out-of-bounds coordinate fails with ErrOutOfRange.
func (m Matrix) ElementsAt(coords [][2]int) ([]complex128, error) {
	out := make([]complex128, len(coords))
	for i, rc := range coords {
		r, c := rc[0], rc[1]
		if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
			return nil, fmt.Errorf("ElementsAt: %w: (%d,%d) in %dx%d matrix", ErrOutOfRange, r, c, m.rows, m.cols)
		}
		out[i] = m.At(r, c)
	}
	return out, nil
}

// ReplaceElement returns a copy of the matrix with the element at (r, c)
// replaced by v.
func (m Matrix) ReplaceElement(r, c int, v complex128) (Matrix, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return Matrix{}, fmt.Errorf("ReplaceElement: %w: (%d,%d) in %dx%d matrix", ErrOutOfRange, r, c, m.rows, m.cols)
	}
	out := m.Clone()
	out.set(r, c, v)
	return out, nil
}

// ApproximateZeros rounds every element whose modulus is below eps to
// exact zero, leaving all other elements unchanged. Used to suppress
// floating noise after decompositions.
func (m Matrix) ApproximateZeros(eps float64) Matrix {
	out := m.Clone()
	for i, v := range out.data {
		if modulus(v) < eps {
			out.data[i] = 0
		}
	}
	return out
}

// reverseRows returns the matrix with row order reversed.
func (m Matrix) reverseRows() Matrix {
	out := m.Clone()
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.set(r, c, m.At(m.rows-1-r, c))
		}
	}
	return out
}

// reverseCols returns the matrix with column order reversed.
func (m Matrix) reverseCols() Matrix {
	out := m.Clone()
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			out.set(r, c, m.At(r, m.cols-1-c))
		}
	}
	return out
}

// equalWithin compares two same-shaped matrices elementwise within eps,
// with NaN-vs-NaN components accepted as equal.
func equalWithin(a, b Matrix, eps float64) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if !scalarClose(a.data[i], b.data[i], eps) {
			return false
		}
	}
	return true
}

// vectorOf reshapes a single-row or single-column matrix into a vector
// carrying the same elements.
func vectorOf(m Matrix) Matrix {
	n := m.rows * m.cols
	out := NewVector(m.kind, n)
	copy(out.data, m.data)
	return out
}
