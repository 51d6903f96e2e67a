package linalg

import (
	"math"
	"math/cmplx"
)

// householder builds the k×k orthogonal (real) or unitary (complex)
// reflector that zeroes every entry of the column vector v but the
// leading one. v is the active sub-column of a panel; the reflector acts
// on the trailing len(v) window and is the identity elsewhere, which
// embeds it into the full k×k problem by zero left-padding.
//
// An empty column, or a real column whose tail is already effectively
// zero, yields the identity.
func householder(v Matrix, k int, eps float64) Matrix {
	if len(v.data) == 0 {
		return Identity(v.kind, k)
	}
	if v.kind.Complex() {
		return householderComplex(v, k)
	}
	return householderReal(v, k, eps)
}

func householderReal(v Matrix, k int, eps float64) Matrix {
	m := len(v.data)
	v0 := real(v.data[0])

	tailNormSq := 0.0
	for _, x := range v.data[1:] {
		tailNormSq += real(x) * real(x)
	}
	// Column already reduced.
	if tailNormSq < eps {
		return Identity(v.kind, k)
	}

	// v0' picks the branch that avoids catastrophic cancellation when v0
	// and the column norm are close in magnitude.
	norm := math.Sqrt(v0*v0 + tailNormSq)
	var v0p float64
	if v0 <= 0 {
		v0p = v0 - norm
	} else {
		v0p = -tailNormSq / (v0 + norm)
	}

	u := make([]float64, m)
	u[0] = 1
	for i, x := range v.data[1:] {
		u[i+1] = real(x) / v0p
	}
	scale := 2 * v0p * v0p / (tailNormSq + v0p*v0p)

	h := Identity(v.kind, k)
	offset := k - m
	for r := 0; r < m; r++ {
		for c := 0; c < m; c++ {
			e := -scale * u[c] * u[r]
			if r == c {
				e++
			}
			h.set(offset+r, offset+c, complex(e, 0))
		}
	}
	return h
}

func householderComplex(v Matrix, k int) Matrix {
	m := len(v.data)

	normSq := 0.0
	for _, x := range v.data {
		normSq += real(x)*real(x) + imag(x)*imag(x)
	}
	if normSq == 0 {
		return Identity(v.kind, k)
	}
	norm := math.Sqrt(normSq)

	alpha := cmplx.Exp(complex(0, cmplx.Phase(v.data[0]))) * complex(norm, 0)

	u := make([]complex128, m)
	copy(u, v.data)
	u[0] += alpha

	uNormSq := 0.0
	for _, x := range u {
		uNormSq += real(x)*real(x) + imag(x)*imag(x)
	}
	uNorm := complex(math.Sqrt(uNormSq), 0)
	for i := range u {
		u[i] /= uNorm
	}

	// H = I − 2·u·uᴴ; conjugating the row factor keeps H unitary.
	h := Identity(v.kind, k)
	offset := k - m
	for r := 0; r < m; r++ {
		for c := 0; c < m; c++ {
			e := -2 * u[r] * cmplx.Conj(u[c])
			if r == c {
				e++
			}
			h.set(offset+r, offset+c, e)
		}
	}
	return h
}
