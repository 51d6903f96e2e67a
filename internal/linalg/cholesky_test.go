package linalg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCholesky_KnownFactorization(t *testing.T) {
	a := realMatrix(3, 3, []float64{4, 12, -16, 12, 37, -43, -16, -43, 98})

	l, err := Cholesky(a)
	require.NoError(t, err)

	want := realMatrix(3, 3, []float64{2, 0, 0, 6, 1, 0, -8, 5, 3})
	requireCloseTo(t, want, l, 1e-9)
	requireCloseTo(t, a, matmul(l, l.Adjoint(), false), 1e-9)
}

func TestCholesky_LowerTriangularResult(t *testing.T) {
	a := realMatrix(3, 3, []float64{25, 15, -5, 15, 18, 0, -5, 0, 11})

	l, err := Cholesky(a)
	require.NoError(t, err)

	for r := 0; r < 3; r++ {
		for c := r + 1; c < 3; c++ {
			require.Equal(t, complex128(0), l.At(r, c), "entry (%d,%d) above diagonal", r, c)
		}
	}
	requireCloseTo(t, a, matmul(l, l.Adjoint(), false), 1e-9)
}

func TestCholesky_NotHermitian(t *testing.T) {
	a := realMatrix(2, 2, []float64{1, 2, 3, 4})

	_, err := Cholesky(a)
	require.ErrorIs(t, err, ErrNotHermitian)
}

func TestCholesky_NonSquare(t *testing.T) {
	_, err := Cholesky(New(F64, 2, 3))
	require.ErrorIs(t, err, ErrNonSquare)
}

func TestCholesky_ComplexHermitian(t *testing.T) {
	a := FromSlice(C128, 2, 2, []complex128{
		2, complex(1, -1),
		complex(1, 1), 3,
	})

	l, err := Cholesky(a)
	require.NoError(t, err)
	requireCloseTo(t, a, matmul(l, l.Adjoint(), false), 1e-9)
}

func TestCholesky_ComplexNotHermitian(t *testing.T) {
	// Diagonal with a non-zero imaginary part violates A = Aᴴ.
	a := FromSlice(C128, 2, 2, []complex128{
		complex(2, 1), complex(1, -1),
		complex(1, 1), 3,
	})

	_, err := Cholesky(a)
	require.ErrorIs(t, err, ErrNotHermitian)
}
