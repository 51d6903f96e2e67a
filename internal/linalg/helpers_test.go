package linalg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// requireCloseTo fails unless got matches want elementwise within eps,
// comparing real and imaginary components separately.
func requireCloseTo(t *testing.T, want, got Matrix, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows(), "row count")
	require.Equal(t, want.Cols(), got.Cols(), "column count")
	for r := 0; r < want.Rows(); r++ {
		for c := 0; c < want.Cols(); c++ {
			w, g := want.At(r, c), got.At(r, c)
			require.InDelta(t, real(w), real(g), eps, "real part at (%d,%d)", r, c)
			require.InDelta(t, imag(w), imag(g), eps, "imag part at (%d,%d)", r, c)
		}
	}
}

// randomMatrix fills a rows×cols matrix with values in [-1, 1).
func randomMatrix(rng *rand.Rand, kind Kind, rows, cols int) Matrix {
	m := New(kind, rows, cols)
	for i := range m.data {
		if kind.Complex() {
			m.data[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
		} else {
			m.data[i] = complex(rng.Float64()*2-1, 0)
		}
	}
	return m
}

// randomLower builds a random lower-triangular matrix with the diagonal
// kept away from zero so substitution never hits a singular pivot.
func randomLower(rng *rand.Rand, n int) Matrix {
	m := New(F64, n, n)
	for r := 0; r < n; r++ {
		for c := 0; c < r; c++ {
			m.set(r, c, complex(rng.Float64()*2-1, 0))
		}
		m.set(r, r, complex(1+rng.Float64(), 0))
	}
	return m
}

// randomVector fills a length-n vector with values in [-1, 1).
func randomVector(rng *rand.Rand, n int) Matrix {
	v := NewVector(F64, n)
	for i := range v.data {
		v.data[i] = complex(rng.Float64()*2-1, 0)
	}
	return v
}
