package linalg

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEigh_TwoByTwo(t *testing.T) {
	a := realMatrix(2, 2, []float64{2, 1, 1, 2})

	values, vectors, err := Eigh(a, EighOptions{Eps: 1e-14, MaxIter: 1000})
	require.NoError(t, err)
	require.True(t, values.IsVector())
	require.Equal(t, Shape{2}, values.Shape())

	got := sortedEigenvalues(values)
	assert.InDelta(t, 1, got[0], 1e-6)
	assert.InDelta(t, 3, got[1], 1e-6)

	requireEigenpairs(t, a, values, vectors, 1e-6)
}

func TestEigh_ThreeByThree(t *testing.T) {
	a := realMatrix(3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})

	values, vectors, err := Eigh(a, EighOptions{Eps: 1e-12, MaxIter: 5000})
	require.NoError(t, err)

	requireEigenpairs(t, a, values, vectors, 1e-5)

	// The trace is preserved by the similarity transforms.
	sum := 0.0
	for i := 0; i < 3; i++ {
		sum += real(values.At(i, 0))
	}
	assert.InDelta(t, 9, sum, 1e-6)
}

func TestEigh_ComplexHermitian(t *testing.T) {
	a := FromSlice(C128, 2, 2, []complex128{
		2, complex(0, 1),
		complex(0, -1), 2,
	})

	values, vectors, err := Eigh(a, EighOptions{Eps: 1e-10, MaxIter: 2000})
	require.NoError(t, err)

	got := sortedEigenvalues(values)
	assert.InDelta(t, 1, got[0], 1e-5)
	assert.InDelta(t, 3, got[1], 1e-5)

	requireEigenpairs(t, a, values, vectors, 1e-5)
}

func TestEigh_NotHermitian(t *testing.T) {
	a := realMatrix(2, 2, []float64{1, 2, 3, 4})

	_, _, err := Eigh(a, EighOptions{Eps: 1e-9, MaxIter: 100})
	require.ErrorIs(t, err, ErrNotHermitian)
}

func TestEigh_NonSquare(t *testing.T) {
	_, _, err := Eigh(New(F64, 2, 3), EighOptions{Eps: 1e-9, MaxIter: 100})
	require.ErrorIs(t, err, ErrNonSquare)
}

func TestEigh_MaxIterExhaustionIsNotAnError(t *testing.T) {
	a := realMatrix(2, 2, []float64{2, 1, 1, 2})

	values, vectors, err := Eigh(a, EighOptions{Eps: 1e-9, MaxIter: 1})
	require.NoError(t, err, "exhausting the iteration cap returns the last iterate")
	require.Equal(t, Shape{2}, values.Shape())
	require.Equal(t, Shape{2, 2}, vectors.Shape())
}

func TestEigh_OneByOne(t *testing.T) {
	a := realMatrix(1, 1, []float64{5})

	values, vectors, err := Eigh(a, EighOptions{Eps: 1e-9, MaxIter: 10})
	require.NoError(t, err)
	assert.InDelta(t, 5, real(values.At(0, 0)), 1e-12)
	requireCloseTo(t, Identity(F64, 1), vectors, 1e-12)
}

// sortedEigenvalues extracts the real eigenvalues in ascending order.
func sortedEigenvalues(values Matrix) []float64 {
	out := make([]float64, values.Rows())
	for i := range out {
		out[i] = real(values.At(i, 0))
	}
	sort.Float64s(out)
	return out
}

// requireEigenpairs checks A·v ≈ λ·v for every eigenpair.
func requireEigenpairs(t *testing.T, a, values, vectors Matrix, eps float64) {
	t.Helper()
	for i := 0; i < values.Rows(); i++ {
		lambda := real(values.At(i, 0))
		v := vectors.Column(i).asMatrix()
		av := matmul(a, v, false)
		for r := 0; r < v.Rows(); r++ {
			diff := av.At(r, 0) - complex(lambda, 0)*v.At(r, 0)
			require.LessOrEqual(t, math.Abs(real(diff)), eps, "eigenpair %d, row %d (real)", i, r)
			require.LessOrEqual(t, math.Abs(imag(diff)), eps, "eigenpair %d, row %d (imag)", i, r)
		}
	}
}
