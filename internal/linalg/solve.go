package linalg

import "fmt"

// Transform selects the optional transformation applied to the
// coefficient matrix before a triangular solve.
type Transform int

// Supported coefficient transforms.
const (
	TransformNone Transform = iota
	TransformTranspose
)

// SolveOptions parameterizes a triangular solve.
//
//	TransformA — applied to A before everything else.
//	Lower      — whether A is lower (true) or upper (false) triangular.
//	Left       — solve A·X = B (true) or X·A = B (false).
type SolveOptions struct {
	TransformA Transform
	Lower      bool
	Left       bool
}

// TriangularSolve solves a triangular system for any combination of
// (lower/upper, left/right, transpose-A). Every variant is normalized to
// one canonical lower/left forward substitution via layout transforms:
//
//	lower, left  — base case, forward substitution.
//	upper, left  — reverse A's rows and columns and B's rows, solve,
//	               reverse the result rows back.
//	any, right   — transpose both sides (Xᵗ·Aᵗ = Bᵗ flips triangularity),
//	               recurse on the left-side form, transpose back.
//
// A zero-magnitude pivot fails with ErrSingular. A matrix B is solved
// independently per column.
func TriangularSolve(a, b Matrix, opts SolveOptions) (Matrix, error) {
	if a.rows != a.cols {
		return Matrix{}, fmt.Errorf("TriangularSolve: %w: %dx%d", ErrNonSquare, a.rows, a.cols)
	}
	if opts.TransformA == TransformTranspose {
		a = a.asMatrix().Transpose()
	}

	switch {
	case opts.Left && opts.Lower:
		return forwardSolve(a, b)

	case opts.Left:
		x, err := forwardSolve(a.reverseRows().reverseCols(), b.reverseRows())
		if err != nil {
			return Matrix{}, err
		}
		return x.reverseRows(), nil

	default:
		// X·A = B  ⇔  Aᵗ·Xᵗ = Bᵗ with A's triangularity flipped.
		xt, err := TriangularSolve(a.Transpose(), b.Transpose(), SolveOptions{
			Lower: !opts.Lower,
			Left:  true,
		})
		if err != nil {
			return Matrix{}, err
		}
		x := xt.asMatrix().Transpose()
		if b.vector {
			x = vectorOf(x)
		}
		return x, nil
	}
}

// forwardSolve is the canonical substitution: A lower triangular, solve
// A·X = B column by column in ascending row order.
func forwardSolve(a, b Matrix) (Matrix, error) {
	n := a.rows
	if b.rows != n {
		return Matrix{}, fmt.Errorf("TriangularSolve: %w: A is %dx%d, B has %d rows", ErrShape, n, n, b.rows)
	}

	x := New(a.kind, b.rows, b.cols)
	x.vector = b.vector
	for c := 0; c < b.cols; c++ {
		for i := 0; i < n; i++ {
			pivot := a.At(i, i)
			if modulus(pivot) == 0 {
				return Matrix{}, fmt.Errorf("TriangularSolve: %w: zero pivot at row %d", ErrSingular, i)
			}
			sum := b.At(i, c)
			for j := 0; j < i; j++ {
				sum -= a.At(i, j) * x.At(j, c)
			}
			x.set(i, c, sum/pivot)
		}
	}
	return x, nil
}
