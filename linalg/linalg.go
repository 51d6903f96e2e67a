package linalg

import (
	"encoding/binary"
	"math"

	"github.com/smaximov/nx/internal/linalg"
)

// Kind represents the element kind of a buffer: real or complex, fixed
// width.
type Kind = linalg.Kind

// Supported element kinds.
const (
	F32  = linalg.F32
	F64  = linalg.F64
	C64  = linalg.C64
	C128 = linalg.C128
)

// Shape describes the dimensions accompanying a raw buffer: (length) for
// a vector, (rows, cols) for a matrix.
type Shape = linalg.Shape

// Matrix is the engine's immutable dense matrix value, available for
// in-process callers that want to stay above the buffer boundary.
type Matrix = linalg.Matrix

// Option records, re-exported per operation.
type (
	Transform    = linalg.Transform
	SolveOptions = linalg.SolveOptions
	QRMode       = linalg.QRMode
	QROptions    = linalg.QROptions
	LUOptions    = linalg.LUOptions
	EighOptions  = linalg.EighOptions
)

// Transform and mode values.
const (
	TransformNone      = linalg.TransformNone
	TransformTranspose = linalg.TransformTranspose
	QRModeFull         = linalg.QRModeFull
	QRModeReduced      = linalg.QRModeReduced
)

// Sentinel errors, matched with errors.Is.
var (
	ErrSingular     = linalg.ErrSingular
	ErrNotHermitian = linalg.ErrNotHermitian
	ErrNonSquare    = linalg.ErrNonSquare
	ErrShape        = linalg.ErrShape
	ErrOutOfRange   = linalg.ErrOutOfRange
	ErrBufferSize   = linalg.ErrBufferSize
)

// EncodeFloat64s packs float64 values into a flat little-endian F64
// buffer, the common way to hand real data to the entry points.
func EncodeFloat64s(vals []float64) []byte {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

// DecodeFloat64s unpacks a flat little-endian F64 buffer.
func DecodeFloat64s(buf []byte) []float64 {
	vals := make([]float64, len(buf)/8)
	for i := range vals {
		vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return vals
}

// Decode reads a flat little-endian buffer into a matrix or vector.
func Decode(buf []byte, kind Kind, shape Shape) (Matrix, error) {
	return linalg.Decode(buf, kind, shape)
}

// Encode writes a matrix row-major into a flat little-endian buffer at
// the given output kind.
func Encode(m Matrix, kind Kind) []byte {
	return linalg.Encode(m, kind)
}

// Dot computes the matrix product conjugating the second operand.
func Dot(a, b Matrix) (Matrix, error) { return linalg.Dot(a, b) }

// DotReal computes the plain, non-conjugating matrix product.
func DotReal(a, b Matrix) (Matrix, error) { return linalg.DotReal(a, b) }

// Transpose swaps rows and columns of the buffer seen as shape-shaped
// elements of the given kind.
func Transpose(buf []byte, shape Shape, kind, out Kind) ([]byte, Shape, error) {
	m, err := linalg.Decode(buf, kind, shape)
	if err != nil {
		return nil, nil, err
	}
	t := m.Transpose()
	return linalg.Encode(t, out), t.Shape(), nil
}

// Adjoint conjugate-transposes the buffer.
func Adjoint(buf []byte, shape Shape, kind, out Kind) ([]byte, Shape, error) {
	m, err := linalg.Decode(buf, kind, shape)
	if err != nil {
		return nil, nil, err
	}
	t := m.Adjoint()
	return linalg.Encode(t, out), t.Shape(), nil
}

// ApproximateZeros rounds every element with magnitude below eps to
// exact zero.
func ApproximateZeros(buf []byte, shape Shape, kind Kind, eps float64, out Kind) ([]byte, error) {
	m, err := linalg.Decode(buf, kind, shape)
	if err != nil {
		return nil, err
	}
	return linalg.Encode(m.ApproximateZeros(eps), out), nil
}

// TriangularSolve solves the triangular system described by opts for the
// coefficient buffer a and right-hand side b. The result buffer has b's
// shape.
func TriangularSolve(a []byte, aShape Shape, b []byte, bShape Shape, kind Kind, opts SolveOptions, out Kind) ([]byte, error) {
	am, err := linalg.Decode(a, kind, aShape)
	if err != nil {
		return nil, err
	}
	bm, err := linalg.Decode(b, kind, bShape)
	if err != nil {
		return nil, err
	}
	x, err := linalg.TriangularSolve(am, bm, opts)
	if err != nil {
		return nil, err
	}
	return linalg.Encode(x, out), nil
}

// QR decomposes the buffer into orthogonal/unitary Q and upper
// triangular R with Q·R ≈ A.
func QR(a []byte, shape Shape, kind Kind, opts QROptions, out Kind) (q, r []byte, qShape, rShape Shape, err error) {
	m, err := linalg.Decode(a, kind, shape)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	qm, rm, err := linalg.QR(m, opts)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return linalg.Encode(qm, out), linalg.Encode(rm, out), qm.Shape(), rm.Shape(), nil
}

// Cholesky factors a Hermitian buffer into lower-triangular L with
// A = L·Lᴴ.
func Cholesky(a []byte, shape Shape, kind, out Kind) ([]byte, error) {
	m, err := linalg.Decode(a, kind, shape)
	if err != nil {
		return nil, err
	}
	l, err := linalg.Cholesky(m)
	if err != nil {
		return nil, err
	}
	return linalg.Encode(l, out), nil
}

// LU factors a square buffer with partial pivoting into P, L, U with
// A = P·L·U. All three results share the input's square shape.
func LU(a []byte, shape Shape, kind Kind, opts LUOptions, out Kind) (p, l, u []byte, err error) {
	m, err := linalg.Decode(a, kind, shape)
	if err != nil {
		return nil, nil, nil, err
	}
	pm, lm, um, err := linalg.LU(m, opts)
	if err != nil {
		return nil, nil, nil, err
	}
	return linalg.Encode(pm, out), linalg.Encode(lm, out), linalg.Encode(um, out), nil
}

// Eigh computes the Hermitian eigendecomposition. values is a length-n
// buffer of real eigenvalues, vectors an n×n buffer of eigenvectors in
// columns.
func Eigh(a []byte, shape Shape, kind Kind, opts EighOptions, out Kind) (values, vectors []byte, err error) {
	m, err := linalg.Decode(a, kind, shape)
	if err != nil {
		return nil, nil, err
	}
	vals, vecs, err := linalg.Eigh(m, opts)
	if err != nil {
		return nil, nil, err
	}
	return linalg.Encode(vals, out), linalg.Encode(vecs, out), nil
}
