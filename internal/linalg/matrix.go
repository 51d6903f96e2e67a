package linalg

import "fmt"

// Matrix is a dense rectangular matrix of scalars at a declared element
// kind. A vector is a degenerate matrix with one dimension, reflected as
// a single column when it participates in matrix-shaped operations.
//
// Matrices are immutable values: every transform allocates and returns a
// new matrix. Arithmetic runs in complex128 regardless of kind; real
// kinds simply carry a zero imaginary part.
type Matrix struct {
	kind   Kind
	rows   int
	cols   int
	vector bool
	data   []complex128 // row-major
}

// New creates a zero-filled rows×cols matrix of the given kind.
func New(kind Kind, rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("linalg: invalid matrix dimensions %dx%d", rows, cols))
	}
	return Matrix{
		kind: kind,
		rows: rows,
		cols: cols,
		data: make([]complex128, rows*cols),
	}
}

// NewVector creates a zero-filled length-n vector of the given kind.
func NewVector(kind Kind, n int) Matrix {
	m := New(kind, n, 1)
	m.vector = true
	return m
}

// FromSlice creates a rows×cols matrix from row-major data.
// The slice is copied.
func FromSlice(kind Kind, rows, cols int, data []complex128) Matrix {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("linalg: %dx%d matrix requires %d elements, got %d", rows, cols, rows*cols, len(data)))
	}
	m := New(kind, rows, cols)
	copy(m.data, data)
	return m
}

// VectorFromSlice creates a length-n vector from the given elements.
// The slice is copied.
func VectorFromSlice(kind Kind, data []complex128) Matrix {
	m := FromSlice(kind, len(data), 1, data)
	m.vector = true
	return m
}

// Identity creates the n×n identity matrix of the given kind.
func Identity(kind Kind, n int) Matrix {
	m := New(kind, n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Kind returns the matrix element kind.
func (m Matrix) Kind() Kind { return m.kind }

// Rows returns the row count. A vector counts one row per element.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m Matrix) Cols() int { return m.cols }

// IsVector reports whether the value was created as a vector.
func (m Matrix) IsVector() bool { return m.vector }

// Shape returns the boundary shape descriptor: (length) for a vector,
// (rows, cols) for a matrix.
func (m Matrix) Shape() Shape {
	if m.vector {
		return Shape{m.rows}
	}
	return Shape{m.rows, m.cols}
}

// At returns the element at (r, c).
// Panics if the coordinates are out of bounds.
func (m Matrix) At(r, c int) complex128 {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("linalg: index (%d,%d) out of bounds for %dx%d matrix", r, c, m.rows, m.cols))
	}
	return m.data[r*m.cols+c]
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := m
	out.data = append([]complex128(nil), m.data...)
	return out
}

// asMatrix drops the vector marker, reflecting a vector into its n×1
// column form.
func (m Matrix) asMatrix() Matrix {
	out := m
	out.vector = false
	return out
}

// set mutates an element in place. Only for freshly allocated matrices
// that have not been returned to a caller yet.
func (m Matrix) set(r, c int, v complex128) {
	m.data[r*m.cols+c] = v
}

// String returns a human-readable description of the matrix.
func (m Matrix) String() string {
	if m.vector {
		return fmt.Sprintf("Vector[%s](%d)", m.kind, m.rows)
	}
	return fmt.Sprintf("Matrix[%s](%dx%d)", m.kind, m.rows, m.cols)
}
