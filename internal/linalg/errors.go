// Package linalg: sentinel error set. All operations return these
// sentinels (possibly wrapped with operation context via %w) and callers
// match them with errors.Is. Panics are reserved for programmer errors in
// private helpers.

package linalg

import "errors"

var (
	// ErrSingular is returned when a zero-magnitude pivot is encountered
	// during triangular solve or LU elimination.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNotHermitian signals that a matrix required to equal its own
	// conjugate transpose violated that property within the tolerance.
	ErrNotHermitian = errors.New("linalg: matrix is not equal to its conjugate transpose")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrShape indicates incompatible or unsupported dimensions, e.g. QR
	// on a matrix with fewer rows than columns, or operand mismatch.
	ErrShape = errors.New("linalg: incompatible shape")

	// ErrOutOfRange indicates that an element coordinate is outside the
	// matrix bounds.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrBufferSize is returned by Decode when the buffer length does not
	// match shape times element width.
	ErrBufferSize = errors.New("linalg: buffer size does not match shape")
)
