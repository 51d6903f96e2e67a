// Package linalg implements the dense-matrix decomposition engine:
// triangular solve, QR decomposition, Cholesky decomposition, LU
// decomposition with partial pivoting, and Hermitian eigendecomposition
// via Hessenberg reduction and unshifted QR iteration.
//
// The package operates on exactly one matrix or vector per call at a
// caller-chosen element kind (real or complex, fixed width). Matrices are
// immutable values: every transform returns a new matrix, and no state is
// shared across calls, so every entry point is safe to call concurrently
// on disjoint inputs.
//
// Elements cross the package boundary as flat row-major buffers plus a
// shape and a Kind descriptor (see Decode/Encode). Internally all
// arithmetic runs in complex128; the kind selects the codec width and the
// real/complex algorithm branches.
//
// Tolerances (eps) and iteration caps are explicit parameters on every
// operation that needs them. There are no ambient defaults.
package linalg
