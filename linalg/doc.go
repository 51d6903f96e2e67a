// Package linalg is the public boundary of the dense-matrix
// decomposition engine. Entry points consume flat row-major element
// buffers plus shape and kind descriptors, and produce flat buffers in a
// caller-chosen output kind; the calling runtime owns all shape and kind
// validation beyond the documented preconditions and reshapes outputs
// against its own metadata.
//
// The engine itself lives in internal/linalg; this package re-exports
// its types and wraps each decomposition in the buffer contract.
//
// Example:
//
//	a := linalg.EncodeFloat64s([]float64{4, 3, 6, 3})
//	p, l, u, err := linalg.LU(a, linalg.Shape{2, 2}, linalg.F64, linalg.LUOptions{Eps: 1e-12}, linalg.F64)
package linalg
