package linalg

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Decode reads a flat little-endian buffer of fixed-width elements in
// row-major order into a matrix (rank-2 shape) or vector (rank-1 shape).
func Decode(buf []byte, kind Kind, shape Shape) (Matrix, error) {
	if err := shape.Validate(); err != nil {
		return Matrix{}, fmt.Errorf("Decode: %w", err)
	}
	want := shape.NumElements() * kind.Size()
	if len(buf) != want {
		return Matrix{}, fmt.Errorf("Decode: %w: have %d bytes, want %d for shape %v kind %s",
			ErrBufferSize, len(buf), want, shape, kind)
	}

	var m Matrix
	if len(shape) == 1 {
		m = NewVector(kind, shape[0])
	} else {
		m = New(kind, shape[0], shape[1])
	}
	width := kind.Size()
	for i := range m.data {
		m.data[i] = decodeElement(buf[i*width:], kind)
	}
	return m, nil
}

// Encode writes the matrix elements row-major into a flat little-endian
// buffer at the requested output kind. Encoding a complex matrix at a
// real kind discards imaginary parts.
func Encode(m Matrix, kind Kind) []byte {
	width := kind.Size()
	buf := make([]byte, len(m.data)*width)
	for i, v := range m.data {
		encodeElement(buf[i*width:], kind, v)
	}
	return buf
}

func decodeElement(b []byte, kind Kind) complex128 {
	switch kind {
	case F32:
		return complex(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), 0)
	case F64:
		return complex(math.Float64frombits(binary.LittleEndian.Uint64(b)), 0)
	case C64:
		re := math.Float32frombits(binary.LittleEndian.Uint32(b))
		im := math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
		return complex(float64(re), float64(im))
	case C128:
		re := math.Float64frombits(binary.LittleEndian.Uint64(b))
		im := math.Float64frombits(binary.LittleEndian.Uint64(b[8:]))
		return complex(re, im)
	default:
		panic("unknown element kind")
	}
}

func encodeElement(b []byte, kind Kind, v complex128) {
	switch kind {
	case F32:
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(real(v))))
	case F64:
		binary.LittleEndian.PutUint64(b, math.Float64bits(real(v)))
	case C64:
		binary.LittleEndian.PutUint32(b, math.Float32bits(float32(real(v))))
		binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(imag(v))))
	case C128:
		binary.LittleEndian.PutUint64(b, math.Float64bits(real(v)))
		binary.LittleEndian.PutUint64(b[8:], math.Float64bits(imag(v)))
	default:
		panic("unknown element kind")
	}
}
