package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		data []complex128
	}{
		{
			name: "f32 matrix",
			kind: F32,
			data: []complex128{1.5, -2.25, 0, 42.5, -0.5, 3},
		},
		{
			name: "f64 matrix",
			kind: F64,
			data: []complex128{1.25, -2.5, 1e-12, -1e300, 0.1, 7},
		},
		{
			name: "c64 matrix",
			kind: C64,
			data: []complex128{complex(1.5, -0.5), complex(-2, 3.25), 0, complex(0, 1), 2, complex(-1, -1)},
		},
		{
			name: "c128 matrix",
			kind: C128,
			data: []complex128{complex(1.25, -0.75), complex(-2e10, 3e-10), 0, complex(0, 1), 2, complex(-1, -1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := FromSlice(tt.kind, 2, 3, tt.data)
			buf := Encode(m, tt.kind)
			require.Len(t, buf, 6*tt.kind.Size())

			back, err := Decode(buf, tt.kind, Shape{2, 3})
			require.NoError(t, err)
			requireCloseTo(t, m, back, 0)
		})
	}
}

func TestDecode_Vector(t *testing.T) {
	buf := Encode(VectorFromSlice(F64, []complex128{1, 2, 3}), F64)

	v, err := Decode(buf, F64, Shape{3})
	require.NoError(t, err)
	assert.True(t, v.IsVector())
	assert.Equal(t, 3, v.Rows())
	assert.Equal(t, 1, v.Cols())
	assert.Equal(t, Shape{3}, v.Shape())
}

func TestDecode_BufferSizeMismatch(t *testing.T) {
	buf := make([]byte, 3*8)
	_, err := Decode(buf, F64, Shape{2, 2})
	require.ErrorIs(t, err, ErrBufferSize)
}

func TestDecode_BadShape(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{name: "rank 3", shape: Shape{2, 2, 2}},
		{name: "rank 0", shape: Shape{}},
		{name: "zero dimension", shape: Shape{0, 4}},
		{name: "negative dimension", shape: Shape{2, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(nil, F64, tt.shape)
			require.ErrorIs(t, err, ErrShape)
		})
	}
}

func TestEncode_ComplexToRealDropsImaginary(t *testing.T) {
	m := FromSlice(C128, 1, 2, []complex128{complex(1.5, -9), complex(-2, 4)})

	buf := Encode(m, F64)
	back, err := Decode(buf, F64, Shape{1, 2})
	require.NoError(t, err)

	assert.Equal(t, complex128(1.5), back.At(0, 0))
	assert.Equal(t, complex128(-2), back.At(0, 1))
}
