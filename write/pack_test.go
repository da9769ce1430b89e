// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

func TestPadTo4(t *testing.T) {
	assert.Equal(t, 0, padTo4(0))
	assert.Equal(t, 4, padTo4(1))
	assert.Equal(t, 4, padTo4(4))
	assert.Equal(t, 8, padTo4(5))
}

func TestCreateAccessorDefBounds(t *testing.T) {
	a := &document.Accessor{
		ComponentType: document.Float,
		Type:          document.Vec3,
		Count:         2,
		Array:         []float64{1, 2, 3, -1, 5, 0},
	}
	def, err := createAccessorDef(a)
	require.NoError(t, err)
	assert.Equal(t, int64(gltf.FLOAT), def.ComponentType)
	assert.Equal(t, gltf.VEC3, def.Type)
	assert.Equal(t, int64(2), def.Count)
	assert.Equal(t, []float32{-1, 2, 0}, def.Min)
	assert.Equal(t, []float32{1, 5, 3}, def.Max)
}

func TestConcatAccessorsPadsEachBlobTo4(t *testing.T) {
	a := &document.Accessor{ComponentType: document.UnsignedByte, Type: document.Scalar, Count: 3, Array: []float64{1, 2, 3}}
	b := &document.Accessor{ComponentType: document.UnsignedByte, Type: document.Scalar, Count: 1, Array: []float64{9}}
	res, view, err := concatAccessors([]*document.Accessor{a, b}, 0, 0, 0, gltf.ELEMENT_ARRAY_BUFFER)
	require.NoError(t, err)
	// a: 3 bytes padded to 4; b: 1 byte padded to 4.
	assert.Equal(t, 8, len(res.bytes))
	assert.Equal(t, int64(0), res.defs[0].ByteOffset)
	assert.Equal(t, int64(4), res.defs[1].ByteOffset)
	assert.Equal(t, int64(8), view.ByteLength)
	assert.Equal(t, int64(gltf.ELEMENT_ARRAY_BUFFER), view.Target)
}

func TestInterleaveAccessorsStrideAndOffsets(t *testing.T) {
	pos := &document.Accessor{
		ComponentType: document.Float, Type: document.Vec3, Count: 3,
		Array: []float64{0, 0, 0, 1, 1, 1, 2, 2, 2},
	}
	nrm := &document.Accessor{
		ComponentType: document.Float, Type: document.Vec3, Count: 3,
		Array: []float64{0, 1, 0, 0, 1, 0, 0, 1, 0},
	}
	res, view, err := interleaveAccessors([]*document.Accessor{pos, nrm}, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(24), view.ByteStride)
	assert.Equal(t, int64(72), view.ByteLength)
	assert.Equal(t, int64(gltf.ARRAY_BUFFER), view.Target)
	assert.Equal(t, int64(0), res.defs[0].ByteOffset)
	assert.Equal(t, int64(12), res.defs[1].ByteOffset)

	// Vertex 1's normal Y component (value 1) lives at
	// vertex*stride + normalOffset + component*size.
	off := 1*24 + 12 + 1*4
	got := math.Float32frombits(binary.LittleEndian.Uint32(res.bytes[off : off+4]))
	assert.Equal(t, float32(1), got)
}

func TestInterleaveAccessorsRejectsMismatchedCount(t *testing.T) {
	a := &document.Accessor{ComponentType: document.Float, Type: document.Vec3, Count: 3, Array: make([]float64, 9)}
	b := &document.Accessor{ComponentType: document.Float, Type: document.Vec3, Count: 2, Array: make([]float64, 6)}
	_, _, err := interleaveAccessors([]*document.Accessor{a, b}, 0, 0, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGraph)
}

func TestPutComponentRoundTrip(t *testing.T) {
	buf := make([]byte, 4)
	require.NoError(t, putComponent(buf, document.Float, 3.5))
	assert.Equal(t, float32(3.5), math.Float32frombits(binary.LittleEndian.Uint32(buf)))

	buf = make([]byte, 2)
	require.NoError(t, putComponent(buf, document.UnsignedShort, 65535))
	assert.Equal(t, uint16(65535), binary.LittleEndian.Uint16(buf))
}
