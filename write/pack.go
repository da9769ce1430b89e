// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"encoding/binary"
	"math"

	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// padTo4 rounds n up to the next multiple of 4.
func padTo4(n int) int {
	if r := n % 4; r != 0 {
		return n + 4 - r
	}
	return n
}

// componentTypeCode maps a document.ComponentType to its glTF wire
// value.
func componentTypeCode(c document.ComponentType) (int64, error) {
	switch c {
	case document.Byte:
		return gltf.BYTE, nil
	case document.UnsignedByte:
		return gltf.UNSIGNED_BYTE, nil
	case document.Short:
		return gltf.SHORT, nil
	case document.UnsignedShort:
		return gltf.UNSIGNED_SHORT, nil
	case document.UnsignedInt:
		return gltf.UNSIGNED_INT, nil
	case document.Float:
		return gltf.FLOAT, nil
	default:
		return 0, fatalInvalidGraph("unsupported component type %d", c)
	}
}

// elementTypeCode maps a document.ElementType to its glTF wire value.
func elementTypeCode(e document.ElementType) (string, error) {
	switch e {
	case document.Scalar:
		return gltf.SCALAR, nil
	case document.Vec2:
		return gltf.VEC2, nil
	case document.Vec3:
		return gltf.VEC3, nil
	case document.Vec4:
		return gltf.VEC4, nil
	case document.Mat2:
		return gltf.MAT2, nil
	case document.Mat3:
		return gltf.MAT3, nil
	case document.Mat4:
		return gltf.MAT4, nil
	default:
		return "", fatalInvalidGraph("unsupported element type %d", e)
	}
}

// putComponent writes a single scalar value from an accessor's Array
// into dst at its declared component type, little-endian.
func putComponent(dst []byte, c document.ComponentType, v float64) error {
	switch c {
	case document.Byte:
		dst[0] = byte(int8(v))
	case document.UnsignedByte:
		dst[0] = byte(uint8(v))
	case document.Short:
		binary.LittleEndian.PutUint16(dst, uint16(int16(v)))
	case document.UnsignedShort:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case document.UnsignedInt:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	case document.Float:
		binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
	default:
		return fatalInvalidGraph("unsupported component type %d", c)
	}
	return nil
}

// createAccessorDef populates the accessor JSON fields that do not
// depend on packing placement: type, componentType, count,
// normalized and min/max. bufferView and byteOffset are filled in by
// the packer once placement is known.
func createAccessorDef(a *document.Accessor) (gltf.Accessor, error) {
	ct, err := componentTypeCode(a.ComponentType)
	if err != nil {
		return gltf.Accessor{}, err
	}
	et, err := elementTypeCode(a.Type)
	if err != nil {
		return gltf.Accessor{}, err
	}
	def := gltf.Accessor{
		ComponentType: ct,
		Count:         int64(a.Count),
		Type:          et,
		Normalized:    a.Normalized,
		Name:          a.Name,
		Extras:        a.Extras,
		Extensions:    a.Extensions,
	}
	if min, max := a.Bounds(); min != nil {
		def.Min = toFloat32s(min)
		def.Max = toFloat32s(max)
	}
	return def, nil
}

func toFloat32s(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}

// packResult is the output of packing one group of accessors: the raw
// bytes (already padded) plus the accessor JSON defs in the same
// order as the input, with bufferView/byteOffset filled in against
// viewIndex.
type packResult struct {
	bytes []byte
	defs  []gltf.Accessor
}

// concatAccessors packs each accessor's raw bytes back-to-back,
// individually padded to a 4-byte boundary, and returns one
// buffer-view def alongside the packed bytes and per-accessor JSON
// defs.
func concatAccessors(accs []*document.Accessor, bufIdx, viewIndex int64, byteOffset int, target int64) (packResult, gltf.BufferView, error) {
	var out []byte
	defs := make([]gltf.Accessor, len(accs))
	for i, a := range accs {
		def, err := createAccessorDef(a)
		if err != nil {
			return packResult{}, gltf.BufferView{}, err
		}
		localOff := len(out)
		raw, err := packScalars(a)
		if err != nil {
			return packResult{}, gltf.BufferView{}, err
		}
		out = append(out, raw...)
		if pad := padTo4(len(raw)) - len(raw); pad > 0 {
			out = append(out, make([]byte, pad)...)
		}
		vi := viewIndex
		def.BufferView = &vi
		def.ByteOffset = int64(localOff)
		defs[i] = def
	}
	view := gltf.BufferView{
		Buffer:     bufIdx,
		ByteOffset: int64(byteOffset),
		ByteLength: int64(len(out)),
	}
	if target != 0 {
		view.Target = target
	}
	return packResult{bytes: out, defs: defs}, view, nil
}

// packScalars serializes one accessor's Array, tightly packed with no
// inter-element padding (used for the concatenated layout, where
// padding is applied once to the whole blob).
func packScalars(a *document.Accessor) ([]byte, error) {
	n := a.Type.Components()
	size := a.ComponentType.Size()
	out := make([]byte, a.Count*n*size)
	for i := 0; i < a.Count*n; i++ {
		if i >= len(a.Array) {
			break
		}
		if err := putComponent(out[i*size:(i+1)*size], a.ComponentType, a.Array[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// interleaveAccessors packs a primitive's attribute accessors into a
// single strided buffer view. All accessors must share the same
// count; stride is the sum of each accessor's 4-byte-padded element
// size.
func interleaveAccessors(accs []*document.Accessor, bufIdx, viewIndex int64, byteOffset int) (packResult, gltf.BufferView, error) {
	if len(accs) == 0 {
		return packResult{}, gltf.BufferView{}, nil
	}
	count := accs[0].Count
	offsets := make([]int, len(accs))
	stride := 0
	for i, a := range accs {
		if a.Count != count {
			return packResult{}, gltf.BufferView{}, fatalInvalidGraph(
				"interleaved accessors must share count: %d != %d", a.Count, count)
		}
		offsets[i] = stride
		stride += padTo4(a.Type.Components() * a.ComponentType.Size())
	}
	out := make([]byte, count*stride)
	defs := make([]gltf.Accessor, len(accs))
	for i, a := range accs {
		def, err := createAccessorDef(a)
		if err != nil {
			return packResult{}, gltf.BufferView{}, err
		}
		n := a.Type.Components()
		size := a.ComponentType.Size()
		for v := 0; v < count; v++ {
			for j := 0; j < n; j++ {
				idx := v*n + j
				if idx >= len(a.Array) {
					continue
				}
				dst := out[v*stride+offsets[i]+j*size : v*stride+offsets[i]+(j+1)*size]
				if err := putComponent(dst, a.ComponentType, a.Array[idx]); err != nil {
					return packResult{}, gltf.BufferView{}, err
				}
			}
		}
		vi := viewIndex
		def.BufferView = &vi
		def.ByteOffset = int64(offsets[i])
		defs[i] = def
	}
	view := gltf.BufferView{
		Buffer:     bufIdx,
		ByteOffset: int64(byteOffset),
		ByteLength: int64(len(out)),
		ByteStride: int64(stride),
		Target:     gltf.ARRAY_BUFFER,
	}
	return packResult{bytes: out, defs: defs}, view, nil
}
