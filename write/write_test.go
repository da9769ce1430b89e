// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// Scenario 1: a minimal material keeps its alpha mode, alpha cutoff
// and doubleSided flag, and its base color factor lands in
// pbrMetallicRoughness.
func TestScenarioMinimalMaterial(t *testing.T) {
	root := document.NewRoot()
	root.AddMaterial(&document.Material{
		BaseColorFactor: [4]float32{1, 0, 0, 1},
		MetallicFactor:  1,
		RoughnessFactor: 1,
		AlphaMode:       document.AlphaMask,
		AlphaCutoff:     0.33,
		DoubleSided:     true,
	})
	nd, err := Write(root, Options{Basename: "scene"})
	require.NoError(t, err)
	m := nd.JSON.Materials[0]
	assert.Equal(t, document.AlphaMask, m.AlphaMode)
	require.NotNil(t, m.AlphaCutoff)
	assert.InDelta(t, 0.33, *m.AlphaCutoff, 1e-6)
	assert.True(t, m.DoubleSided)
	require.NotNil(t, m.PBRMetallicRoughness)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, *m.PBRMetallicRoughness.BaseColorFactor)
}

// Scenario 2: two materials referencing the same image with identical
// sampler settings dedupe down to one sampler, one texture, one image.
func TestScenarioSharedSampler(t *testing.T) {
	root := document.NewRoot()
	tex := root.AddTexture(&document.Texture{MimeType: document.MimePNG, Data: []byte{1, 2, 3, 4}})
	sampler := document.TextureSampler{WrapS: 10497, WrapT: 10497}
	root.AddMaterial(&document.Material{
		AlphaMode:        document.AlphaOpaque,
		BaseColorTexture: &document.TexRef{Texture: tex, Sampler: sampler},
	})
	root.AddMaterial(&document.Material{
		AlphaMode:        document.AlphaOpaque,
		BaseColorTexture: &document.TexRef{Texture: tex, Sampler: sampler},
	})
	nd, err := Write(root, Options{Basename: "scene"})
	require.NoError(t, err)
	assert.Len(t, nd.JSON.Samplers, 1)
	assert.Len(t, nd.JSON.Textures, 1)
	assert.Len(t, nd.JSON.Images, 1)
}

// Scenario 3: one primitive with POSITION and NORMAL (both VEC3/F32,
// count 3) packs into one interleaved buffer view with stride 24.
func TestScenarioInterleavedPrimitive(t *testing.T) {
	root := document.NewRoot()
	buf := root.AddBuffer(&document.Buffer{})
	pos := buf.AddAccessor(&document.Accessor{
		ComponentType: document.Float, Type: document.Vec3, Count: 3,
		Array: []float64{0, 0, 0, 1, 0, 0, 0, 1, 0},
	})
	nrm := buf.AddAccessor(&document.Accessor{
		ComponentType: document.Float, Type: document.Vec3, Count: 3,
		Array: []float64{0, 1, 0, 0, 1, 0, 0, 1, 0},
	})
	mesh := root.AddMesh(&document.Mesh{})
	prim := mesh.AddPrimitive(&document.Primitive{Mode: document.Triangles})
	prim.AddAttribute("POSITION", pos)
	prim.AddAttribute("NORMAL", nrm)

	nd, err := Write(root, Options{Basename: "scene"})
	require.NoError(t, err)
	require.Len(t, nd.JSON.BufferViews, 1)
	view := nd.JSON.BufferViews[0]
	assert.Equal(t, int64(24), view.ByteStride)
	assert.Equal(t, int64(72), view.ByteLength)
	assert.Equal(t, int64(gltf.ARRAY_BUFFER), view.Target)

	posDef := nd.JSON.Accessors[indexOfAccessorWithOffset(nd.JSON.Accessors, 0)]
	nrmDef := nd.JSON.Accessors[indexOfAccessorWithOffset(nd.JSON.Accessors, 12)]
	assert.Equal(t, int64(0), posDef.ByteOffset)
	assert.Equal(t, int64(12), nrmDef.ByteOffset)
}

func indexOfAccessorWithOffset(accs []gltf.Accessor, off int64) int {
	for i, a := range accs {
		if a.ByteOffset == off {
			return i
		}
	}
	return -1
}

// Scenario 4: GLB packaging with one buffer and one PNG texture stores
// exactly one resource under the sentinel key, references the image
// via bufferView, and omits buffers[0].uri.
func TestScenarioGLBSingleBuffer(t *testing.T) {
	root := document.NewRoot()
	buf := root.AddBuffer(&document.Buffer{})
	buf.AddAccessor(&document.Accessor{ComponentType: document.Float, Type: document.Scalar, Count: 1, Array: []float64{1}})
	root.AddTexture(&document.Texture{MimeType: document.MimePNG, Data: []byte{1, 2, 3, 4, 5}})

	nd, err := Write(root, Options{Basename: "scene", IsGLB: true})
	require.NoError(t, err)
	assert.Len(t, nd.Resources, 1)
	_, ok := nd.Resources[glbSentinelURI]
	assert.True(t, ok)
	require.Len(t, nd.JSON.Images, 1)
	assert.NotNil(t, nd.JSON.Images[0].BufferView)
	assert.Empty(t, nd.JSON.Images[0].URI)
	assert.Empty(t, nd.JSON.Buffers[0].URI)
}

// Scenario 5: two buffers with basename "scene" get suffixed external
// names.
func TestScenarioExternalMultiBufferNaming(t *testing.T) {
	root := document.NewRoot()
	b1 := root.AddBuffer(&document.Buffer{})
	b1.AddAccessor(&document.Accessor{ComponentType: document.Float, Type: document.Scalar, Count: 1, Array: []float64{1}})
	b2 := root.AddBuffer(&document.Buffer{})
	b2.AddAccessor(&document.Accessor{ComponentType: document.Float, Type: document.Scalar, Count: 1, Array: []float64{2}})

	nd, err := Write(root, Options{Basename: "scene"})
	require.NoError(t, err)
	_, ok1 := nd.Resources["scene_1.bin"]
	_, ok2 := nd.Resources["scene_2.bin"]
	assert.True(t, ok1)
	assert.True(t, ok2)
}

// Scenario 6: a buffer referenced by no accessors is skipped, with
// other buffer indices remaining correct.
func TestScenarioEmptyBufferSkip(t *testing.T) {
	root := document.NewRoot()
	root.AddBuffer(&document.Buffer{Name: "unused"})
	used := root.AddBuffer(&document.Buffer{Name: "used"})
	used.AddAccessor(&document.Accessor{ComponentType: document.Float, Type: document.Scalar, Count: 1, Array: []float64{1}})

	nd, err := Write(root, Options{Basename: "scene"})
	require.NoError(t, err)
	require.Len(t, nd.JSON.Buffers, 1)
	assert.Equal(t, int64(4), nd.JSON.Buffers[0].ByteLength)
	require.Len(t, nd.JSON.BufferViews, 1)
	assert.Equal(t, int64(0), nd.JSON.BufferViews[0].Buffer)
}

func TestWriteEmptyDocumentProducesValidJSON(t *testing.T) {
	root := document.NewRoot()
	nd, err := Write(root, Options{})
	require.NoError(t, err)
	assert.Nil(t, nd.JSON.Buffers)
	assert.Nil(t, nd.JSON.Meshes)
	assert.Nil(t, nd.JSON.Scenes)
	assert.Equal(t, "2.0", nd.JSON.Asset.Version)
}

func TestWriteFatalOnRoleOverlap(t *testing.T) {
	root := document.NewRoot()
	buf := root.AddBuffer(&document.Buffer{})
	shared := buf.AddAccessor(&document.Accessor{ComponentType: document.Float, Type: document.Vec3, Count: 1, Array: make([]float64, 3)})
	mesh := root.AddMesh(&document.Mesh{})
	prim := mesh.AddPrimitive(&document.Primitive{Indices: shared})
	prim.AddAttribute("POSITION", shared)

	_, err := Write(root, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidGraph)
}

func TestWritePresetURITakesPrecedence(t *testing.T) {
	root := document.NewRoot()
	buf := root.AddBuffer(&document.Buffer{URI: "custom.bin"})
	buf.AddAccessor(&document.Accessor{ComponentType: document.Float, Type: document.Scalar, Count: 1, Array: []float64{1}})

	nd, err := Write(root, Options{Basename: "scene"})
	require.NoError(t, err)
	assert.Equal(t, "custom.bin", nd.JSON.Buffers[0].URI)
	_, ok := nd.Resources["custom.bin"]
	assert.True(t, ok)
}
