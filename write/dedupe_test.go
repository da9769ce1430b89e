// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

func newTestWriter() *writer {
	return &writer{
		doc:         &gltf.GLTF{},
		imageIdx:    make(map[*document.Texture]int64),
		samplerKeys: make(map[string]int64),
		textureKeys: make(map[string]int64),
	}
}

func TestSamplerDedupSameSettings(t *testing.T) {
	w := newTestWriter()
	s1 := document.TextureSampler{WrapS: 10497, WrapT: 10497}
	s2 := document.TextureSampler{WrapS: 10497, WrapT: 10497}
	i1 := w.getOrCreateSampler(s1)
	i2 := w.getOrCreateSampler(s2)
	assert.Equal(t, i1, i2)
	assert.Len(t, w.doc.Samplers, 1)
}

func TestSamplerDedupZeroFilterIsUnset(t *testing.T) {
	w := newTestWriter()
	idx := w.getOrCreateSampler(document.TextureSampler{})
	assert.Equal(t, int64(0), w.doc.Samplers[idx].MagFilter)
	assert.Equal(t, int64(0), w.doc.Samplers[idx].MinFilter)
	// A second sampler with an explicit, non-zero filter must not
	// collide with the "unset" key above.
	idx2 := w.getOrCreateSampler(document.TextureSampler{MagFilter: 9729})
	assert.NotEqual(t, idx, idx2)
}

func TestTextureDedupSameImageAndSampler(t *testing.T) {
	w := newTestWriter()
	i1 := w.getOrCreateTexture(0, 0)
	i2 := w.getOrCreateTexture(0, 0)
	assert.Equal(t, i1, i2)
	assert.Len(t, w.doc.Textures, 1)

	i3 := w.getOrCreateTexture(0, 1)
	assert.NotEqual(t, i1, i3)
}

func TestTextureInfoResolvesDedupedIndices(t *testing.T) {
	w := newTestWriter()
	tex := &document.Texture{MimeType: document.MimePNG}
	w.imageIdx[tex] = 0
	ref1 := &document.TexRef{Texture: tex, Sampler: document.TextureSampler{WrapS: 10497, WrapT: 10497}, Info: document.TextureInfo{TexCoord: 1}}
	ref2 := &document.TexRef{Texture: tex, Sampler: document.TextureSampler{WrapS: 10497, WrapT: 10497}, Info: document.TextureInfo{TexCoord: 0}}
	idx1, tc1 := w.textureInfo(ref1)
	idx2, tc2 := w.textureInfo(ref2)
	assert.Equal(t, idx1, idx2)
	assert.Equal(t, int64(1), tc1)
	assert.Equal(t, int64(0), tc2)
}
