// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"fmt"
	"strconv"

	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// samplerKey builds a canonical string for a TextureSampler. Filter
// fields use an explicit "undefined" sentinel for zero — glTF has no
// filter value 0, so 0 means "field was never set" rather than a
// literal filter code — while wrap fields are compared verbatim,
// since 0 is not a valid wrap mode in the first place and callers
// never mean "unset" by it.
func samplerKey(s document.TextureSampler) string {
	mag, min := "undefined", "undefined"
	if s.MagFilter != 0 {
		mag = strconv.FormatInt(s.MagFilter, 10)
	}
	if s.MinFilter != 0 {
		min = strconv.FormatInt(s.MinFilter, 10)
	}
	return fmt.Sprintf("%s|%s|%d|%d", mag, min, s.WrapS, s.WrapT)
}

// textureKey builds a canonical string for an (image, sampler) pair.
func textureKey(imageIdx, samplerIdx int64) string {
	return fmt.Sprintf("%d|%d", imageIdx, samplerIdx)
}

// getOrCreateSampler returns the index of the json.samplers entry
// matching s, creating one if this exact combination has not been
// seen yet.
func (w *writer) getOrCreateSampler(s document.TextureSampler) int64 {
	key := samplerKey(s)
	if idx, ok := w.samplerKeys[key]; ok {
		return idx
	}
	def := gltf.Sampler{WrapS: s.WrapS, WrapT: s.WrapT}
	if s.MagFilter != 0 {
		def.MagFilter = s.MagFilter
	}
	if s.MinFilter != 0 {
		def.MinFilter = s.MinFilter
	}
	idx := int64(len(w.doc.Samplers))
	w.doc.Samplers = append(w.doc.Samplers, def)
	w.samplerKeys[key] = idx
	return idx
}

// getOrCreateTexture returns the index of the json.textures entry
// referencing imageIdx/samplerIdx, creating one if this pair has not
// been seen yet.
func (w *writer) getOrCreateTexture(imageIdx, samplerIdx int64) int64 {
	key := textureKey(imageIdx, samplerIdx)
	if idx, ok := w.textureKeys[key]; ok {
		return idx
	}
	src, samp := imageIdx, samplerIdx
	idx := int64(len(w.doc.Textures))
	w.doc.Textures = append(w.doc.Textures, gltf.Texture{Source: &src, Sampler: &samp})
	w.textureKeys[key] = idx
	return idx
}

// textureInfo resolves a TexRef into the (index, texCoord) pair every
// *TextureInfo-shaped emitted field needs, deduplicating the
// underlying sampler and texture definitions along the way.
func (w *writer) textureInfo(ref *document.TexRef) (index, texCoord int64) {
	imgIdx := w.imageIdx[ref.Texture]
	sampIdx := w.getOrCreateSampler(ref.Sampler)
	texIdx := w.getOrCreateTexture(imgIdx, sampIdx)
	return texIdx, int64(ref.Info.TexCoord)
}
