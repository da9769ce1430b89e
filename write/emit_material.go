// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// emitMaterials fills json.materials from root.Materials, in root
// listing order, and populates w.materialIdx.
func (w *writer) emitMaterials(root *document.Root) {
	for _, m := range root.Materials {
		def := gltf.Material{
			Name:        m.Name,
			Extras:      m.Extras,
			Extensions:  m.Extensions,
			DoubleSided: m.DoubleSided,
		}
		if m.AlphaMode != "" {
			def.AlphaMode = m.AlphaMode
		} else {
			def.AlphaMode = document.AlphaOpaque
		}
		if def.AlphaMode == document.AlphaMask {
			cutoff := m.AlphaCutoff
			def.AlphaCutoff = &cutoff
		}

		pbr := &gltf.PBRMetallicRoughness{}
		bc := m.BaseColorFactor
		pbr.BaseColorFactor = &bc
		mf := m.MetallicFactor
		pbr.MetallicFactor = &mf
		rf := m.RoughnessFactor
		pbr.RoughnessFactor = &rf
		if m.BaseColorTexture != nil {
			pbr.BaseColorTexture = w.emitTextureInfo(m.BaseColorTexture)
		}
		if m.MetallicRoughnessTexture != nil {
			pbr.MetallicRoughnessTexture = w.emitTextureInfo(m.MetallicRoughnessTexture)
		}
		def.PBRMetallicRoughness = pbr

		if m.NormalTexture != nil {
			idx, texCoord := w.textureInfo(m.NormalTexture)
			nt := &gltf.NormalTextureInfo{Index: idx, TexCoord: texCoord}
			if m.NormalScale != 1 {
				scale := m.NormalScale
				nt.Scale = &scale
			}
			def.NormalTexture = nt
		}
		if m.OcclusionTexture != nil {
			idx, texCoord := w.textureInfo(m.OcclusionTexture)
			ot := &gltf.OcclusionTextureInfo{Index: idx, TexCoord: texCoord}
			if m.OcclusionStrength != 1 {
				strength := m.OcclusionStrength
				ot.Strength = &strength
			}
			def.OcclusionTexture = ot
		}
		if m.EmissiveTexture != nil {
			def.EmissiveTexture = w.emitTextureInfo(m.EmissiveTexture)
		}
		if m.EmissiveFactor != ([3]float32{}) {
			ef := m.EmissiveFactor
			def.EmissiveFactor = &ef
		}

		w.materialIdx[m] = int64(len(w.doc.Materials))
		w.doc.Materials = append(w.doc.Materials, def)
	}
}

func (w *writer) emitTextureInfo(ref *document.TexRef) *gltf.TextureInfo {
	idx, texCoord := w.textureInfo(ref)
	return &gltf.TextureInfo{Index: idx, TexCoord: texCoord}
}
