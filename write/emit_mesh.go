// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// emitMeshes fills json.meshes from root.Meshes, in root listing
// order, and populates w.meshIdx. Requires w.accessorIdx and
// w.materialIdx to already be populated.
func (w *writer) emitMeshes(root *document.Root) {
	for _, m := range root.Meshes {
		def := gltf.Mesh{
			Name:       m.Name,
			Extras:     m.Extras,
			Extensions: m.Extensions,
			Weights:    m.Weights,
		}
		var targetNames []string
		for _, p := range m.Primitives {
			def.Primitives = append(def.Primitives, w.emitPrimitive(p))
			if len(targetNames) == 0 {
				for _, t := range p.Targets {
					targetNames = append(targetNames, t.Name)
				}
			}
		}
		def.Extras = mergeTargetNames(m.Extras, targetNames)
		w.meshIdx[m] = int64(len(w.doc.Meshes))
		w.doc.Meshes = append(w.doc.Meshes, def)
	}
}

func (w *writer) emitPrimitive(p *document.Primitive) gltf.Primitive {
	def := gltf.Primitive{Attributes: make(map[string]int64, len(p.Attributes))}
	for _, a := range p.Attributes {
		def.Attributes[a.Semantic] = w.accessorIdx[a.Accessor]
	}
	mode := int64(p.Mode)
	def.Mode = &mode
	if p.Indices != nil {
		idx := w.accessorIdx[p.Indices]
		def.Indices = &idx
	}
	if p.Material != nil {
		idx := w.materialIdx[p.Material]
		def.Material = &idx
	}
	for _, t := range p.Targets {
		tdef := make(map[string]int64, len(t.Attributes))
		for _, a := range t.Attributes {
			tdef[a.Semantic] = w.accessorIdx[a.Accessor]
		}
		def.Targets = append(def.Targets, tdef)
	}
	return def
}

// mergeTargetNames folds a synthesized targetNames list into extras,
// merging with a caller-supplied map[string]any or creating one; any
// other non-nil extras value is left untouched since there is no
// generic way to graft a key onto an opaque type.
func mergeTargetNames(extras any, names []string) any {
	if len(names) == 0 {
		return extras
	}
	if extras == nil {
		return map[string]any{"targetNames": names}
	}
	if em, ok := extras.(map[string]any); ok {
		merged := make(map[string]any, len(em)+1)
		for k, v := range em {
			merged[k] = v
		}
		merged["targetNames"] = names
		return merged
	}
	return extras
}
