// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// emitSkins fills json.skins from root.Skins, in root listing order,
// and populates w.skinIdx. Requires w.nodeIdx (pass 1) and
// w.accessorIdx to already be populated.
func (w *writer) emitSkins(root *document.Root) {
	for _, s := range root.Skins {
		def := gltf.Skin{
			Name:       s.Name,
			Extras:     s.Extras,
			Extensions: s.Extensions,
		}
		if s.InverseBindMatrices != nil {
			idx := w.accessorIdx[s.InverseBindMatrices]
			def.InverseBindMatrices = &idx
		}
		if s.Skeleton != nil {
			idx := w.nodeIdx[s.Skeleton]
			def.Skeleton = &idx
		}
		for _, j := range s.Joints {
			def.Joints = append(def.Joints, w.nodeIdx[j])
		}
		w.skinIdx[s] = int64(len(w.doc.Skins))
		w.doc.Skins = append(w.doc.Skins, def)
	}
}
