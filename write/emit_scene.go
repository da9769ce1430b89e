// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// emitScenes fills json.scenes from root.Scenes, in root listing
// order, and populates w.sceneIdx. Requires w.nodeIdx to already be
// populated.
func (w *writer) emitScenes(root *document.Root) {
	for _, s := range root.Scenes {
		def := gltf.Scene{
			Name:       s.Name,
			Extras:     s.Extras,
			Extensions: s.Extensions,
		}
		for _, n := range s.Nodes {
			def.Nodes = append(def.Nodes, w.nodeIdx[n])
		}
		w.sceneIdx[s] = int64(len(w.doc.Scenes))
		w.doc.Scenes = append(w.doc.Scenes, def)
	}
}
