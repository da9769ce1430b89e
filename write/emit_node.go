// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// emitNodesPass1 allocates every node's output index and writes its
// TRS transform and weights. It must run before skins are emitted,
// since a skin's skeleton/joints reference nodes by index, and before
// emitNodesPass2, which needs the mesh/camera/skin tables this pass's
// output order doesn't depend on.
func (w *writer) emitNodesPass1(root *document.Root) {
	for _, n := range root.Nodes {
		def := gltf.Node{
			Name:       n.Name,
			Extras:     n.Extras,
			Extensions: n.Extensions,
			Weights:    n.Weights,
		}
		if n.Translation != ([3]float32{}) {
			t := n.Translation
			def.Translation = &t
		}
		if n.Rotation != ([4]float32{0, 0, 0, 1}) {
			r := n.Rotation
			def.Rotation = &r
		}
		if n.Scale != ([3]float32{1, 1, 1}) {
			s := n.Scale
			def.Scale = &s
		}
		w.nodeIdx[n] = int64(len(w.doc.Nodes))
		w.doc.Nodes = append(w.doc.Nodes, def)
	}
}

// emitNodesPass2 fills in mesh/camera/skin attachments and children,
// addressing each node def by the index pass 1 assigned it. Must run
// after meshes, cameras, skins have all been emitted.
func (w *writer) emitNodesPass2(root *document.Root) {
	for _, n := range root.Nodes {
		idx := w.nodeIdx[n]
		def := &w.doc.Nodes[idx]
		if n.Mesh != nil {
			mi := w.meshIdx[n.Mesh]
			def.Mesh = &mi
		}
		if n.Camera != nil {
			ci := w.cameraIdx[n.Camera]
			def.Camera = &ci
		}
		if n.Skin != nil {
			si := w.skinIdx[n.Skin]
			def.Skin = &si
		}
		for _, c := range n.Children {
			def.Children = append(def.Children, w.nodeIdx[c])
		}
	}
}
