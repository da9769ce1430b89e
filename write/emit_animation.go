// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// emitAnimations fills json.animations from root.Animations, in root
// listing order, and populates w.animationIdx. Samplers are emitted
// first within each animation so channels can reference them by their
// per-animation local index.
func (w *writer) emitAnimations(root *document.Root) {
	for _, a := range root.Animations {
		def := gltf.Animation{
			Name:       a.Name,
			Extras:     a.Extras,
			Extensions: a.Extensions,
		}
		localIdx := make(map[*document.AnimationSampler]int64, len(a.Samplers))
		for _, s := range a.Samplers {
			interp := s.Interpolation
			if interp == "" {
				interp = document.InterpLinear
			}
			localIdx[s] = int64(len(def.Samplers))
			def.Samplers = append(def.Samplers, gltf.ASampler{
				Input:         w.accessorIdx[s.Input],
				Output:        w.accessorIdx[s.Output],
				Interpolation: interp,
			})
		}
		for _, c := range a.Channels {
			ch := gltf.AChannel{Sampler: localIdx[c.Sampler]}
			ch.Target.Path = c.TargetPath
			if c.TargetNode != nil {
				ni := w.nodeIdx[c.TargetNode]
				ch.Target.Node = &ni
			}
			def.Channels = append(def.Channels, ch)
		}
		w.animationIdx[a] = int64(len(w.doc.Animations))
		w.doc.Animations = append(w.doc.Animations, def)
	}
}
