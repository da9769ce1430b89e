// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// emitCameras fills json.cameras from root.Cameras, in root listing
// order, and populates w.cameraIdx.
func (w *writer) emitCameras(root *document.Root) {
	for _, c := range root.Cameras {
		def := gltf.Camera{
			Name:       c.Name,
			Extras:     c.Extras,
			Extenions:  c.Extensions,
			Type:       c.Type,
		}
		switch c.Type {
		case document.CameraPerspective:
			if c.Perspective != nil {
				def.Perspective = &gltf.Perspective{
					AspectRatio: c.Perspective.AspectRatio,
					YFOV:        c.Perspective.YFOV,
					Zfar:        c.Perspective.Zfar,
					Znear:       c.Perspective.Znear,
				}
			}
		case document.CameraOrthographic:
			if c.Orthographic != nil {
				def.Orthographic = &gltf.Orthographic{
					Xmag:  c.Orthographic.Xmag,
					Ymag:  c.Orthographic.Ymag,
					Zfar:  c.Orthographic.Zfar,
					Znear: c.Orthographic.Znear,
				}
			}
		}
		w.cameraIdx[c] = int64(len(w.doc.Cameras))
		w.doc.Cameras = append(w.doc.Cameras, def)
	}
}
