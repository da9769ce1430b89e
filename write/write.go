// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"encoding/base64"

	"go.uber.org/zap"

	"github.com/polyforge/gltfwriter/document"
	"github.com/polyforge/gltfwriter/gltf"
)

// NativeDocument is the writer's output: a glTF JSON document plus
// every binary resource it references, keyed by the URI the document
// uses to refer to it (or by glbSentinelURI in GLB mode).
type NativeDocument struct {
	JSON      *gltf.GLTF
	Resources map[string][]byte
}

// writer holds all per-call state: the ten lookup tables mapping a
// source property to its output index, the dedup tables for samplers
// and textures, and the JSON document being assembled. A writer is
// created fresh by Write and discarded when it returns — nothing here
// outlives one call.
type writer struct {
	root   *document.Root
	opts   Options
	logger *zap.Logger
	doc    *gltf.GLTF

	roles map[*document.Accessor]accessorRole

	bufferIdx    map[*document.Buffer]int64
	accessorIdx  map[*document.Accessor]int64
	materialIdx  map[*document.Material]int64
	meshIdx      map[*document.Mesh]int64
	cameraIdx    map[*document.Camera]int64
	nodeIdx      map[*document.Node]int64
	skinIdx      map[*document.Skin]int64
	animationIdx map[*document.Animation]int64
	sceneIdx     map[*document.Scene]int64
	imageIdx     map[*document.Texture]int64

	samplerKeys map[string]int64
	textureKeys map[string]int64

	resources map[string][]byte
}

// Write flattens root into a NativeDocument per opts. On a fatal
// graph error it returns a zero NativeDocument and the error; no
// partial output is ever returned.
func Write(root *document.Root, opts Options) (NativeDocument, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	w := &writer{
		root:         root,
		opts:         opts,
		logger:       logger,
		doc:          &gltf.GLTF{},
		bufferIdx:    make(map[*document.Buffer]int64),
		accessorIdx:  make(map[*document.Accessor]int64),
		materialIdx:  make(map[*document.Material]int64),
		meshIdx:      make(map[*document.Mesh]int64),
		cameraIdx:    make(map[*document.Camera]int64),
		nodeIdx:      make(map[*document.Node]int64),
		skinIdx:      make(map[*document.Skin]int64),
		animationIdx: make(map[*document.Animation]int64),
		sceneIdx:     make(map[*document.Scene]int64),
		imageIdx:     make(map[*document.Texture]int64),
		samplerKeys:  make(map[string]int64),
		textureKeys:  make(map[string]int64),
		resources:    make(map[string][]byte),
	}

	version := root.Asset.Version
	if version == "" {
		version = "2.0"
	}
	w.doc.Asset.Version = version
	w.doc.Asset.Generator = root.Asset.Generator
	w.doc.Asset.Copyright = root.Asset.Copyright

	roles, err := partitionAccessors(root)
	if err != nil {
		return NativeDocument{}, err
	}
	w.roles = roles

	if err := w.writeBuffers(); err != nil {
		return NativeDocument{}, err
	}
	w.emitMaterials(root)
	w.emitMeshes(root)
	w.emitCameras(root)
	w.emitNodesPass1(root)
	w.emitSkins(root)
	w.emitNodesPass2(root)
	w.emitAnimations(root)
	w.emitScenes(root)

	if len(root.Scenes) > 0 {
		idx := w.sceneIdx[root.Scenes[0]]
		w.doc.Scene = &idx
	}

	finalize(w.doc)

	return NativeDocument{JSON: w.doc, Resources: w.resources}, nil
}

// writeBuffers drives the buffer-view packer over every buffer in
// root (§4.3.4), then, for GLB/embedded packaging, folds image bytes
// into buffer 0 (synthesizing one if root has no buffers at all but
// does have textures); for external packaging it dispatches images to
// independent resource entries instead. Finally it assigns each
// surviving buffer its JSON entry and URI.
func (w *writer) writeBuffers() error {
	needsImageBuffer := (w.opts.IsGLB || w.opts.Embedded) && len(w.root.Textures) > 0

	bufBytes := make(map[int64][]byte)
	order := make([]*document.Buffer, 0, len(w.root.Buffers))

	nextIdx := int64(0)
	for i, buf := range w.root.Buffers {
		isImageCarrier := needsImageBuffer && i == 0
		if len(buf.Accessors) == 0 && !isImageCarrier {
			w.logger.Warn("write: skipping empty buffer", zap.String("name", buf.Name))
			continue
		}
		idx := nextIdx
		nextIdx++
		w.bufferIdx[buf] = idx
		order = append(order, buf)
		raw, err := w.packBuffer(buf, idx)
		if err != nil {
			return err
		}
		bufBytes[idx] = raw
	}

	imageCarrier := int64(-1)
	switch {
	case needsImageBuffer && len(w.root.Buffers) > 0:
		imageCarrier = w.bufferIdx[w.root.Buffers[0]]
	case needsImageBuffer:
		imageCarrier = nextIdx
		nextIdx++
		order = append(order, nil)
	}
	if needsImageBuffer {
		bufBytes[imageCarrier] = w.packImagesIntoBuffer(imageCarrier, bufBytes[imageCarrier])
	} else if len(w.root.Textures) > 0 {
		w.packImagesExternal()
	}

	bufferURI := newURIGen(w.opts.basename(), nextIdx > 1)
	for idx := int64(0); idx < nextIdx; idx++ {
		raw := bufBytes[idx]
		if len(raw) == 0 {
			var name string
			if int(idx) < len(order) && order[idx] != nil {
				name = order[idx].Name
			}
			w.logger.Warn("write: skipping empty buffer", zap.String("name", name))
			continue
		}
		var presetURI, name string
		var extras, extensions any
		if int(idx) < len(order) && order[idx] != nil {
			presetURI = order[idx].URI
			name = order[idx].Name
			extras = order[idx].Extras
			extensions = order[idx].Extensions
		}
		def := gltf.Buffer{ByteLength: int64(len(raw)), Name: name, Extras: extras, Extensions: extensions}
		switch {
		case w.opts.IsGLB && idx == 0:
			w.resources[glbSentinelURI] = raw
		case w.opts.IsGLB:
			// The GLB container only carries one binary chunk; any
			// additional buffer falls back to external packaging.
			uri := bufferURI.next(presetURI, "bin")
			def.URI = uri
			w.resources[uri] = raw
		case w.opts.Embedded:
			def.URI = "data:application/octet-stream;base64," + base64.StdEncoding.EncodeToString(raw)
		default:
			uri := bufferURI.next(presetURI, "bin")
			def.URI = uri
			w.resources[uri] = raw
		}
		w.doc.Buffers = append(w.doc.Buffers, def)
	}
	return nil
}

// packImagesIntoBuffer appends every texture's bytes (individually
// 4-byte padded) onto an existing buffer byte slice, reserving one
// buffer view and one images[] entry per texture.
func (w *writer) packImagesIntoBuffer(bufIdx int64, existing []byte) []byte {
	out := existing
	for _, tex := range w.root.Textures {
		off := len(out)
		out = append(out, tex.Data...)
		if pad := padTo4(len(tex.Data)) - len(tex.Data); pad > 0 {
			out = append(out, make([]byte, pad)...)
		}
		viewIdx := int64(len(w.doc.BufferViews))
		w.doc.BufferViews = append(w.doc.BufferViews, gltf.BufferView{
			Buffer: bufIdx, ByteOffset: int64(off), ByteLength: int64(len(tex.Data)),
		})
		bv := viewIdx
		w.imageIdx[tex] = int64(len(w.doc.Images))
		w.doc.Images = append(w.doc.Images, gltf.Image{
			BufferView: &bv, MimeType: tex.MimeType, Name: tex.Name,
			Extras: tex.Extras, Extensions: tex.Extensions,
		})
	}
	return out
}

// packImagesExternal assigns each texture its own resource entry and
// generated URI, used when packaging is external (no buffer
// involvement for images at all).
func (w *writer) packImagesExternal() {
	gen := newURIGen(w.opts.basename(), len(w.root.Textures) > 1)
	for _, tex := range w.root.Textures {
		uri := gen.next(tex.URI, imageExt(tex.MimeType))
		w.resources[uri] = tex.Data
		w.imageIdx[tex] = int64(len(w.doc.Images))
		w.doc.Images = append(w.doc.Images, gltf.Image{
			URI: uri, MimeType: tex.MimeType, Name: tex.Name,
			Extras: tex.Extras, Extensions: tex.Extensions,
		})
	}
}

// packBuffer runs the per-buffer pipeline (§4.3.4): index accessors
// concatenated first, then each primitive's attribute accessors
// interleaved in mesh/primitive insertion order, then every remaining
// "other" accessor concatenated. It appends directly to
// w.doc.BufferViews/w.doc.Accessors and populates w.accessorIdx, and
// returns the buffer's packed bytes.
func (w *writer) packBuffer(buf *document.Buffer, bufIdx int64) ([]byte, error) {
	var out []byte

	var indexAccs, otherAccs []*document.Accessor
	for _, a := range buf.Accessors {
		switch w.roles[a] {
		case roleIndex:
			indexAccs = append(indexAccs, a)
		case roleOther:
			otherAccs = append(otherAccs, a)
		}
	}

	if len(indexAccs) > 0 {
		viewIdx := int64(len(w.doc.BufferViews))
		res, view, err := concatAccessors(indexAccs, bufIdx, viewIdx, len(out), gltf.ELEMENT_ARRAY_BUFFER)
		if err != nil {
			return nil, err
		}
		w.appendPacked(indexAccs, res, view)
		out = append(out, res.bytes...)
	}

	for _, mesh := range w.root.Meshes {
		for _, p := range mesh.Primitives {
			var attrs []*document.Accessor
			for _, at := range p.Attributes {
				if at.Accessor.Buffer == buf {
					attrs = append(attrs, at.Accessor)
				}
			}
			if len(attrs) == 0 {
				continue
			}
			viewIdx := int64(len(w.doc.BufferViews))
			res, view, err := interleaveAccessors(attrs, bufIdx, viewIdx, len(out))
			if err != nil {
				return nil, err
			}
			w.appendPacked(attrs, res, view)
			out = append(out, res.bytes...)
		}
	}

	if len(otherAccs) > 0 {
		viewIdx := int64(len(w.doc.BufferViews))
		res, view, err := concatAccessors(otherAccs, bufIdx, viewIdx, len(out), 0)
		if err != nil {
			return nil, err
		}
		w.appendPacked(otherAccs, res, view)
		out = append(out, res.bytes...)
	}

	return out, nil
}

// appendPacked commits one packResult to the document: the view goes
// onto BufferViews, and each accessor def goes onto Accessors with
// its assigned index recorded in w.accessorIdx.
func (w *writer) appendPacked(accs []*document.Accessor, res packResult, view gltf.BufferView) {
	w.doc.BufferViews = append(w.doc.BufferViews, view)
	for i, a := range accs {
		w.accessorIdx[a] = int64(len(w.doc.Accessors))
		w.doc.Accessors = append(w.doc.Accessors, res.defs[i])
	}
}
