// Package document implements the in-memory property graph that the
// write package flattens into a glTF document.
//
// A Root owns every property reachable in a scene: buffers, textures,
// materials, meshes, cameras, nodes, skins, animations and scenes.
// Properties reference each other directly, by pointer, rather than
// through an intermediate handle table — Go pointers already give
// arena-allocated properties the stable, comparable identity that a
// handle would, without a separate indirection layer. The graph may
// be cyclic-in-ownership (nodes reference child nodes, skins reference
// nodes, several primitives may share one accessor) but the writer
// only ever reads it.
package document

// Asset carries the top-level glTF asset metadata.
type Asset struct {
	Copyright string
	Generator string
	// Version defaults to "2.0" when empty.
	Version string
}

// Root is the entry point of a property graph. Each list preserves
// insertion order, which the writer uses verbatim as JSON array order
// (see package write).
type Root struct {
	Asset Asset

	Buffers    []*Buffer
	Textures   []*Texture
	Materials  []*Material
	Meshes     []*Mesh
	Cameras    []*Camera
	Nodes      []*Node
	Skins      []*Skin
	Animations []*Animation
	Scenes     []*Scene
}

// NewRoot creates an empty property graph.
func NewRoot() *Root { return &Root{} }

// AddBuffer appends b to the root's buffer list and returns it.
func (r *Root) AddBuffer(b *Buffer) *Buffer {
	r.Buffers = append(r.Buffers, b)
	return b
}

// AddTexture appends t to the root's texture list and returns it.
func (r *Root) AddTexture(t *Texture) *Texture {
	r.Textures = append(r.Textures, t)
	return t
}

// AddMaterial appends m to the root's material list and returns it.
func (r *Root) AddMaterial(m *Material) *Material {
	r.Materials = append(r.Materials, m)
	return m
}

// AddMesh appends m to the root's mesh list and returns it.
func (r *Root) AddMesh(m *Mesh) *Mesh {
	r.Meshes = append(r.Meshes, m)
	return m
}

// AddCamera appends c to the root's camera list and returns it.
func (r *Root) AddCamera(c *Camera) *Camera {
	r.Cameras = append(r.Cameras, c)
	return c
}

// AddNode appends n to the root's node list and returns it.
// Inserting n as a root list member does not imply it is a scene
// root; scene membership is controlled by Scene.AddNode.
func (r *Root) AddNode(n *Node) *Node {
	r.Nodes = append(r.Nodes, n)
	return n
}

// AddSkin appends s to the root's skin list and returns it.
func (r *Root) AddSkin(s *Skin) *Skin {
	r.Skins = append(r.Skins, s)
	return s
}

// AddAnimation appends a to the root's animation list and returns it.
func (r *Root) AddAnimation(a *Animation) *Animation {
	r.Animations = append(r.Animations, a)
	return a
}

// AddScene appends s to the root's scene list and returns it.
func (r *Root) AddScene(s *Scene) *Scene {
	r.Scenes = append(r.Scenes, s)
	return s
}
