package document

// Draw modes, matching glTF's mesh.primitive.mode values.
const (
	Points = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

// Attribute pairs a vertex attribute semantic ("POSITION", "NORMAL",
// "TEXCOORD_0", ...) with the accessor that carries it. Primitive and
// Target store attributes as ordered slices, not maps, so that the
// order accessors were attached in — which the interleaved packer
// uses as vertex layout order — is reproducible without relying on Go
// map iteration.
type Attribute struct {
	Semantic string
	Accessor *Accessor
}

// Target is one morph target: a set of attribute deltas blended by a
// mesh/node weight.
type Target struct {
	Name       string
	Attributes []Attribute
}

// Primitive is a single draw call's worth of geometry within a Mesh.
type Primitive struct {
	Material   *Material
	Mode       int
	Attributes []Attribute
	Indices    *Accessor
	Targets    []Target
}

// AddAttribute appends a (semantic, accessor) pair to p's attribute
// list and returns p for chaining.
func (p *Primitive) AddAttribute(semantic string, a *Accessor) *Primitive {
	p.Attributes = append(p.Attributes, Attribute{semantic, a})
	return p
}

// Mesh is a named collection of primitives.
type Mesh struct {
	Name       string
	Extras     any
	Extensions any

	Primitives []*Primitive
	Weights    []float32
}

// AddPrimitive appends p to m's primitive list and returns it.
func (m *Mesh) AddPrimitive(p *Primitive) *Primitive {
	m.Primitives = append(m.Primitives, p)
	return p
}
