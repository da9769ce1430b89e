package document

// LinkKind discriminates how a Link's child Accessor is used by its
// parent property.
type LinkKind int

const (
	// LinkAttribute marks an accessor as a Primitive's per-vertex
	// attribute.
	LinkAttribute LinkKind = iota
	// LinkIndex marks an accessor as a Primitive's index buffer.
	LinkIndex
	// LinkOther marks any other use: inverse bind matrices, morph
	// target deltas, animation sampler input/output.
	LinkOther
)

func (k LinkKind) String() string {
	switch k {
	case LinkAttribute:
		return "attribute"
	case LinkIndex:
		return "index"
	case LinkOther:
		return "other"
	default:
		return "unknown"
	}
}

// Link is one edge of the property graph whose child is an Accessor.
// Parent is the referencing property (*Primitive, *Skin or
// *Animation, depending on Kind) and is typed as any because the set
// of parent kinds differs by Kind; callers that need to act on it
// switch on Kind first.
type Link struct {
	Kind   LinkKind
	Parent any
	Child  *Accessor
}

// Links enumerates every accessor-referencing edge in the graph, in a
// deterministic order derived from Root's own listing order (meshes,
// then each mesh's primitives, then skins, then animations). This is
// the traversal the accessor partitioner (see package write) uses to
// classify each accessor's role; it is exposed here because the
// design explicitly calls for edge iteration to be a property-graph
// capability rather than something the writer reconstructs from
// private state.
func (r *Root) Links() []Link {
	var links []Link
	for _, mesh := range r.Meshes {
		for _, prim := range mesh.Primitives {
			for _, attr := range prim.Attributes {
				links = append(links, Link{LinkAttribute, prim, attr.Accessor})
			}
			if prim.Indices != nil {
				links = append(links, Link{LinkIndex, prim, prim.Indices})
			}
			for _, tgt := range prim.Targets {
				for _, attr := range tgt.Attributes {
					links = append(links, Link{LinkOther, prim, attr.Accessor})
				}
			}
		}
	}
	for _, skin := range r.Skins {
		if skin.InverseBindMatrices != nil {
			links = append(links, Link{LinkOther, skin, skin.InverseBindMatrices})
		}
	}
	for _, anim := range r.Animations {
		for _, s := range anim.Samplers {
			if s.Input != nil {
				links = append(links, Link{LinkOther, anim, s.Input})
			}
			if s.Output != nil {
				links = append(links, Link{LinkOther, anim, s.Output})
			}
		}
	}
	return links
}
