// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import "github.com/polyforge/gltfwriter/document"

// accessorRole classifies how a buffer's accessor is consumed
// downstream. The zero value is roleOther so that an accessor with no
// graph links at all (rule: "an accessor with no non-Root links is
// other") needs no explicit entry in the role map.
type accessorRole int

const (
	roleOther accessorRole = iota
	roleAttribute
	roleIndex
)

// partitionAccessors walks every edge in root reaching an accessor
// and classifies it. An accessor reached by links of more than one
// role is a fatal input error: it cannot simultaneously be a vertex
// attribute and an index (or anything else).
func partitionAccessors(root *document.Root) (map[*document.Accessor]accessorRole, error) {
	roles := make(map[*document.Accessor]accessorRole)
	seen := make(map[*document.Accessor]map[accessorRole]bool)
	mark := func(a *document.Accessor, r accessorRole) {
		if seen[a] == nil {
			seen[a] = make(map[accessorRole]bool)
		}
		seen[a][r] = true
		roles[a] = r
	}
	for _, l := range root.Links() {
		switch l.Kind {
		case document.LinkAttribute:
			mark(l.Child, roleAttribute)
		case document.LinkIndex:
			mark(l.Child, roleIndex)
		default:
			mark(l.Child, roleOther)
		}
	}
	for a, rs := range seen {
		if len(rs) > 1 {
			name := a.Name
			if name == "" {
				name = "<unnamed>"
			}
			return nil, fatalInvalidGraph("accessor %q used in mutually exclusive roles", name)
		}
	}
	return roles, nil
}
