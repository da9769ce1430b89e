// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import "fmt"

// uriGen produces deterministic, unique URIs for one kind of external
// resource (buffers or images). A writer keeps two separate
// instances — one per kind — since multiplicity is tracked
// independently for each (a document with two buffers and one
// texture still gets an unsuffixed image name).
type uriGen struct {
	basename string
	counter  int
	multiple bool
}

func newURIGen(basename string, multiple bool) *uriGen {
	return &uriGen{basename: basename, counter: 1, multiple: multiple}
}

// next returns preset verbatim if non-empty; otherwise it generates a
// name from basename/ext, suffixing with an incrementing counter only
// when the generator was created with multiple == true.
func (g *uriGen) next(preset, ext string) string {
	if preset != "" {
		return preset
	}
	if !g.multiple {
		return fmt.Sprintf("%s.%s", g.basename, ext)
	}
	uri := fmt.Sprintf("%s_%d.%s", g.basename, g.counter, ext)
	g.counter++
	return uri
}

// imageExt returns the file extension associated with a texture MIME
// type, defaulting to "jpeg" for anything other than PNG per the
// packaging rule in the component design.
func imageExt(mimeType string) string {
	if mimeType == "image/png" {
		return "png"
	}
	return "jpeg"
}
