// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"reflect"

	"github.com/polyforge/gltfwriter/gltf"
)

// finalize walks doc's top-level fields and zeroes any empty-but-
// non-nil slice or map, so that encoding/json's "omitempty" — already
// present on every optional field of gltf.GLTF — has nothing left to
// second-guess. This is a non-recursive pass by design: nested
// objects (accessor.sparse, material.pbrMetallicRoughness, ...) are
// each emitter's own responsibility to leave unset when empty.
func finalize(doc *gltf.GLTF) {
	v := reflect.ValueOf(doc).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		switch f.Kind() {
		case reflect.Slice, reflect.Map:
			if !f.IsNil() && f.Len() == 0 {
				f.Set(reflect.Zero(f.Type()))
			}
		case reflect.String:
			// Empty strings are already "empty" for omitempty;
			// nothing to normalize.
		}
	}
}
