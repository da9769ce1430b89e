// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package write flattens a document.Root property graph into a glTF
// JSON document plus a set of named binary resources.
package write

import "go.uber.org/zap"

// glbSentinelURI is the reserved resource key a GLB-mode buffer is
// stored under in NativeDocument.Resources. Names generated by
// uriGen.next begin with "@" only if the basename does; a preset URI
// is used verbatim and is not checked against this key.
const glbSentinelURI = "@glb.bin"

// Options configures a single Write call.
type Options struct {
	// Basename seeds generated buffer and image URIs. Defaults to
	// "scene" when empty.
	Basename string

	// IsGLB packages the output as a single binary container: the
	// first buffer (and any embedded images) are stored under
	// glbSentinelURI instead of being assigned URIs. Takes precedence
	// over Embedded.
	IsGLB bool

	// Embedded inlines buffer and image bytes as base64 data URIs
	// instead of producing external resource entries. Ignored when
	// IsGLB is set.
	Embedded bool

	// Logger receives non-fatal warnings (a skipped empty buffer). A nil
	// Logger defaults to zap.NewNop(), mirroring the zero-value
	// usability of the property graph it reads from.
	Logger *zap.Logger
}

func (o Options) basename() string {
	if o.Basename == "" {
		return "scene"
	}
	return o.Basename
}
