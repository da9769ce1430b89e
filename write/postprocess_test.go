// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package write

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyforge/gltfwriter/gltf"
)

func TestFinalizeStripsEmptySlices(t *testing.T) {
	doc := &gltf.GLTF{
		Buffers: []gltf.Buffer{},
		Nodes:   []gltf.Node{{Name: "root"}},
	}
	doc.Asset.Version = "2.0"
	finalize(doc)
	assert.Nil(t, doc.Buffers)
	assert.Len(t, doc.Nodes, 1)

	var buf bytes.Buffer
	require.NoError(t, gltf.Encode(&buf, doc))
	assert.NotContains(t, buf.String(), `"buffers"`)
	assert.Contains(t, buf.String(), `"nodes"`)
}
