// Package gltf loads glTF 2.0 assets (.gltf and .glb) into the mesh model.
package gltf

import (
	"fmt"
	"path/filepath"
	"strings"

	qgltf "github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/philipparndt/meshcheck/pkg/geometry"
	"github.com/philipparndt/meshcheck/pkg/mesh"
)

// Parse reads a glTF asset and returns one mesh per glTF mesh in the
// document. Triangle primitives with position data are imported; texture
// coordinates become per-face UV loops when present.
func Parse(filename string) ([]*mesh.Mesh, error) {
	doc, err := qgltf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open glTF file: %w", err)
	}

	fallback := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	var meshes []*mesh.Mesh
	for i, gm := range doc.Meshes {
		name := gm.Name
		if name == "" {
			name = fmt.Sprintf("%s.%d", fallback, i)
		}

		m := mesh.New(name)
		for _, prim := range gm.Primitives {
			if err := importPrimitive(doc, prim, m); err != nil {
				return nil, fmt.Errorf("mesh %q: %w", name, err)
			}
		}
		meshes = append(meshes, m)
	}

	return meshes, nil
}

// importPrimitive appends one primitive's triangles to the mesh. Positions
// and UVs from separate primitives stay separate index ranges within the
// combined mesh.
func importPrimitive(doc *qgltf.Document, prim *qgltf.Primitive, m *mesh.Mesh) error {
	if prim.Mode != qgltf.PrimitiveTriangles {
		return nil
	}

	posIdx, ok := prim.Attributes[qgltf.POSITION]
	if !ok {
		return nil
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("failed to read positions: %w", err)
	}

	var uvs [][2]float32
	if uvIdx, ok := prim.Attributes[qgltf.TEXCOORD_0]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[uvIdx], nil)
		if err != nil {
			return fmt.Errorf("failed to read texture coordinates: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("failed to read indices: %w", err)
		}
	} else {
		// Non-indexed: consecutive vertex triples form triangles
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	vertexBase := len(m.Positions)
	for _, p := range positions {
		m.Positions = append(m.Positions, geometry.NewVector3(float64(p[0]), float64(p[1]), float64(p[2])))
	}

	uvBase := len(m.UVs)
	for _, uv := range uvs {
		// glTF uses a top-left UV origin; flip V to the conventional
		// bottom-left origin used by the UV checks
		m.UVs = append(m.UVs, geometry.NewVector2(float64(uv[0]), 1.0-float64(uv[1])))
	}

	for i := 0; i+2 < len(indices); i += 3 {
		a := vertexBase + int(indices[i])
		b := vertexBase + int(indices[i+1])
		c := vertexBase + int(indices[i+2])
		if len(uvs) > 0 {
			m.AddFaceUV(
				[]int{a, b, c},
				[]int{uvBase + int(indices[i]), uvBase + int(indices[i+1]), uvBase + int(indices[i+2])},
			)
		} else {
			m.AddFace(a, b, c)
		}
	}

	return nil
}
