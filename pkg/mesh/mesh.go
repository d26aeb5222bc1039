// Package mesh defines the polygonal mesh model the quality checks operate
// on: vertex positions, ordered face loops with optional UV references, and
// derived per-face data (normal, center, area).
package mesh

import (
	"github.com/philipparndt/meshcheck/pkg/geometry"
)

// Face is one polygon: an ordered loop of vertex indices with an optional
// parallel loop of UV indices. UVs is nil when the face is not UV-mapped;
// when present it has the same length as Vertices.
type Face struct {
	Vertices []int
	UVs      []int
}

// HasUVs reports whether the face carries a UV loop
func (f Face) HasUVs() bool {
	return len(f.UVs) > 0
}

// Mesh represents one polygonal surface. Normals optionally stores one
// explicit normal per face (formats like STL carry them); when absent,
// FaceNormal derives the normal from the face winding.
type Mesh struct {
	Name      string
	Positions []geometry.Vector3
	UVs       []geometry.Vector2
	Faces     []Face
	Normals   []geometry.Vector3
}

// New creates an empty mesh with the given name
func New(name string) *Mesh {
	return &Mesh{Name: name}
}

// VertexCount returns the number of vertices in the mesh
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// FaceCount returns the number of faces in the mesh
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// UVCount returns the number of UV coordinates in the mesh
func (m *Mesh) UVCount() int {
	return len(m.UVs)
}

// AddFace appends a face built from vertex indices only
func (m *Mesh) AddFace(vertices ...int) {
	m.Faces = append(m.Faces, Face{Vertices: vertices})
}

// AddFaceUV appends a face with parallel vertex and UV index loops
func (m *Mesh) AddFaceUV(vertices, uvs []int) {
	m.Faces = append(m.Faces, Face{Vertices: vertices, UVs: uvs})
}

// FacePoints returns the ordered vertex positions of a face loop
func (m *Mesh) FacePoints(face int) []geometry.Vector3 {
	f := m.Faces[face]
	points := make([]geometry.Vector3, len(f.Vertices))
	for i, v := range f.Vertices {
		points[i] = m.Positions[v]
	}
	return points
}

// FaceUVPoints returns the ordered UV coordinates of a face loop,
// or nil if the face has no UVs
func (m *Mesh) FaceUVPoints(face int) []geometry.Vector2 {
	f := m.Faces[face]
	if !f.HasUVs() {
		return nil
	}
	points := make([]geometry.Vector2, len(f.UVs))
	for i, uv := range f.UVs {
		points[i] = m.UVs[uv]
	}
	return points
}

// FaceNormal returns the face normal in object space. An explicit stored
// normal takes priority; otherwise the normal follows the face winding.
// The result is not normalized.
func (m *Mesh) FaceNormal(face int) geometry.Vector3 {
	if face < len(m.Normals) {
		return m.Normals[face]
	}
	return geometry.PolygonNormal(m.FacePoints(face))
}

// FaceCenter returns the centroid of a face loop in object space
func (m *Mesh) FaceCenter(face int) geometry.Vector3 {
	points := m.FacePoints(face)
	if len(points) == 0 {
		return geometry.Vector3{}
	}
	var sum geometry.Vector3
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(points)))
}

// FaceArea returns the 3D area of a face loop
func (m *Mesh) FaceArea(face int) float64 {
	return geometry.PolygonArea3D(m.FacePoints(face))
}

// FaceUVArea returns the UV-space area of a face loop, 0 if it has no UVs
func (m *Mesh) FaceUVArea(face int) float64 {
	return geometry.PolygonAreaUV(m.FaceUVPoints(face))
}

// BoundingBox computes the object-space bounding box of the mesh
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, p := range m.Positions {
		bbox.Extend(p)
	}
	return bbox
}

// SurfaceArea returns the total 3D area of all faces
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for i := range m.Faces {
		total += m.FaceArea(i)
	}
	return total
}
