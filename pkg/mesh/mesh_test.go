package mesh

import (
	"math"
	"testing"

	"github.com/philipparndt/meshcheck/pkg/geometry"
)

// unitCube builds a unit cube centered at the origin out of six quads with
// consistently outward windings
func unitCube() *Mesh {
	m := New("cube")
	m.Positions = []geometry.Vector3{
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: 0.5, Z: -0.5},
		{X: -0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: -0.5, Z: 0.5},
		{X: 0.5, Y: 0.5, Z: 0.5},
		{X: -0.5, Y: 0.5, Z: 0.5},
	}
	m.AddFace(4, 5, 6, 7) // +z
	m.AddFace(3, 2, 1, 0) // -z
	m.AddFace(1, 2, 6, 5) // +x
	m.AddFace(0, 4, 7, 3) // -x
	m.AddFace(3, 7, 6, 2) // +y
	m.AddFace(0, 1, 5, 4) // -y
	return m
}

func TestCounts(t *testing.T) {
	m := unitCube()
	if m.VertexCount() != 8 {
		t.Errorf("expected 8 vertices, got %d", m.VertexCount())
	}
	if m.FaceCount() != 6 {
		t.Errorf("expected 6 faces, got %d", m.FaceCount())
	}
	if m.UVCount() != 0 {
		t.Errorf("expected 0 uvs, got %d", m.UVCount())
	}
}

func TestFaceCenter(t *testing.T) {
	m := unitCube()

	// +z face center
	center := m.FaceCenter(0)
	expected := geometry.NewVector3(0, 0, 0.5)
	if center.Distance(expected) > 1e-10 {
		t.Errorf("FaceCenter failed: expected %v, got %v", expected, center)
	}
}

func TestFaceNormalFollowsWinding(t *testing.T) {
	m := unitCube()

	normals := []geometry.Vector3{
		{Z: 1}, {Z: -1}, {X: 1}, {X: -1}, {Y: 1}, {Y: -1},
	}
	for i, expected := range normals {
		normal := m.FaceNormal(i).Normalize()
		if normal.Distance(expected) > 1e-10 {
			t.Errorf("face %d: expected normal %v, got %v", i, expected, normal)
		}
	}
}

func TestFaceNormalStoredTakesPriority(t *testing.T) {
	m := unitCube()
	m.Normals = make([]geometry.Vector3, 6)
	for i := range m.Normals {
		m.Normals[i] = geometry.NewVector3(0, 0, 1)
	}

	for i := 0; i < m.FaceCount(); i++ {
		if normal := m.FaceNormal(i); normal != geometry.NewVector3(0, 0, 1) {
			t.Errorf("face %d: stored normal ignored, got %v", i, normal)
		}
	}
}

func TestFaceArea(t *testing.T) {
	m := unitCube()
	for i := 0; i < m.FaceCount(); i++ {
		if area := m.FaceArea(i); math.Abs(area-1.0) > 1e-10 {
			t.Errorf("face %d: expected area 1.0, got %v", i, area)
		}
	}
	if total := m.SurfaceArea(); math.Abs(total-6.0) > 1e-10 {
		t.Errorf("expected surface area 6.0, got %v", total)
	}
}

func TestBoundingBox(t *testing.T) {
	m := unitCube()
	bbox := m.BoundingBox()

	if bbox.Center() != (geometry.Vector3{}) {
		t.Errorf("expected bounding box centered at origin, got %v", bbox.Center())
	}
	if bbox.Size() != geometry.NewVector3(1, 1, 1) {
		t.Errorf("expected unit size, got %v", bbox.Size())
	}
}

func TestFaceUVPoints(t *testing.T) {
	m := New("quad")
	m.Positions = []geometry.Vector3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	m.UVs = []geometry.Vector2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1},
	}
	m.AddFaceUV([]int{0, 1, 2, 3}, []int{0, 1, 2, 3})
	m.AddFace(0, 1, 2, 3)

	if !m.Faces[0].HasUVs() {
		t.Error("face 0 should have UVs")
	}
	if m.Faces[1].HasUVs() {
		t.Error("face 1 should not have UVs")
	}

	uvs := m.FaceUVPoints(0)
	if len(uvs) != 4 {
		t.Fatalf("expected 4 uv points, got %d", len(uvs))
	}
	if math.Abs(m.FaceUVArea(0)-1.0) > 1e-10 {
		t.Errorf("expected UV area 1.0, got %v", m.FaceUVArea(0))
	}

	if m.FaceUVPoints(1) != nil {
		t.Error("face without UVs should return nil UV points")
	}
	if m.FaceUVArea(1) != 0 {
		t.Errorf("face without UVs should have UV area 0, got %v", m.FaceUVArea(1))
	}
}

func TestEmptyMesh(t *testing.T) {
	m := New("empty")
	if !m.BoundingBox().IsEmpty() {
		t.Error("empty mesh should have empty bounding box")
	}
	if m.SurfaceArea() != 0 {
		t.Errorf("empty mesh surface area should be 0, got %v", m.SurfaceArea())
	}
}
