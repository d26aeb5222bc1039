package mesh

import (
	"testing"

	"github.com/philipparndt/meshcheck/pkg/geometry"
)

func TestMakeEdgeCanonical(t *testing.T) {
	if MakeEdge(3, 1) != MakeEdge(1, 3) {
		t.Error("edges should be canonical regardless of direction")
	}
	e := MakeEdge(5, 2)
	if e.A != 2 || e.B != 5 {
		t.Errorf("expected edge (2,5), got (%d,%d)", e.A, e.B)
	}
}

func TestEdgeFacesCube(t *testing.T) {
	m := unitCube()
	edges := m.EdgeFaces()

	if len(edges) != 12 {
		t.Fatalf("cube should have 12 edges, got %d", len(edges))
	}
	for edge, faces := range edges {
		if len(faces) != 2 {
			t.Errorf("cube edge %v should join 2 faces, got %d", edge, len(faces))
		}
	}
}

func TestEdgeFacesSingleQuad(t *testing.T) {
	m := New("quad")
	m.Positions = []geometry.Vector3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	m.AddFace(0, 1, 2, 3)

	edges := m.EdgeFaces()
	if len(edges) != 4 {
		t.Fatalf("quad should have 4 edges, got %d", len(edges))
	}
	for edge, faces := range edges {
		if len(faces) != 1 {
			t.Errorf("boundary edge %v should have 1 face, got %d", edge, len(faces))
		}
	}
}

func TestVertexEdgeCountsCube(t *testing.T) {
	m := unitCube()
	counts := m.VertexEdgeCounts()

	if len(counts) != 8 {
		t.Fatalf("expected counts for 8 vertices, got %d", len(counts))
	}
	for vertex, count := range counts {
		if count != 3 {
			t.Errorf("cube vertex %d should have 3 edges, got %d", vertex, count)
		}
	}
}
