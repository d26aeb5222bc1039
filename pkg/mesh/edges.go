package mesh

// Edge identifies an undirected edge by its two vertex indices, ordered so
// that A < B. The same edge referenced from two adjacent faces compares
// equal regardless of winding.
type Edge struct {
	A, B int
}

// MakeEdge builds a canonical Edge from two vertex indices
func MakeEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// FaceEdges returns the canonical edges of one face loop
func (m *Mesh) FaceEdges(face int) []Edge {
	loop := m.Faces[face].Vertices
	if len(loop) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(loop))
	for i := range loop {
		next := loop[(i+1)%len(loop)]
		edges = append(edges, MakeEdge(loop[i], next))
	}
	return edges
}

// EdgeFaces maps every edge in the mesh to the indices of the faces that
// reference it. Open edges map to one face, manifold edges to two, and
// non-manifold edges to three or more.
func (m *Mesh) EdgeFaces() map[Edge][]int {
	edges := make(map[Edge][]int)
	for f := range m.Faces {
		for _, e := range m.FaceEdges(f) {
			edges[e] = append(edges[e], f)
		}
	}
	return edges
}

// VertexEdgeCounts returns the number of distinct edges incident to each
// vertex index
func (m *Mesh) VertexEdgeCounts() map[int]int {
	counts := make(map[int]int)
	for edge := range m.EdgeFaces() {
		counts[edge.A]++
		counts[edge.B]++
	}
	return counts
}
