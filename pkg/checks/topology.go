package checks

import (
	"fmt"
	"sort"

	"github.com/philipparndt/meshcheck/pkg/checker"
	"github.com/philipparndt/meshcheck/pkg/geometry"
	"github.com/philipparndt/meshcheck/pkg/mesh"
	"github.com/philipparndt/meshcheck/pkg/spatial"
)

// degenerateEpsilon is the area/length below which geometry counts as zero
const degenerateEpsilon = 1e-8

// FlippedNormals flags faces whose normal points toward the mesh interior.
//
// The reference point is the object-space bounding box center, so the
// verdict is invariant under any transform applied to the whole object.
// A face is flagged when the dot product of its normal with the direction
// from the center to the face center is strictly negative; a face whose
// center coincides with the reference point is not flagged.
//
// This is a convexity heuristic: it is exact for convex meshes with
// consistent outward normals and can produce false positives on markedly
// concave meshes. That limitation is an accepted property of the check.
func FlippedNormals(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Polygons)

	center := m.BoundingBox().Center()
	var flagged []int
	for i := range m.Faces {
		outward := m.FaceCenter(i).Sub(center)
		if m.FaceNormal(i).Dot(outward) < 0 {
			flagged = append(flagged, i)
		}
	}

	result.FlagElements(m.Name, flagged)
	return result
}

// OverlappingVertices flags vertices that lie within tolerance of at least
// one other vertex. Detection uses a spatial hash grid whose cell size
// equals the tolerance, so each vertex only needs to be compared against the
// 27-cell neighborhood around its own cell. Reporting is pairwise: a chain
// of vertices each within tolerance of the next flags every chain member
// that participates in a pair, without clustering the chain as a whole.
func OverlappingVertices(m *mesh.Mesh, tolerance float64) checker.Result {
	result := checker.NewResult(checker.Vertices)
	if m.VertexCount() < 2 {
		return result
	}

	grid := spatial.Build(m.Positions, tolerance)
	result.FlagElements(m.Name, grid.OverlappingIndices())
	return result
}

// Triangles flags three-sided faces
func Triangles(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Polygons)
	var flagged []int
	for i := range m.Faces {
		if len(m.Faces[i].Vertices) == 3 {
			flagged = append(flagged, i)
		}
	}
	result.FlagElements(m.Name, flagged)
	return result
}

// Ngons flags faces with more than four sides
func Ngons(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Polygons)
	var flagged []int
	for i := range m.Faces {
		if len(m.Faces[i].Vertices) > 4 {
			flagged = append(flagged, i)
		}
	}
	result.FlagElements(m.Name, flagged)
	return result
}

// ZeroAreaFaces flags faces whose 3D area is effectively zero
func ZeroAreaFaces(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Polygons)
	var flagged []int
	for i := range m.Faces {
		if m.FaceArea(i) <= degenerateEpsilon {
			flagged = append(flagged, i)
		}
	}
	result.FlagElements(m.Name, flagged)
	return result
}

// ZeroLengthEdges flags edges whose endpoints effectively coincide
func ZeroLengthEdges(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Edges)
	var flagged []checker.EdgeKey
	for edge := range m.EdgeFaces() {
		if m.Positions[edge.A].Distance(m.Positions[edge.B]) <= degenerateEpsilon {
			flagged = append(flagged, checker.EdgeKey{edge.A, edge.B})
		}
	}
	result.FlagEdges(m.Name, flagged)
	return result
}

// OpenEdges flags edges referenced by fewer than two faces
func OpenEdges(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Edges)
	var flagged []checker.EdgeKey
	for edge, faces := range m.EdgeFaces() {
		if len(faces) < 2 {
			flagged = append(flagged, checker.EdgeKey{edge.A, edge.B})
		}
	}
	result.FlagEdges(m.Name, flagged)
	return result
}

// NoneManifoldEdges flags edges referenced by more than two faces
func NoneManifoldEdges(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Edges)
	var flagged []checker.EdgeKey
	for edge, faces := range m.EdgeFaces() {
		if len(faces) > 2 {
			flagged = append(flagged, checker.EdgeKey{edge.A, edge.B})
		}
	}
	result.FlagEdges(m.Name, flagged)
	return result
}

// Lamina flags faces that share their entire edge set with another face
func Lamina(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Polygons)

	groups := make(map[string][]int)
	for i := range m.Faces {
		edges := m.FaceEdges(i)
		if len(edges) == 0 {
			continue
		}
		sort.Slice(edges, func(a, b int) bool {
			if edges[a].A != edges[b].A {
				return edges[a].A < edges[b].A
			}
			return edges[a].B < edges[b].B
		})
		key := ""
		for _, e := range edges {
			key += fmt.Sprintf("%d-%d;", e.A, e.B)
		}
		groups[key] = append(groups[key], i)
	}

	var flagged []int
	for _, faces := range groups {
		if len(faces) > 1 {
			flagged = append(flagged, faces...)
		}
	}
	result.FlagElements(m.Name, flagged)
	return result
}

// ConcaveFaces flags faces whose vertex loop turns in both directions.
// For each corner the cross product of the adjacent edges is compared
// against the face normal; a corner winding against the normal marks the
// face as concave. Triangles are always convex and never flagged.
func ConcaveFaces(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Polygons)

	var flagged []int
	for i := range m.Faces {
		points := m.FacePoints(i)
		if len(points) < 4 {
			continue
		}
		// Winding-derived normal, so the verdict is independent of any
		// stored normal orientation
		normal := geometry.PolygonNormal(points)
		for c := range points {
			prev := points[(c+len(points)-1)%len(points)]
			next := points[(c+1)%len(points)]
			turn := points[c].Sub(prev).Cross(next.Sub(points[c]))
			if turn.Dot(normal) < -degenerateEpsilon {
				flagged = append(flagged, i)
				break
			}
		}
	}

	result.FlagElements(m.Name, flagged)
	return result
}

// Poles flags vertices with more than limit incident edges
func Poles(m *mesh.Mesh, limit int) checker.Result {
	result := checker.NewResult(checker.Vertices)

	var flagged []int
	for vertex, count := range m.VertexEdgeCounts() {
		if count > limit {
			flagged = append(flagged, vertex)
		}
	}

	result.FlagElements(m.Name, flagged)
	return result
}
