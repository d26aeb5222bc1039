// Package checker defines the check result model, the check registry, and
// the runner that evaluates registered checks over a scene and aggregates
// their results.
package checker

import (
	"fmt"
	"sort"
)

// Kind identifies the shape of elements a check reports
type Kind int

const (
	// Nodes flags whole meshes
	Nodes Kind = iota
	// Vertices flags vertex indices per mesh
	Vertices
	// Edges flags vertex index pairs per mesh
	Edges
	// Polygons flags face indices per mesh
	Polygons
	// UVs flags UV coordinate indices per mesh
	UVs
	// SceneFlag is a single boolean verdict for the whole scene
	SceneFlag
)

// String returns the serialized name of the kind
func (k Kind) String() string {
	switch k {
	case Nodes:
		return "nodes"
	case Vertices:
		return "vertex"
	case Edges:
		return "edge"
	case Polygons:
		return "polygon"
	case UVs:
		return "uv"
	case SceneFlag:
		return "sceneFlag"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// EdgeKey identifies an undirected edge by its two vertex indices, low first
type EdgeKey [2]int

// Result is a tagged union over the result kinds. Exactly the fields
// matching Kind are meaningful; an empty result means the check passed.
type Result struct {
	Kind Kind

	// Meshes flags whole meshes (Kind == Nodes)
	Meshes []string
	// Elements maps mesh name to flagged vertex/face/uv indices
	// (Kind == Vertices, Polygons or UVs)
	Elements map[string][]int
	// Edges maps mesh name to flagged edges (Kind == Edges)
	Edges map[string][]EdgeKey

	// Flag and Message carry the scene-level verdict (Kind == SceneFlag).
	// Flag true means the check failed.
	Flag    bool
	Message string
}

// NewResult creates an empty (passing) result of the given kind
func NewResult(kind Kind) Result {
	return Result{Kind: kind}
}

// FlagMesh records a whole-mesh defect
func (r *Result) FlagMesh(name string) {
	r.Meshes = append(r.Meshes, name)
}

// FlagElements records per-element defects for one mesh. Empty index sets
// are dropped so that passing meshes never appear in the result.
func (r *Result) FlagElements(name string, indices []int) {
	if len(indices) == 0 {
		return
	}
	if r.Elements == nil {
		r.Elements = make(map[string][]int)
	}
	r.Elements[name] = append(r.Elements[name], indices...)
}

// FlagEdges records per-edge defects for one mesh
func (r *Result) FlagEdges(name string, edges []EdgeKey) {
	if len(edges) == 0 {
		return
	}
	if r.Edges == nil {
		r.Edges = make(map[string][]EdgeKey)
	}
	r.Edges[name] = append(r.Edges[name], edges...)
}

// IsEmpty reports whether the result flags nothing, i.e. the check passed
func (r Result) IsEmpty() bool {
	if r.Kind == SceneFlag {
		return !r.Flag
	}
	return len(r.Meshes) == 0 && len(r.Elements) == 0 && len(r.Edges) == 0
}

// Merge unions another result of the same kind into this one.
// Results of different kinds cannot be merged.
func (r *Result) Merge(other Result) error {
	if r.Kind != other.Kind {
		return fmt.Errorf("cannot merge %s result into %s result", other.Kind, r.Kind)
	}

	r.Meshes = append(r.Meshes, other.Meshes...)
	for name, indices := range other.Elements {
		r.FlagElements(name, indices)
	}
	for name, edges := range other.Edges {
		r.FlagEdges(name, edges)
	}
	if other.Flag {
		r.Flag = true
		r.Message = other.Message
	}
	return nil
}

// sortIndices orders all flagged element sets for deterministic output
func (r *Result) sortIndices() {
	sort.Strings(r.Meshes)
	for _, indices := range r.Elements {
		sort.Ints(indices)
	}
	for _, edges := range r.Edges {
		sort.Slice(edges, func(i, j int) bool {
			if edges[i][0] != edges[j][0] {
				return edges[i][0] < edges[j][0]
			}
			return edges[i][1] < edges[j][1]
		})
	}
}
