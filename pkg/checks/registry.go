package checks

import (
	"github.com/philipparndt/meshcheck/pkg/checker"
	"github.com/philipparndt/meshcheck/pkg/mesh"
)

// NewRegistry builds the default check registry with the given
// configuration bound into every configurable check. Registration probes
// each check's result kind, so a declaration mismatch surfaces here rather
// than at run time.
func NewRegistry(cfg Config) (*checker.Registry, error) {
	registry := checker.NewRegistry()

	all := []checker.Check{
		{
			ID: "flippedNormals", Label: "Flipped Normals", Category: "topology",
			Kind: checker.Polygons,
			Run:  FlippedNormals,
		},
		{
			ID: "overlappingVertices", Label: "Overlapping Vertices", Category: "topology",
			Kind: checker.Vertices,
			Run: func(m *mesh.Mesh) checker.Result {
				return OverlappingVertices(m, cfg.OverlapTolerance)
			},
		},
		{
			ID: "triangles", Label: "Triangles", Category: "topology",
			Kind: checker.Polygons,
			Run:  Triangles,
		},
		{
			ID: "ngons", Label: "Ngons", Category: "topology",
			Kind: checker.Polygons,
			Run:  Ngons,
		},
		{
			ID: "zeroAreaFaces", Label: "Zero Area Faces", Category: "topology",
			Kind: checker.Polygons,
			Run:  ZeroAreaFaces,
		},
		{
			ID: "zeroLengthEdges", Label: "Zero Length Edges", Category: "topology",
			Kind: checker.Edges,
			Run:  ZeroLengthEdges,
		},
		{
			ID: "openEdges", Label: "Open Edges", Category: "topology",
			Kind: checker.Edges,
			Run:  OpenEdges,
		},
		{
			ID: "noneManifoldEdges", Label: "None Manifold Edges", Category: "topology",
			Kind: checker.Edges,
			Run:  NoneManifoldEdges,
		},
		{
			ID: "lamina", Label: "Lamina", Category: "topology",
			Kind: checker.Polygons,
			Run:  Lamina,
		},
		{
			ID: "concaveFaces", Label: "Concave Faces", Category: "topology",
			Kind: checker.Polygons,
			Run:  ConcaveFaces,
		},
		{
			ID: "poles", Label: "Poles", Category: "topology",
			Kind: checker.Vertices,
			Run: func(m *mesh.Mesh) checker.Result {
				return Poles(m, cfg.PoleEdgeLimit)
			},
		},
		{
			ID: "uvDistortion", Label: "UV Distortion", Category: "UVs",
			Kind: checker.Polygons,
			Run: func(m *mesh.Mesh) checker.Result {
				return UVDistortion(m, cfg.UVDistortionMin, cfg.UVDistortionMax)
			},
		},
		{
			ID: "texelDensity", Label: "Texel Density", Category: "UVs",
			Kind: checker.Polygons,
			Run: func(m *mesh.Mesh) checker.Result {
				return TexelDensity(m, cfg.TexelDensityMin, cfg.TexelDensityMax, cfg.TextureSize)
			},
		},
		{
			ID: "missingUVs", Label: "Missing UVs", Category: "UVs",
			Kind: checker.Polygons,
			Run:  MissingUVs,
		},
		{
			ID: "uvRange", Label: "UV Range", Category: "UVs",
			Kind: checker.UVs,
			Run: func(m *mesh.Mesh) checker.Result {
				return UVRange(m, cfg.UVRangeMaxU)
			},
		},
		{
			ID: "onBorder", Label: "On Border", Category: "UVs",
			Kind: checker.UVs,
			Run:  OnBorder,
		},
		{
			ID: "crossBorder", Label: "Cross Border", Category: "UVs",
			Kind: checker.Polygons,
			Run:  CrossBorder,
		},
		{
			ID: "polyCountLimit", Label: "Poly Count Limit", Category: "general",
			Kind: checker.Nodes,
			Run: func(m *mesh.Mesh) checker.Result {
				return PolyCountLimit(m, cfg.PolyCountLimit)
			},
		},
		{
			ID: "sceneUnits", Label: "Scene Units", Category: "scene",
			Kind: checker.SceneFlag,
			RunScene: func(s *mesh.Scene) checker.Result {
				return SceneUnits(s, cfg.ExpectedUnit)
			},
		},
	}

	for _, c := range all {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// MustRegistry builds the default registry and panics on a configuration
// fault. The default check set is known good, so this is safe for the CLI.
func MustRegistry(cfg Config) *checker.Registry {
	registry, err := NewRegistry(cfg)
	if err != nil {
		panic(err)
	}
	return registry
}
