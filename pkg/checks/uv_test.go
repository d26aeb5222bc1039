package checks

import (
	"testing"

	"github.com/philipparndt/meshcheck/pkg/geometry"
	"github.com/philipparndt/meshcheck/pkg/mesh"
)

// quadStrip builds a strip of unit quads in 3D, each with a UV quad whose
// side length is taken from uvSides
func quadStrip(name string, uvSides ...float64) *mesh.Mesh {
	m := mesh.New(name)
	for i, side := range uvSides {
		x := float64(i)
		base := len(m.Positions)
		m.Positions = append(m.Positions,
			geometry.Vector3{X: x, Y: 0}, geometry.Vector3{X: x + 1, Y: 0},
			geometry.Vector3{X: x + 1, Y: 1}, geometry.Vector3{X: x, Y: 1},
		)
		uvBase := len(m.UVs)
		u := float64(i) * 0.01
		m.UVs = append(m.UVs,
			geometry.Vector2{U: u, V: 0.1}, geometry.Vector2{U: u + side, V: 0.1},
			geometry.Vector2{U: u + side, V: 0.1 + side}, geometry.Vector2{U: u, V: 0.1 + side},
		)
		m.AddFaceUV(
			[]int{base, base + 1, base + 2, base + 3},
			[]int{uvBase, uvBase + 1, uvBase + 2, uvBase + 3},
		)
	}
	return m
}

func TestUVDistortionOutlier(t *testing.T) {
	// Third quad gets twice the UV side length, so four times the UV area
	m := quadStrip("strip", 0.25, 0.25, 0.5)

	result := UVDistortion(m, 0.5, 2.0)
	if got := result.Elements["strip"]; len(got) != 1 || got[0] != 2 {
		t.Errorf("expected only face 2 flagged, got %v", got)
	}
}

func TestUVDistortionUniformMapping(t *testing.T) {
	// Identical ratios normalize to 1.0 regardless of absolute UV scale
	m := quadStrip("strip", 0.05, 0.05, 0.05)
	if result := UVDistortion(m, 0.5, 2.0); !result.IsEmpty() {
		t.Errorf("uniform mapping should pass, got %v", result.Elements)
	}
}

func TestUVDistortionInsufficientData(t *testing.T) {
	single := quadStrip("single", 0.25)
	if result := UVDistortion(single, 0.5, 2.0); !result.IsEmpty() {
		t.Errorf("a single mapped face has nothing to compare against, got %v", result.Elements)
	}

	bare := mesh.New("bare")
	bare.Positions = []geometry.Vector3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	bare.AddFace(0, 1, 2, 3)
	if result := UVDistortion(bare, 0.5, 2.0); !result.IsEmpty() {
		t.Errorf("mesh without UVs should pass distortion, got %v", result.Elements)
	}
}

func TestUVDistortionSkipsZeroAreaFaces(t *testing.T) {
	m := quadStrip("strip", 0.25, 0.25, 0.25)
	// Collapse a face to zero 3D area; its ratio would be infinite
	base := len(m.Positions)
	m.Positions = append(m.Positions,
		geometry.Vector3{X: 5, Y: 0}, geometry.Vector3{X: 6, Y: 0}, geometry.Vector3{X: 7, Y: 0},
	)
	uvBase := len(m.UVs)
	m.UVs = append(m.UVs,
		geometry.Vector2{U: 0.5, V: 0.5}, geometry.Vector2{U: 0.6, V: 0.5}, geometry.Vector2{U: 0.6, V: 0.6},
	)
	m.AddFaceUV([]int{base, base + 1, base + 2}, []int{uvBase, uvBase + 1, uvBase + 2})

	if result := UVDistortion(m, 0.5, 2.0); !result.IsEmpty() {
		t.Errorf("zero-area face must not poison the ratio set, got %v", result.Elements)
	}
}

func TestTexelDensityOutlier(t *testing.T) {
	// Texture scaling is uniform across faces, so the same outlier falls out
	m := quadStrip("strip", 0.25, 0.25, 0.5)

	result := TexelDensity(m, 0.5, 2.0, 1024)
	if got := result.Elements["strip"]; len(got) != 1 || got[0] != 2 {
		t.Errorf("expected only face 2 flagged, got %v", got)
	}

	if result := TexelDensity(quadStrip("even", 0.25, 0.25, 0.25), 0.5, 2.0, 1024); !result.IsEmpty() {
		t.Errorf("uniform density should pass, got %v", result.Elements)
	}
}

func TestMissingUVs(t *testing.T) {
	m := quadStrip("strip", 0.25, 0.25)
	base := len(m.Positions)
	m.Positions = append(m.Positions,
		geometry.Vector3{X: 5, Y: 0}, geometry.Vector3{X: 6, Y: 0}, geometry.Vector3{X: 6, Y: 1},
	)
	m.AddFace(base, base+1, base+2)

	result := MissingUVs(m)
	if got := result.Elements["strip"]; len(got) != 1 || got[0] != 2 {
		t.Errorf("expected only the unmapped face flagged, got %v", got)
	}
}

func TestUVRange(t *testing.T) {
	m := mesh.New("uvs")
	m.UVs = []geometry.Vector2{
		{U: 0.5, V: 0.5},   // fine
		{U: -0.1, V: 0.5},  // negative U
		{U: 10.5, V: 0.5},  // beyond tile budget
		{U: 0.5, V: -0.01}, // negative V
		{U: 10.0, V: 0},    // exactly at the budget passes
	}

	result := UVRange(m, 10.0)
	if got := result.Elements["uvs"]; len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected indices [1 2 3] flagged, got %v", got)
	}
}

func TestCrossBorder(t *testing.T) {
	m := mesh.New("tiles")
	m.Positions = []geometry.Vector3{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	}
	m.UVs = []geometry.Vector2{
		// Inside one tile
		{U: 0.1, V: 0.1}, {U: 0.9, V: 0.1}, {U: 0.9, V: 0.9}, {U: 0.1, V: 0.9},
		// Spanning the u=1 border
		{U: 0.5, V: 0.1}, {U: 1.5, V: 0.1}, {U: 1.5, V: 0.9}, {U: 0.5, V: 0.9},
	}
	m.AddFaceUV([]int{0, 1, 2, 3}, []int{0, 1, 2, 3})
	m.AddFaceUV([]int{0, 1, 2, 3}, []int{4, 5, 6, 7})
	m.AddFace(0, 1, 2, 3) // no UVs, skipped

	result := CrossBorder(m)
	if got := result.Elements["tiles"]; len(got) != 1 || got[0] != 1 {
		t.Errorf("expected only the spanning face flagged, got %v", got)
	}
}

func TestOnBorder(t *testing.T) {
	m := mesh.New("uvs")
	m.UVs = []geometry.Vector2{
		{U: 0.5, V: 0.5},        // inside a tile
		{U: 1.0, V: 0.5},        // U exactly on a border
		{U: 0.5, V: 2.0},        // V exactly on a border
		{U: 0.4999, V: 0.5},     // near but not on
		{U: 1.0000001, V: 0.5},  // within epsilon above a border
		{U: 0.9999999, V: 0.5},  // just below: truncation does not flag it
		{U: -1.0000001, V: 0.5}, // negative border
	}

	result := OnBorder(m)
	got := result.Elements["uvs"]
	expected := []int{1, 2, 4, 6}
	if len(got) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, got)
		}
	}
}

func TestOnBorderNoUVs(t *testing.T) {
	if result := OnBorder(mesh.New("bare")); !result.IsEmpty() {
		t.Errorf("mesh without UVs should pass, got %v", result.Elements)
	}
}

func TestTileOf(t *testing.T) {
	tests := []struct {
		c        float64
		expected int
	}{
		{0.5, 0},
		{1.5, 1},
		{2.0, 2},
		{0.0, -1},
		{-0.5, -1},
		{-1.5, -2},
	}
	for _, tt := range tests {
		if got := tileOf(tt.c); got != tt.expected {
			t.Errorf("tileOf(%v): expected %d, got %d", tt.c, tt.expected, got)
		}
	}
}
