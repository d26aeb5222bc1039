package checks

import (
	"math"

	"github.com/philipparndt/meshcheck/pkg/checker"
	"github.com/philipparndt/meshcheck/pkg/mesh"
	"github.com/philipparndt/meshcheck/pkg/stats"
)

// areaRatios collects, for every UV-mapped face with nonzero 3D area, the
// face index and the UV/3D area ratio multiplied by scale. Faces without
// UVs contribute neither a ratio nor a vote to the median; zero-area faces
// are degenerate input handled by the zero-area check, not here.
func areaRatios(m *mesh.Mesh, scale float64) ([]int, []float64) {
	var faces []int
	var ratios []float64
	for i := range m.Faces {
		if !m.Faces[i].HasUVs() {
			continue
		}
		area := m.FaceArea(i)
		if area <= degenerateEpsilon {
			continue
		}
		faces = append(faces, i)
		ratios = append(ratios, m.FaceUVArea(i)*scale/area)
	}
	return faces, ratios
}

// flagOutliers median-normalizes the ratio set and returns the faces whose
// normalized ratio falls outside [min, max]. Fewer than two ratios is
// insufficient data to compare and always passes.
func flagOutliers(faces []int, ratios []float64, min, max float64) []int {
	if len(ratios) < 2 {
		return nil
	}
	normalized := stats.Normalize(ratios)
	var flagged []int
	for i, ratio := range normalized {
		if ratio < min || ratio > max {
			flagged = append(flagged, faces[i])
		}
	}
	return flagged
}

// UVDistortion flags faces whose UV-space area deviates from their 3D area
// relative to the rest of the mesh. Raw UV/3D ratios vary with the model's
// overall UV scale, so each ratio is divided by the per-mesh median before
// the threshold comparison. Faces without UVs are skipped, not flagged.
func UVDistortion(m *mesh.Mesh, min, max float64) checker.Result {
	result := checker.NewResult(checker.Polygons)
	faces, ratios := areaRatios(m, 1.0)
	result.FlagElements(m.Name, flagOutliers(faces, ratios, min, max))
	return result
}

// TexelDensity flags faces whose assumed pixels-per-unit² deviates from the
// rest of the mesh. The raw ratio is UV area scaled by textureSize² over 3D
// area; normalization and thresholds work exactly as in UVDistortion.
func TexelDensity(m *mesh.Mesh, min, max float64, textureSize int) checker.Result {
	result := checker.NewResult(checker.Polygons)
	scale := float64(textureSize) * float64(textureSize)
	faces, ratios := areaRatios(m, scale)
	result.FlagElements(m.Name, flagOutliers(faces, ratios, min, max))
	return result
}

// MissingUVs flags faces that carry no UV loop
func MissingUVs(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Polygons)
	var flagged []int
	for i := range m.Faces {
		if !m.Faces[i].HasUVs() {
			flagged = append(flagged, i)
		}
	}
	result.FlagElements(m.Name, flagged)
	return result
}

// UVRange flags UV coordinates outside the acceptable range: negative U or
// V, or U beyond maxU (the UDIM tile budget)
func UVRange(m *mesh.Mesh, maxU float64) checker.Result {
	result := checker.NewResult(checker.UVs)
	var flagged []int
	for i, uv := range m.UVs {
		if uv.U < 0 || uv.U > maxU || uv.V < 0 {
			flagged = append(flagged, i)
		}
	}
	result.FlagElements(m.Name, flagged)
	return result
}

// borderEpsilon is the distance to an integer coordinate below which a UV
// counts as sitting on a tile border
const borderEpsilon = 0.00001

// OnBorder flags UV coordinates lying on a UDIM tile border: U or V whose
// distance to its truncated integer part is below borderEpsilon
func OnBorder(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.UVs)
	var flagged []int
	for i, uv := range m.UVs {
		if onTileBorder(uv.U) || onTileBorder(uv.V) {
			flagged = append(flagged, i)
		}
	}
	result.FlagElements(m.Name, flagged)
	return result
}

func onTileBorder(c float64) bool {
	return math.Abs(math.Trunc(c)-c) < borderEpsilon
}

// CrossBorder flags faces whose UV loop spans more than one unit tile
func CrossBorder(m *mesh.Mesh) checker.Result {
	result := checker.NewResult(checker.Polygons)

	var flagged []int
	for i := range m.Faces {
		uvs := m.FaceUVPoints(i)
		if uvs == nil {
			continue
		}
		uTiles := make(map[int]bool)
		vTiles := make(map[int]bool)
		for _, uv := range uvs {
			uTiles[tileOf(uv.U)] = true
			vTiles[tileOf(uv.V)] = true
		}
		if len(uTiles) > 1 || len(vTiles) > 1 {
			flagged = append(flagged, i)
		}
	}

	result.FlagElements(m.Name, flagged)
	return result
}

// tileOf returns the UDIM tile index of a UV component. Coordinates at or
// below zero belong to the tile below.
func tileOf(c float64) int {
	if c > 0 {
		return int(c)
	}
	return int(c) - 1
}
