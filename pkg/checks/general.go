package checks

import (
	"fmt"

	"github.com/philipparndt/meshcheck/pkg/checker"
	"github.com/philipparndt/meshcheck/pkg/mesh"
)

// PolyCountLimit flags the whole mesh when its face count exceeds the
// limit. The comparison is strictly greater-than: a mesh exactly at the
// limit passes.
func PolyCountLimit(m *mesh.Mesh, limit int) checker.Result {
	result := checker.NewResult(checker.Nodes)
	if m.FaceCount() > limit {
		result.FlagMesh(m.Name)
	}
	return result
}

// SceneUnits flags the scene when its linear unit differs from the expected
// one. A scene with no declared unit passes: there is nothing to compare.
func SceneUnits(s *mesh.Scene, expected string) checker.Result {
	result := checker.NewResult(checker.SceneFlag)
	if s.Unit == "" || s.Unit == expected {
		return result
	}
	result.Flag = true
	result.Message = fmt.Sprintf("scene unit is %q, expected %q", s.Unit, expected)
	return result
}
