// Package analysis computes summary measurements over a mesh for the info
// command.
package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/meshcheck/pkg/geometry"
	"github.com/philipparndt/meshcheck/pkg/mesh"
)

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	VertexCount   int
	FaceCount     int
	UVCount       int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeMesh computes summary measurements for a mesh
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox: m.BoundingBox(),
		SurfaceArea: m.SurfaceArea(),
		VertexCount: m.VertexCount(),
		FaceCount:   m.FaceCount(),
		UVCount:     m.UVCount(),
	}
	result.Dimensions = result.BoundingBox.Size()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for edge := range m.EdgeFaces() {
		length := m.Positions[edge.A].Distance(m.Positions[edge.B])
		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
		result.EdgeCount++
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FormatValue formats a measurement with its unit
func FormatValue(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
