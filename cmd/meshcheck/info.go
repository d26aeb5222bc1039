package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshcheck/pkg/analysis"
	"github.com/philipparndt/meshcheck/pkg/scene"
)

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Display general information about mesh files",
	Long:  "Show dimensions, vertex/face/edge counts, surface area and edge statistics per mesh.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	scn, failures := scene.FromFiles(args, "")
	for _, f := range failures {
		fmt.Printf("LOAD FAILED  %s: %v\n", f.Path, f.Err)
	}

	for _, m := range scn.Meshes {
		result := analysis.AnalyzeMesh(m)

		fmt.Printf("Mesh: %s\n", m.Name)
		fmt.Printf("  Vertices: %d\n", result.VertexCount)
		fmt.Printf("  Faces: %d\n", result.FaceCount)
		fmt.Printf("  UVs: %d\n", result.UVCount)
		fmt.Printf("  Edges: %d\n", result.EdgeCount)
		fmt.Printf("  Surface Area: %.6f square units\n", result.SurfaceArea)

		fmt.Printf("  Bounding Box:\n")
		fmt.Printf("    Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
		fmt.Printf("    Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
		fmt.Printf("    Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
		fmt.Printf("    Diagonal: %.6f units\n", result.BoundingBox.Diagonal())

		fmt.Printf("  Edge Lengths:\n")
		fmt.Printf("    Minimum: %.6f units\n", result.MinEdgeLength)
		fmt.Printf("    Maximum: %.6f units\n", result.MaxEdgeLength)
		fmt.Printf("    Average: %.6f units\n\n", result.AvgEdgeLength)
	}

	if len(failures) > 0 {
		return fmt.Errorf("%d file(s) could not be loaded", len(failures))
	}
	return nil
}
