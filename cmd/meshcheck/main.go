package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshcheck/version"
)

var rootCmd = &cobra.Command{
	Use:   "meshcheck",
	Short: "A command-line quality checker for polygonal meshes",
	Long: `meshcheck runs a registry of independent quality checks over polygonal
meshes (OBJ, STL, glTF) and reports offending elements: flipped normals,
overlapping vertices, UV distortion, degenerate faces and more. It is meant
to let an artist self-diagnose modeling defects before a model is submitted
or exported.`,
	Version: version.GetFullVersion(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
