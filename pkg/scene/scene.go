// Package scene assembles the working set checks run against: meshes loaded
// from files, either listed directly or described by a YAML scene manifest.
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/meshcheck/pkg/gltf"
	"github.com/philipparndt/meshcheck/pkg/mesh"
	"github.com/philipparndt/meshcheck/pkg/obj"
	"github.com/philipparndt/meshcheck/pkg/stl"
)

// Manifest is the on-disk scene description
type Manifest struct {
	Unit   string `yaml:"unit"`
	Meshes []struct {
		Path string `yaml:"path"`
	} `yaml:"meshes"`
}

// LoadError records one mesh file that could not be loaded. Load failures
// do not abort the rest of the scene; the failed file is simply excluded
// from the working set and surfaced to the caller.
type LoadError struct {
	Path string
	Err  error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// FromFiles builds a scene by loading each file through the loader matching
// its extension. The returned errors are per-file; a scene is returned even
// when some files fail.
func FromFiles(paths []string, unit string) (*mesh.Scene, []LoadError) {
	s := mesh.NewScene(unit)
	var failures []LoadError

	for _, path := range paths {
		meshes, err := loadFile(path)
		if err != nil {
			failures = append(failures, LoadError{Path: path, Err: err})
			continue
		}
		s.Add(meshes...)
	}

	return s, failures
}

// LoadManifest reads a scene manifest and loads every mesh it references.
// Relative mesh paths resolve against the manifest's directory.
func LoadManifest(path string) (*mesh.Scene, []LoadError, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	base := filepath.Dir(path)
	paths := make([]string, 0, len(manifest.Meshes))
	for _, entry := range manifest.Meshes {
		meshPath := entry.Path
		if !filepath.IsAbs(meshPath) {
			meshPath = filepath.Join(base, meshPath)
		}
		paths = append(paths, meshPath)
	}

	s, failures := FromFiles(paths, manifest.Unit)
	return s, failures, nil
}

// loadFile dispatches to the format loader for the file's extension
func loadFile(path string) ([]*mesh.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".obj":
		m, err := obj.Parse(path)
		if err != nil {
			return nil, err
		}
		return []*mesh.Mesh{m}, nil
	case ".stl":
		m, err := stl.Parse(path)
		if err != nil {
			return nil, err
		}
		return []*mesh.Mesh{m}, nil
	case ".gltf", ".glb":
		return gltf.Parse(path)
	}
	return nil, fmt.Errorf("unsupported mesh format %q", filepath.Ext(path))
}
