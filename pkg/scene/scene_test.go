package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const triangleOBJ = `o tri
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFromFiles(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "tri.obj", triangleOBJ)

	s, failures := FromFiles([]string{objPath}, "cm")
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if s.Unit != "cm" {
		t.Errorf("expected unit cm, got %q", s.Unit)
	}
	if len(s.Meshes) != 1 || s.Meshes[0].Name != "tri" {
		t.Fatalf("unexpected meshes: %v", s.Meshes)
	}
	if s.Meshes[0].FaceCount() != 1 {
		t.Errorf("expected 1 face, got %d", s.Meshes[0].FaceCount())
	}
}

func TestFromFilesRecordsFailures(t *testing.T) {
	dir := t.TempDir()
	objPath := writeFile(t, dir, "tri.obj", triangleOBJ)
	txtPath := writeFile(t, dir, "notes.txt", "not a mesh")
	missing := filepath.Join(dir, "missing.obj")

	s, failures := FromFiles([]string{objPath, txtPath, missing}, "cm")
	if len(s.Meshes) != 1 {
		t.Fatalf("good file should still load, got %d meshes", len(s.Meshes))
	}
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %v", failures)
	}
	if !strings.Contains(failures[0].Error(), "unsupported mesh format") {
		t.Errorf("unexpected failure for txt file: %v", failures[0])
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tri.obj", triangleOBJ)
	manifest := writeFile(t, dir, "scene.yaml", `unit: m
meshes:
  - path: tri.obj
`)

	s, failures, err := LoadManifest(manifest)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(failures) != 0 {
		t.Fatalf("unexpected failures: %v", failures)
	}
	if s.Unit != "m" {
		t.Errorf("expected unit from manifest, got %q", s.Unit)
	}
	if len(s.Meshes) != 1 {
		t.Fatalf("relative path should resolve against the manifest dir, got %d meshes", len(s.Meshes))
	}
}

func TestLoadManifestMissing(t *testing.T) {
	if _, _, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing manifest should fail")
	}
}

func TestLoadManifestInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	manifest := writeFile(t, dir, "scene.yaml", "unit: [broken")

	if _, _, err := LoadManifest(manifest); err == nil {
		t.Error("malformed manifest should fail")
	}
}
