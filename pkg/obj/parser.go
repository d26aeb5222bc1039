// Package obj parses Wavefront OBJ files into the mesh model. Vertex
// positions, texture coordinates and polygonal faces are supported; normals,
// groups, materials and free-form geometry statements are skipped.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/meshcheck/pkg/geometry"
	"github.com/philipparndt/meshcheck/pkg/mesh"
)

// Parse reads an OBJ file and returns a mesh
func Parse(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return ParseReader(file, name)
}

// ParseReader parses an OBJ document from a reader
func ParseReader(reader io.Reader, name string) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(reader)
	m := mesh.New(name)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "o", "g":
			if len(fields) > 1 {
				m.Name = fields[1]
			}

		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			v, err := parseFloats(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m.Positions = append(m.Positions, geometry.NewVector3(v[0], v[1], v[2]))

		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texture coordinate needs 2 components", lineNo)
			}
			v, err := parseFloats(fields[1:3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			m.UVs = append(m.UVs, geometry.NewVector2(v[0], v[1]))

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			if err := parseFace(m, fields[1:]); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading OBJ: %w", err)
	}

	return m, nil
}

func parseFloats(fields []string) ([]float64, error) {
	values := make([]float64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", field)
		}
		values[i] = v
	}
	return values, nil
}

// parseFace parses one face statement. Every corner is "v", "v/vt",
// "v//vn" or "v/vt/vn"; the face gets a UV loop only when every corner
// references a texture coordinate.
func parseFace(m *mesh.Mesh, corners []string) error {
	vertices := make([]int, 0, len(corners))
	uvs := make([]int, 0, len(corners))
	hasUVs := true

	for _, corner := range corners {
		parts := strings.Split(corner, "/")

		vertex, err := resolveIndex(parts[0], len(m.Positions))
		if err != nil {
			return fmt.Errorf("invalid vertex reference %q: %w", corner, err)
		}
		vertices = append(vertices, vertex)

		if len(parts) < 2 || parts[1] == "" {
			hasUVs = false
			continue
		}
		uv, err := resolveIndex(parts[1], len(m.UVs))
		if err != nil {
			return fmt.Errorf("invalid texture reference %q: %w", corner, err)
		}
		uvs = append(uvs, uv)
	}

	if hasUVs {
		m.AddFaceUV(vertices, uvs)
	} else {
		m.AddFace(vertices...)
	}
	return nil
}

// resolveIndex converts a 1-based OBJ index (negative means relative to the
// end of the current list) into a 0-based index
func resolveIndex(field string, count int) (int, error) {
	idx, err := strconv.Atoi(field)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx = count + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %s out of range", field)
	}
	return idx, nil
}
