// Package stl parses STL files (ASCII and binary) into the mesh model.
// STL is a triangle soup: every facet carries its own three vertices and an
// explicit normal, and nothing is shared between facets.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/meshcheck/pkg/geometry"
	"github.com/philipparndt/meshcheck/pkg/mesh"
)

// Parse reads an STL file and returns a mesh.
// It automatically detects whether the file is ASCII or binary format.
func Parse(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Read first few bytes to determine format
	header := make([]byte, 6)
	n, err := file.Read(header)
	if err != nil {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	// Reset file pointer
	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	// ASCII format starts with "solid "
	if n >= 5 && strings.HasPrefix(string(header[:5]), "solid") {
		return ParseASCII(file, name)
	}

	return ParseBinary(file, name)
}

// addFacet appends one triangle facet as an independent face with its own
// three vertices and stored normal
func addFacet(m *mesh.Mesh, normal geometry.Vector3, v1, v2, v3 geometry.Vector3) {
	base := len(m.Positions)
	m.Positions = append(m.Positions, v1, v2, v3)
	m.AddFace(base, base+1, base+2)
	m.Normals = append(m.Normals, normal)
}

// ParseASCII parses an ASCII STL document
func ParseASCII(reader io.Reader, name string) (*mesh.Mesh, error) {
	scanner := bufio.NewScanner(reader)
	m := mesh.New(name)

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				m.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				x, _ := strconv.ParseFloat(fields[2], 64)
				y, _ := strconv.ParseFloat(fields[3], 64)
				z, _ := strconv.ParseFloat(fields[4], 64)
				currentNormal = geometry.NewVector3(x, y, z)
			}

		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				vertices = append(vertices, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(vertices) == 3 {
				addFacet(m, currentNormal, vertices[0], vertices[1], vertices[2])
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return m, nil
}

// ParseBinary parses a binary STL document
func ParseBinary(reader io.Reader, name string) (*mesh.Mesh, error) {
	m := mesh.New(name)

	// 80-byte header, may carry a model name
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if headerStr := string(bytes.TrimRight(header, "\x00")); headerStr != "" {
		m.Name = headerStr
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	for i := uint32(0); i < triangleCount; i++ {
		var facet struct {
			Normal     [3]float32
			V1, V2, V3 [3]float32
			Attribute  uint16
		}
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}

		addFacet(m,
			toVector3(facet.Normal),
			toVector3(facet.V1),
			toVector3(facet.V2),
			toVector3(facet.V3),
		)
	}

	return m, nil
}

func toVector3(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
