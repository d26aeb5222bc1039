package mesh

// Scene is the working set checks run against: the meshes under inspection
// plus scene-level settings such as the linear unit.
type Scene struct {
	Unit   string
	Meshes []*Mesh
}

// NewScene creates a scene with the given linear unit
func NewScene(unit string) *Scene {
	return &Scene{Unit: unit}
}

// Add appends meshes to the working set
func (s *Scene) Add(meshes ...*Mesh) {
	s.Meshes = append(s.Meshes, meshes...)
}
