// Package checks implements the individual mesh-quality checks. Every check
// is a pure function of its mesh (or scene) and explicit configuration
// values; no check reads shared mutable state, so checks over independent
// meshes can run in parallel without synchronization.
package checks

// Config carries the tunable parameters of the configurable checks
type Config struct {
	// OverlapTolerance is the distance below which two vertices count as
	// overlapping, in scene linear units
	OverlapTolerance float64 `yaml:"overlap_tolerance"`

	// UVDistortionMin and UVDistortionMax bound the acceptable
	// median-normalized UV/3D area ratio
	UVDistortionMin float64 `yaml:"uv_distortion_min"`
	UVDistortionMax float64 `yaml:"uv_distortion_max"`

	// TexelDensityMin and TexelDensityMax bound the acceptable
	// median-normalized texel density, and TextureSize is the assumed
	// square texture resolution in pixels
	TexelDensityMin float64 `yaml:"texel_density_min"`
	TexelDensityMax float64 `yaml:"texel_density_max"`
	TextureSize     int     `yaml:"texture_size"`

	// PolyCountLimit is the maximum allowed face count per mesh
	PolyCountLimit int `yaml:"poly_count_limit"`

	// ExpectedUnit is the linear unit the scene is expected to use
	ExpectedUnit string `yaml:"expected_unit"`

	// UVRangeMaxU is the largest acceptable U coordinate (UDIM tiles)
	UVRangeMaxU float64 `yaml:"uv_range_max_u"`

	// PoleEdgeLimit is the largest acceptable number of edges meeting at
	// one vertex
	PoleEdgeLimit int `yaml:"pole_edge_limit"`
}

// DefaultConfig returns the default parameters
func DefaultConfig() Config {
	return Config{
		OverlapTolerance: 0.0001,
		UVDistortionMin:  0.5,
		UVDistortionMax:  2.0,
		TexelDensityMin:  0.5,
		TexelDensityMax:  2.0,
		TextureSize:      1024,
		PolyCountLimit:   10000,
		ExpectedUnit:     "cm",
		UVRangeMaxU:      10.0,
		PoleEdgeLimit:    5,
	}
}
