package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file. An empty path
// falls back to ./meshcheck.yaml if present; a missing default file is not
// an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = "meshcheck.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects configuration values the checks cannot work with
func validate(cfg *Config) error {
	c := cfg.Checks
	if c.OverlapTolerance <= 0 {
		return fmt.Errorf("overlap_tolerance must be positive")
	}
	if c.UVDistortionMin > c.UVDistortionMax {
		return fmt.Errorf("uv_distortion_min must not exceed uv_distortion_max")
	}
	if c.TexelDensityMin > c.TexelDensityMax {
		return fmt.Errorf("texel_density_min must not exceed texel_density_max")
	}
	if c.TextureSize <= 0 {
		return fmt.Errorf("texture_size must be positive")
	}
	if c.PolyCountLimit <= 0 {
		return fmt.Errorf("poly_count_limit must be positive")
	}
	return nil
}
