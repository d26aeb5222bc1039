// Package config handles meshcheck configuration loading.
package config

import (
	"github.com/philipparndt/meshcheck/pkg/checks"
)

// Config holds all meshcheck settings.
type Config struct {
	Checks  checks.Config `yaml:"checks"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the documented default values.
func Default() *Config {
	return &Config{
		Checks: checks.DefaultConfig(),
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
