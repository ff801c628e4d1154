// Package config loads engine thresholds from an optional YAML file. Every
// value has a default; the file only overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/stance-vcs/internal/gate"
	"github.com/danielpatrickdp/stance-vcs/internal/impact"
)

// #region config
// Config bundles the overridable threshold sections.
type Config struct {
	Impact impact.Config   `yaml:"impact"`
	Gate   gate.GateConfig `yaml:"gate"`
}

// Default returns the built-in thresholds.
func Default() Config {
	return Config{
		Impact: impact.DefaultConfig(),
		Gate:   gate.DefaultGateConfig(),
	}
}

// #endregion config

// #region load
// Load reads path over the defaults. An empty path or a missing file yields
// the defaults; a file that exists but does not parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// #endregion load
