package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "racer.yaml"

// SourceEmbedded names the built-in defaults in Loaded.Source.
const SourceEmbedded = "embedded"

// Loaded is a configuration together with where it came from.
type Loaded struct {
	Config RacerConfig
	Source string // File path, or SourceEmbedded
}

// Load loads the Lane Racer configuration.
// Search order: customPath -> ~/.racer/racer.yaml -> ./configs/racer.yaml -> embedded default.
// Files only need to set the keys they change; the rest keep their defaults.
// A custom path that cannot be read or parsed is an error; the implicit
// locations are skipped when missing or malformed.
func Load(customPath string) (Loaded, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Loaded{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Loaded{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return Loaded{Config: cfg, Source: customPath}, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(configFile), filepath.Join("configs", configFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return Loaded{Config: cfg, Source: path}, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRacerYAML)
	if err != nil {
		cfg = DefaultRacerConfig() // Fallback to hardcoded if embed fails
	}
	return Loaded{Config: cfg, Source: SourceEmbedded}, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RacerConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg RacerConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", filename)
}
