package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSevens loads the Sevens configuration.
// Search order: customPath -> ~/.sevens/configs/sevens.yaml -> ./configs/sevens.yaml -> embedded default
func LoadSevens(customPath string) (SevensConfig, error) {
	cfg := DefaultSevensConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or invalid files fall through to the next candidate.
	for _, path := range []string{userConfigPath("sevens.yaml"), filepath.Join("configs", "sevens.yaml")} {
		if path == "" {
			continue
		}
		if c, ok := readCandidate(path); ok {
			return c, nil
		}
	}

	// Use embedded default YAML
	cfg = DefaultSevensConfig()
	if err := yaml.Unmarshal(defaultSevensYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultSevensConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// readCandidate parses path over the hardcoded defaults, so a partial file
// only overrides the keys it names.
func readCandidate(path string) (SevensConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SevensConfig{}, false
	}
	cfg := DefaultSevensConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SevensConfig{}, false
	}
	if cfg.Validate() != nil {
		return SevensConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sevens", "configs", filename)
}

// Marshal renders cfg as YAML.
func Marshal(cfg SevensConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
