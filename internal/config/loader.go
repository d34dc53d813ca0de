package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const dasherFile = "dasher.yaml"

// LoadDasher loads Dasher configuration.
// Search order: customPath -> ~/.dasher/configs/dasher.yaml -> ./configs/dasher.yaml -> embedded default.
// Files only need to name the keys they override. An explicit customPath that
// cannot be read, parsed or validated is an error; the implicit locations are
// skipped silently when unusable.
func LoadDasher(customPath string) (DasherConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DasherConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parseDasher(data)
		if err != nil {
			return DasherConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", dasherFile)}
	if p := userConfigPath(dasherFile); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if cfg, err := parseDasher(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseDasher(defaultDasherYAML); err == nil {
		return cfg, nil
	}
	return DefaultDasherConfig(), nil
}

func parseDasher(data []byte) (DasherConfig, error) {
	cfg := DefaultDasherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DasherConfig{}, fmt.Errorf("cannot parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DasherConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dasher", "configs", filename)
}
