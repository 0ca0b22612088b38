package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration.
// Search order: customPath -> ~/.fifteen/config.yaml -> ./fifteen.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the
// fallback locations are skipped silently when absent.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := readConfig(customPath)
		if err != nil {
			return Config{}, err
		}
		return cfg, cfg.Validate()
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if cfg, err := readConfig(userPath); err == nil {
			return cfg, cfg.Validate()
		}
	}

	if cfg, err := readConfig("fifteen.yaml"); err == nil {
		return cfg, cfg.Validate()
	}

	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	// Start from the defaults so partial files only override what they name.
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fifteen", filename)
}
