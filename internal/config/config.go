// Package config loads the layered hwscan configuration: defaults,
// overlaid by an optional YAML file, overlaid by command-line flags (the
// CLI applies those after Load).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFileName = "hwscan.yaml"
	userConfigDir  = ".hwscan"
	userConfigFile = "config.yaml"
)

// Load loads the configuration. With an explicit path the file must exist;
// otherwise hwscan.yaml next to the executable and ~/.hwscan/config.yaml
// are tried in that order, and a missing file is not an error.
func Load(explicitPath string) (Config, error) {
	cfg := DefaultConfig()

	if explicitPath != "" {
		if err := overlayFile(&cfg, explicitPath); err != nil {
			return cfg, fmt.Errorf("failed to load config from %s: %w", explicitPath, err)
		}
		return cfg, validate(cfg)
	}

	for _, path := range searchPaths() {
		err := overlayFile(&cfg, path)
		if err == nil {
			break
		}
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	return cfg, validate(cfg)
}

func searchPaths() []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(exe), configFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, userConfigDir, userConfigFile))
	}
	return paths
}

// overlayFile unmarshals a YAML file over cfg, so keys absent from the
// file keep their current values.
func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func validate(cfg Config) error {
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %v", errs)
	}
	return nil
}
