package main

import (
	"fmt"
	"os"

	"github.com/pagebrief/pagebrief"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML config file and applies it over the defaults,
// so a file only needs to name the settings it changes. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (pagebrief.Config, error) {
	config := pagebrief.DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config file %q: %w", path, err)
	}
	return config, nil
}
