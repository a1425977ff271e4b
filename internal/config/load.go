package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads, parses, defaults and validates the YAML configuration file.
func LoadConfig(filename string) (*Config, error) {
	fileBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(fileBytes, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in '%s': %w", filename, err)
	}

	applyDefaults(&config)

	if err := Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
