package config

import (
	"fmt"
	"os"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	return cfg, nil
}

// findConfigFile looks for a config.yaml in the working directory.
func findConfigFile() string {
	const path = "./config.yaml"
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
