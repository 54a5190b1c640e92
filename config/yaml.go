package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// loadFromFile reads path and merges its fields onto cfg, leaving any field
// the file omits at its current (default) value.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
