package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile decodes a YAML file over the already-populated config, so the
// file only needs to set the keys it wants to change.
func overlayFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
