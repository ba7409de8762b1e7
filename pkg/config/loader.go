package config

import "fmt"

// FromFile reads the configuration file on top of the defaults.
func FromFile(path string) (Configuration, error) {
	cfg := Default()

	err := DecodeYAMLFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	return cfg, nil
}
