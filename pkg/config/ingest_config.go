package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IngestConfig describes one loader run, read from a YAML file. Values
// here override the env-level defaults; CLI flags override both.
type IngestConfig struct {
	Invoices  string `yaml:"invoices"`
	LineItems string `yaml:"line_items"`
}

// LoadIngestConfig parses a loader run config from a YAML file.
func LoadIngestConfig(path string) (*IngestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ingest config %s: %w", path, err)
	}

	var cfg IngestConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ingest config %s: %w", path, err)
	}
	return &cfg, nil
}
