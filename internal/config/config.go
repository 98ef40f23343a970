// Package config loads connector configuration from an optional YAML
// file and environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the connector configuration. Environment variables
// override values read from the file.
type Config struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	BaseURL  string `yaml:"base_url"`
	LogLevel string `yaml:"log_level"`
}

// Load reads configuration from the optional YAML file at path and then
// from environment variables (SIGSCI_EMAIL, SIGSCI_PASSWORD,
// SIGSCI_BASE_URL, SIGSCI_LOG_LEVEL), returning a validated Config.
// Email and password are required; everything else has defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{
		LogLevel: "info",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if v, ok := os.LookupEnv("SIGSCI_EMAIL"); ok {
		cfg.Email = v
	}
	if v, ok := os.LookupEnv("SIGSCI_PASSWORD"); ok {
		cfg.Password = v
	}
	if v, ok := os.LookupEnv("SIGSCI_BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := os.LookupEnv("SIGSCI_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}

	var missing []string
	if cfg.Email == "" {
		missing = append(missing, "SIGSCI_EMAIL")
	}
	if cfg.Password == "" {
		missing = append(missing, "SIGSCI_PASSWORD")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
