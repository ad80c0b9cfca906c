package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ProvidersConfig is the optional YAML configuration for transcription
// backends (providers.yaml next to the binary, or WHISPER_PROVIDERS_CONFIG).
type ProvidersConfig struct {
	DefaultProvider string                            `yaml:"default_provider"`
	Providers       map[string]map[string]interface{} `yaml:"providers"`
}

// LoadProvidersConfig reads the providers file. A missing file yields an
// empty configuration, not an error.
func LoadProvidersConfig(path string) (*ProvidersConfig, error) {
	if path == "" {
		path = os.Getenv("WHISPER_PROVIDERS_CONFIG")
	}
	if path == "" {
		path = "providers.yaml"
	}
	path = os.ExpandEnv(path)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &ProvidersConfig{Providers: map[string]map[string]interface{}{}}, nil
		}
		return nil, fmt.Errorf("read providers config %s: %w", path, err)
	}

	var cfg ProvidersConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse providers config %s: %w", path, err)
	}
	if cfg.Providers == nil {
		cfg.Providers = map[string]map[string]interface{}{}
	}
	return &cfg, nil
}

// SettingsFor returns the settings block for one backend; never nil.
func (c *ProvidersConfig) SettingsFor(name string) map[string]interface{} {
	if settings, ok := c.Providers[name]; ok {
		return settings
	}
	return map[string]interface{}{}
}
