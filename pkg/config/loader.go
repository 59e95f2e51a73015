package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading and saving.
type Loader struct {
	configPath string
}

// NewLoader creates a new configuration loader. An empty path enables the
// standard search order.
func NewLoader(configPath string) *Loader {
	return &Loader{
		configPath: configPath,
	}
}

// LoadConfig loads configuration from file or returns the default config
// with environment overrides applied.
func (l *Loader) LoadConfig() (*Config, error) {
	config := DefaultConfig()

	if l.configPath == "" {
		configPath, err := l.findConfigFile()
		if err != nil {
			config.ApplyEnvironmentOverrides()
			if err := config.Validate(); err != nil {
				return nil, err
			}
			return config, nil
		}
		l.configPath = configPath
	}

	if _, err := os.Stat(l.configPath); os.IsNotExist(err) {
		config.ApplyEnvironmentOverrides()
		if err := config.Validate(); err != nil {
			return nil, err
		}
		return config, nil
	}

	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", l.configPath, err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", l.configPath, err)
	}

	config.ApplyEnvironmentOverrides()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", l.configPath, err)
	}

	return config, nil
}

// SaveConfig saves the configuration to file.
func (l *Loader) SaveConfig(config *Config) error {
	if l.configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		l.configPath = filepath.Join(homeDir, ".config", "crew", "config.yaml")
	}

	configDir := filepath.Dir(l.configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(l.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", l.configPath, err)
	}

	return nil
}

// GetConfigPath returns the current config file path.
func (l *Loader) GetConfigPath() string {
	return l.configPath
}

// findConfigFile searches for a configuration file in standard locations.
func (l *Loader) findConfigFile() (string, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no configuration file found")
}

// CreateDefaultConfig writes a default configuration file at path.
func CreateDefaultConfig(path string) error {
	return NewLoader(path).SaveConfig(DefaultConfig())
}
