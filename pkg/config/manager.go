package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mockconfig.gen.go -package=config

// Manager interface provides configuration management functionality.
type Manager interface {
	LoadConfig(configPath string) (*Config, error)
	DefaultConfig() *Config
}

type realManager struct {
	// No fields needed for basic configuration operations
}

// NewManager creates a new Manager instance.
func NewManager() Manager {
	return &realManager{}
}

// LoadConfig loads configuration from the specified file path, applies
// defaults and environment overrides, and validates the result.
func (m *realManager) LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	config.ApplyDefaults()
	config.ApplyEnv()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &config, nil
}

// DefaultConfig returns the default configuration with environment
// overrides applied. It is not validated: the token may still be absent.
func (m *realManager) DefaultConfig() *Config {
	config := &Config{}
	config.ApplyDefaults()
	config.ApplyEnv()
	return config
}

// LoadConfigWithFallback loads configuration from file, falling back to
// the default configuration when the file does not exist.
func LoadConfigWithFallback(configPath string) (*Config, error) {
	manager := NewManager()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := manager.DefaultConfig()
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return config, nil
	}
	return manager.LoadConfig(configPath)
}
