// Package config loads and saves the telempack YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the telempack configuration.
type Config struct {
	Listen    Listen  `yaml:"listen"`
	HTTP      HTTP    `yaml:"http"`
	DataDir   string  `yaml:"data_dir"`
	ChunkSize int     `yaml:"chunk_size"`
	Archive   Archive `yaml:"archive"`
	Logging   Logging `yaml:"logging"`
}

// Listen configures the UDP telemetry intake.
type Listen struct {
	Bind string `yaml:"bind"`
	Port int    `yaml:"port"`
}

// HTTP configures the read-only API server.
type HTTP struct {
	Enabled bool   `yaml:"enabled"`
	Bind    string `yaml:"bind"`
	Port    int    `yaml:"port"`
}

// Archive configures the decoded-record archive.
type Archive struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:    Listen{Bind: "0.0.0.0", Port: 35001},
		HTTP:      HTTP{Enabled: false, Bind: "127.0.0.1", Port: 8080},
		DataDir:   "./data",
		ChunkSize: 64 << 10,
		Archive:   Archive{Enabled: false, Path: "./data/archive"},
		Logging:   Logging{Level: "info"},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to the specified path.
func SaveConfig(cfg *Config, configPath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0600)
}
