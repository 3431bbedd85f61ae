package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the codegraph tool.
type Config struct {
	Analyze AnalyzeConfig `yaml:"analyze"`
	Logging LoggingConfig `yaml:"logging"`
}

// AnalyzeConfig holds file selection and analysis configuration.
type AnalyzeConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Depth    string   `yaml:"depth"` // "surface" or "deep"
	Workers  int      `yaml:"workers"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analyze: AnalyzeConfig{
			Includes: []string{"**/*"},
			Excludes: []string{"**/node_modules/**", "**/vendor/**", "**/.git/**", "**/dist/**", "**/build/**", "**/target/**", "**/__pycache__/**", "**/*.min.js"},
			Depth:    "deep",
			Workers:  4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for codegraph.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "codegraph.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".codegraph", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// AnalysisDBPath returns the path to the analysis database.
func AnalysisDBPath(dir string) string {
	return filepath.Join(dir, ".codegraph", "analysis.db")
}

// EnsureStateDir ensures the .codegraph directory exists.
func EnsureStateDir(dir string) error {
	stateDir := filepath.Join(dir, ".codegraph")
	return os.MkdirAll(stateDir, 0755)
}
