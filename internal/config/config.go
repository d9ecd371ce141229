// Package config loads the application configuration from environment
// variables (prefix RATCHET) layered over an optional config.yaml next to
// the working directory. CLI flags override both.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const configFile = "config.yaml"

// Config is the complete application configuration.
type Config struct {
	Batch   BatchConfig   `yaml:"batch" envconfig:"BATCH"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// BatchConfig controls where input workbooks are read from and where the
// report workbooks are written.
type BatchConfig struct {
	InputDir  string `yaml:"input_dir" envconfig:"INPUT_DIR" default:"data/input" validate:"required"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" default:"data/output" validate:"required"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/ratchet.log"`
}

// Load builds the configuration: defaults and environment first, then the
// YAML file fills anything the environment left unset, then validation.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("RATCHET", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = merge(*fileCfg, cfg)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in configuration used when loading fails.
func Default() *Config {
	return &Config{
		Batch: BatchConfig{
			InputDir:  "data/input",
			OutputDir: "data/output",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/ratchet.log",
		},
	}
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// merge overlays the environment config on the file config; a value set in
// the environment (or by an envconfig default) wins over the file.
func merge(fileCfg, envCfg Config) Config {
	if envCfg.Batch.InputDir == "" {
		envCfg.Batch.InputDir = fileCfg.Batch.InputDir
	}
	if envCfg.Batch.OutputDir == "" {
		envCfg.Batch.OutputDir = fileCfg.Batch.OutputDir
	}
	if envCfg.Logging.Level == "" {
		envCfg.Logging.Level = fileCfg.Logging.Level
	}
	if envCfg.Logging.Format == "" {
		envCfg.Logging.Format = fileCfg.Logging.Format
	}
	if envCfg.Logging.Output == "" {
		envCfg.Logging.Output = fileCfg.Logging.Output
	}
	if envCfg.Logging.FilePath == "" {
		envCfg.Logging.FilePath = fileCfg.Logging.FilePath
	}
	return envCfg
}
