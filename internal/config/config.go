package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Shell      ShellConfig
	Window     WindowConfig
	Classifier ClassifierConfig
	Logging    LogConfig
}

// ShellConfig holds expression evaluation settings.
type ShellConfig struct {
	Timeout    time.Duration `envconfig:"FNSH_TIMEOUT" default:"30s"`
	WorkingDir string        `envconfig:"FNSH_WORKDIR" default:""`
}

// WindowConfig holds chunked reader settings.
type WindowConfig struct {
	ChunkSize int `envconfig:"FNSH_CHUNK_SIZE" default:"10000"`
}

// ClassifierConfig holds MIME classification settings.
type ClassifierConfig struct {
	SniffLimit int `envconfig:"FNSH_SNIFF_LIMIT" default:"1000"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Timeout:    30 * time.Second,
			WorkingDir: "",
		},
		Window: WindowConfig{
			ChunkSize: 10000,
		},
		Classifier: ClassifierConfig{
			SniffLimit: 1000,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
