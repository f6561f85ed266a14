package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel        = "warn"
	DefaultOutput          = "list"
	DefaultListenAddr      = "localhost:50051"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds the application configuration loaded from a YAML file.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`
	// Workers is the number of containment check workers, 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Output is the result format: list, json or yaml.
	Output string `yaml:"output"`
	// ListenAddr is the gRPC listen address of the serve command.
	ListenAddr string `yaml:"listenAddr"`
	// ShutdownTimeout bounds the graceful stop of the gRPC server.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads and unmarshals the configuration from the specified YAML file path.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", filePath, err)
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("invalid config file %s: workers must not be negative", filePath)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
}
