// Package config provides configuration for the puzzle runner.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all runner configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Network NetworkConfig `yaml:"network"`
	Almanac AlmanacConfig `yaml:"almanac"`
	Cosmos  CosmosConfig  `yaml:"cosmos"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// NetworkConfig bounds the day 8 walks.
type NetworkConfig struct {
	MaxSteps int `yaml:"max_steps"`
}

// AlmanacConfig sizes the day 5 brute-force worker pool.
type AlmanacConfig struct {
	Workers int `yaml:"workers"` // 0 selects runtime.NumCPU()
}

// CosmosConfig holds the day 11 part two expansion factor.
type CosmosConfig struct {
	Expansion int `yaml:"expansion"`
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Network: NetworkConfig{
			MaxSteps: 1_000_000_000,
		},
		Cosmos: CosmosConfig{
			Expansion: 1_000_000,
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies AOC_* environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("AOC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("AOC_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"AOC_MAX_STEPS", &c.Network.MaxSteps},
		{"AOC_WORKERS", &c.Almanac.Workers},
		{"AOC_EXPANSION", &c.Cosmos.Expansion},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", e.key, err)
		}
		*e.dst = n
	}
	return nil
}

// Workers resolves the almanac worker count.
func (c *Config) Workers() int {
	if c.Almanac.Workers > 0 {
		return c.Almanac.Workers
	}
	return runtime.NumCPU()
}

// Validate checks the configuration for values the solvers cannot use.
func (c *Config) Validate() error {
	validLevel := false
	for _, l := range ValidLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid logging level: %q (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("invalid logging format: %q (valid: json, console)", c.Logging.Format)
	}
	if c.Network.MaxSteps < 1 {
		return fmt.Errorf("network.max_steps must be >= 1")
	}
	if c.Almanac.Workers < 0 {
		return fmt.Errorf("almanac.workers must be >= 0")
	}
	if c.Cosmos.Expansion < 1 {
		return fmt.Errorf("cosmos.expansion must be >= 1")
	}
	return nil
}
