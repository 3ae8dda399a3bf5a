// Package config loads runtime host configuration from environment
// variables.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all host configuration.
type Config struct {
	Kernel  KernelConfig
	Logging LogConfig
}

// KernelConfig holds the knobs of the in-process kernel collaborator.
type KernelConfig struct {
	Pid        uint32 `envconfig:"MTOS_PID" default:"1"`
	HeapLimit  int    `envconfig:"MTOS_HEAP_LIMIT" default:"1048576"`
	MailboxCap int    `envconfig:"MTOS_MAILBOX_CAP" default:"32"`
	MaxSleepMs uint32 `envconfig:"MTOS_MAX_SLEEP_MS" default:"60000"`
	Trace      bool   `envconfig:"MTOS_TRACE" default:"false"`
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

// LoadOrDefault loads configuration from environment or returns the
// defaults.
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
		Kernel: KernelConfig{
			Pid:        1,
			HeapLimit:  1 << 20,
			MailboxCap: 32,
			MaxSleepMs: 60000,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}
