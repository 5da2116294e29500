package config

import (
	"fmt"
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultInput       = "transactions.txt"
	DefaultMaxLineSize = 1024 * 1024

	MinMaxLineSize = 4 * 1024
	MaxMaxLineSize = 64 * 1024 * 1024
)

// StdinInput is the input path that selects standard input.
const StdinInput = "-"

// Environment variable names.
const (
	EnvInput       = "BOTREPORT_INPUT"
	EnvMaxLineSize = "BOTREPORT_MAX_LINE_SIZE"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:       DefaultInput,
		MaxLineSize: DefaultMaxLineSize,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if input := os.Getenv(EnvInput); input != "" {
		c.Input = input
	}

	if raw := os.Getenv(EnvMaxLineSize); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxLineSize, err)
		}
		c.MaxLineSize = n
	}

	return nil
}
