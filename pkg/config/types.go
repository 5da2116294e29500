// Package config provides configuration loading and validation for botreport.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Input is the transaction log read when no path is given on the
	// command line. "-" means standard input.
	Input string `yaml:"input"`

	// MaxLineSize is the longest accepted input line in bytes.
	// A longer line is a read error and ends the run.
	MaxLineSize int `yaml:"max_line_size,omitempty"`
}
