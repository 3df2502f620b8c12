// Package config provides configuration loading and validation for the
// streamstat CLI.
package config

import "errors"

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("output format must be one of: table, json, plain")
	ErrInvalidPrecision = errors.New("output precision must be non-negative")
	ErrInvalidBins      = errors.New("plot bins must be positive")
)

// Output formats accepted by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatPlain = "plain"
)

// Default configuration values.
const (
	defaultFormat    = FormatTable
	defaultPrecision = 4
	defaultColor     = true
	defaultBins      = 20
	defaultLogLevel  = "info"
)

// Config holds all configuration for the streamstat CLI.
type Config struct {
	Output  OutputConfig  `mapstructure:"output"`
	Plot    PlotConfig    `mapstructure:"plot"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig holds report rendering configuration.
type OutputConfig struct {
	// Format selects the describe report renderer: table, json, or plain.
	Format string `mapstructure:"format"`

	// Precision is the number of fractional digits printed per statistic.
	Precision int `mapstructure:"precision"`

	// Color enables colored table headers on terminals.
	Color bool `mapstructure:"color"`
}

// PlotConfig holds histogram plotting configuration.
type PlotConfig struct {
	// Bins is the number of histogram buckets.
	Bins int `mapstructure:"bins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum slog level: debug, info, warn, or error.
	Level string `mapstructure:"level"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatPlain:
	default:
		return ErrInvalidFormat
	}

	if c.Output.Precision < 0 {
		return ErrInvalidPrecision
	}

	if c.Plot.Bins < 1 {
		return ErrInvalidBins
	}

	return nil
}
