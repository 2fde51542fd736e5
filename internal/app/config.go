package app

import (
	"errors"
	"fmt"
)

// Report formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string // .hcl or .yaml file, or a directory of them
	// Context overrides the project root set by the configuration files.
	Context string

	LogFormat string
	LogLevel  string
	Workers   int
	// Format is the report format written to the output.
	Format string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	switch cfg.Format {
	case "":
		cfg.Format = FormatText
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown report format %q", cfg.Format)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &cfg, nil
}
