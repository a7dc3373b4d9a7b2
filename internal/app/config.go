package app

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultInputPath is where the map is read from when no path is given.
const DefaultInputPath = "./input"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath  string // map file
	SlopesPath string // optional .hcl/.yaml file or directory; empty means the builtin table
	Strict     bool   // reject a trailing partial row instead of dropping it

	LogFormat string
	LogLevel  string
}

// NewConfig fills defaults and validates the values.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		cfg.InputPath = DefaultInputPath
	}
	if strings.TrimSpace(cfg.InputPath) == "" {
		return nil, errors.New("InputPath must not be blank")
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
