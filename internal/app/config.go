package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/specialistvlad/nxlvstats/internal/config"
	"github.com/specialistvlad/nxlvstats/internal/report"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Root      string
	Extension string
	Workers   int
	Strict    bool

	Format report.Format
	Output string // empty writes to the App's output writer

	PublishURL                string // empty disables publishing
	PublishEvent              string
	PublishNamespace          string
	PublishTimeout            time.Duration
	PublishInsecureSkipVerify bool

	LogLevel  string
	LogFormat string
}

// NewConfig validates merged settings and returns a typed Config.
func NewConfig(s config.Settings) (*Config, error) {
	root := strings.TrimSpace(s.Root)
	if root == "" {
		return nil, errors.New("root is a required configuration field and cannot be empty")
	}
	if s.Extension == "" {
		return nil, errors.New("extension cannot be empty")
	}
	if s.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}

	format, err := report.ParseFormat(s.Format)
	if err != nil {
		return nil, err
	}

	logLevel := strings.ToLower(s.LogLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", s.LogLevel)
	}
	logFormat := strings.ToLower(s.LogFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", s.LogFormat)
	}

	return &Config{
		Root:                      root,
		Extension:                 s.Extension,
		Workers:                   s.Workers,
		Strict:                    s.Strict,
		Format:                    format,
		Output:                    s.Output,
		PublishURL:                s.PublishURL,
		PublishEvent:              s.PublishEvent,
		PublishNamespace:          s.PublishNamespace,
		PublishTimeout:            s.PublishTimeout,
		PublishInsecureSkipVerify: s.PublishInsecureSkipVerify,
		LogLevel:                  logLevel,
		LogFormat:                 logFormat,
	}, nil
}
