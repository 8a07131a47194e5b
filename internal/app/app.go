package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/nxlvstats/internal/publish"
	"github.com/specialistvlad/nxlvstats/internal/scan"
)

// Publisher is the sink App.Run hands the finished report to.
type Publisher interface {
	Publish(ctx context.Context, payload any) error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	scanner   *scan.Scanner
	publisher Publisher
}

// Option customizes an App.
type Option func(*App)

// WithPublisher replaces the publisher built from the config.
func WithPublisher(p Publisher) Option {
	return func(a *App) { a.publisher = p }
}

// NewApp is the constructor for the main application. Reports go to outW
// unless the config names an output file; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config, opts ...Option) (*App, error) {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		scanner: scan.New(scan.Options{
			Root:      cfg.Root,
			Extension: cfg.Extension,
			Workers:   cfg.Workers,
		}),
	}

	if cfg.PublishURL != "" {
		p, err := publish.New(publish.Options{
			URL:                cfg.PublishURL,
			Event:              cfg.PublishEvent,
			Namespace:          cfg.PublishNamespace,
			Timeout:            cfg.PublishTimeout,
			InsecureSkipVerify: cfg.PublishInsecureSkipVerify,
		})
		if err != nil {
			return nil, err
		}
		a.publisher = p
		logger.Debug("Publisher configured.", "url", cfg.PublishURL)
	}

	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
