package config

import "time"

// Settings is the raw, unvalidated configuration of a run. Validation and
// typing happen in app.NewConfig.
type Settings struct {
	// Scan
	Root      string `env:"ROOT"`
	Extension string `env:"EXTENSION"`
	Workers   int    `env:"WORKERS"`
	Strict    bool   `env:"STRICT"`

	// Report
	Format string `env:"FORMAT"`
	Output string `env:"OUTPUT"` // empty means stdout

	// Publish
	PublishURL                string        `env:"PUBLISH_URL"`
	PublishEvent              string        `env:"PUBLISH_EVENT"`
	PublishNamespace          string        `env:"PUBLISH_NAMESPACE"`
	PublishTimeout            time.Duration `env:"PUBLISH_TIMEOUT"`
	PublishInsecureSkipVerify bool          `env:"PUBLISH_INSECURE_SKIP_VERIFY"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		Extension:        ".nxlv",
		Workers:          4,
		Format:           "text",
		PublishEvent:     "level_stats",
		PublishNamespace: "/",
		PublishTimeout:   15 * time.Second,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}
