package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "NXLV_"

// ApplyEnv overwrites fields of s from NXLV_* variables in environ. A nil
// environ reads the process environment.
func ApplyEnv(s *Settings, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(s, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
