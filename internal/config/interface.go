package config

import "context"

// Loader is the interface for a format-specific config file loader.
type Loader interface {
	// Load reads the file at path and overwrites the fields of s that the
	// file sets. Fields the file does not mention are left unchanged.
	Load(ctx context.Context, path string, s *Settings) error
}
