// Package config defines the format-agnostic settings model for the tool,
// along with the Loader interface used to overlay settings from a config
// file and the environment overlay.
//
// Settings are layered, each layer overriding only the values it sets:
// built-in defaults, then a config file (see package hcl), then NXLV_*
// environment variables, then command-line flags (see package cli).
package config
