// Package cli is responsible for parsing command-line arguments, layering
// them over the config file and NXLV_* environment, prompting for the level
// pack path when none is configured, and mapping failures to exit codes.
package cli
