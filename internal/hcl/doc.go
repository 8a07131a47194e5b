// Package hcl provides the concrete HCL implementation of config.Loader.
// It parses the config file, evaluates its expressions against a small
// evaluation context (home, cwd and an env() function) and translates the
// resulting cty values onto config.Settings.
package hcl
