package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/nxlvstats/internal/app"
	"github.com/specialistvlad/nxlvstats/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parser turns command-line arguments into a validated app.Config.
type Parser struct {
	Loader  config.Loader     // reads the -config file
	Environ map[string]string // nil reads the process environment
	Stdin   io.Reader         // answers the root prompt when no root is configured
	Output  io.Writer         // receives help text and the prompt
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func (p *Parser) Parse(ctx context.Context, args []string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nxlvstats", flag.ContinueOnError)
	flagSet.SetOutput(p.Output)

	flagSet.Usage = func() {
		fmt.Fprint(p.Output, `
nxlvstats - Gadget and terrain usage statistics for .nxlv level packs.

Usage:
  nxlvstats [options] [PACK_PATH]

Arguments:
  PACK_PATH
    Directory searched recursively for level files. When no path is given
    by flag, argument, config file or NXLV_ROOT, it is asked for on stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaults := config.Defaults()
	rootFlag := flagSet.String("root", "", "Path to the level pack directory.")
	rFlag := flagSet.String("r", "", "Path to the level pack directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	extFlag := flagSet.String("ext", defaults.Extension, "File extension of level files.")
	workersFlag := flagSet.Int("workers", defaults.Workers, "Number of concurrent level parsing workers.")
	strictFlag := flagSet.Bool("strict", false, "Exit non-zero if any level file is skipped.")
	formatFlag := flagSet.String("format", defaults.Format, "Report format. Options: 'text', 'json', 'yaml'.")
	outputFlag := flagSet.String("output", "", "Write the report to this file instead of stdout.")
	publishURLFlag := flagSet.String("publish-url", "", "socket.io server to publish the report to. Empty disables publishing.")
	publishEventFlag := flagSet.String("publish-event", defaults.PublishEvent, "socket.io event name for the published report.")
	publishNamespaceFlag := flagSet.String("publish-namespace", defaults.PublishNamespace, "socket.io namespace for the published report.")
	publishTimeoutFlag := flagSet.Duration("publish-timeout", defaults.PublishTimeout, "Timeout for connecting and for the server's acknowledgement.")
	publishInsecureFlag := flagSet.Bool("publish-insecure", false, "Skip TLS certificate verification when publishing.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one pack path, got %d", flagSet.NArg())}
	}
	slog.Debug("Arguments parsed successfully.")

	settings := defaults

	configPath := *configFlag
	if configPath == "" {
		configPath = p.getenv(config.EnvPrefix + "CONFIG")
	}
	if configPath != "" {
		if err := p.Loader.Load(ctx, configPath, &settings); err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		slog.Debug("Config file applied.", "path", configPath)
	}

	if err := config.ApplyEnv(&settings, p.Environ); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	overrideString(set, "ext", &settings.Extension, *extFlag)
	overrideString(set, "format", &settings.Format, *formatFlag)
	overrideString(set, "output", &settings.Output, *outputFlag)
	overrideString(set, "publish-url", &settings.PublishURL, *publishURLFlag)
	overrideString(set, "publish-event", &settings.PublishEvent, *publishEventFlag)
	overrideString(set, "publish-namespace", &settings.PublishNamespace, *publishNamespaceFlag)
	overrideString(set, "log-format", &settings.LogFormat, *logFormatFlag)
	overrideString(set, "log-level", &settings.LogLevel, *logLevelFlag)
	if set["workers"] {
		settings.Workers = *workersFlag
	}
	if set["strict"] {
		settings.Strict = *strictFlag
	}
	if set["publish-timeout"] {
		settings.PublishTimeout = *publishTimeoutFlag
	}
	if set["publish-insecure"] {
		settings.PublishInsecureSkipVerify = *publishInsecureFlag
	}

	switch {
	case *rootFlag != "":
		settings.Root = *rootFlag
	case *rFlag != "":
		settings.Root = *rFlag
	case flagSet.NArg() > 0:
		settings.Root = flagSet.Arg(0)
	}
	slog.Debug("Pack path determined.", "path", settings.Root)

	if settings.Root == "" {
		root, err := app.Prompt(p.Stdin, p.Output)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		settings.Root = root
	}

	cfg, err := app.NewConfig(settings)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func (p *Parser) getenv(key string) string {
	if p.Environ != nil {
		return p.Environ[key]
	}
	return os.Getenv(key)
}

func overrideString(set map[string]bool, name string, dst *string, value string) {
	if set[name] {
		*dst = value
	}
}
