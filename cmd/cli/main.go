package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/nxlvstats/internal/app"
	"github.com/specialistvlad/nxlvstats/internal/cli"
	"github.com/specialistvlad/nxlvstats/internal/hcl"
)

// main is the entrypoint for the nxlvstats application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:], nil); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			stop()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. A nil environ reads the process environment.
func run(ctx context.Context, in io.Reader, outW, errW io.Writer, args []string, environ map[string]string) error {
	parser := &cli.Parser{
		Loader:  hcl.NewLoader(),
		Environ: environ,
		Stdin:   in,
		Output:  outW,
	}
	appConfig, shouldExit, err := parser.Parse(ctx, args)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	statsApp, err := app.NewApp(outW, errW, appConfig)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	_, err = statsApp.Run(ctx)
	return err
}
