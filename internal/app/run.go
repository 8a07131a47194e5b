package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/nxlvstats/internal/ctxlog"
	"github.com/specialistvlad/nxlvstats/internal/report"
)

// ErrSkippedLevels is returned by Run in strict mode when any level file
// could not be tallied.
var ErrSkippedLevels = errors.New("some level files were skipped")

// Run scans the level pack, renders the report and publishes it if a
// publisher is configured. The report is returned even when strict mode turns
// skipped files into an error.
func (a *App) Run(ctx context.Context) (*report.Report, error) {
	logger := a.logger
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")
	logger.Info("🔎 Scanning level pack...", "root", a.config.Root)

	res, err := a.scanner.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	rep := report.New(a.config.Root, res)
	logger = logger.With("run_id", rep.RunID)
	ctx = ctxlog.WithLogger(ctx, logger)

	if err := a.writeReport(ctx, rep); err != nil {
		return nil, err
	}
	logger.Info("🏁 Scan finished.", "files", rep.Files, "skipped", len(rep.Skipped),
		"terrain", rep.Totals.Terrain, "objects", rep.Totals.Objects)

	if a.publisher != nil {
		if err := a.publisher.Publish(ctx, rep); err != nil {
			return rep, fmt.Errorf("publish failed: %w", err)
		}
	}

	if a.config.Strict && len(rep.Skipped) > 0 {
		return rep, fmt.Errorf("%w: %d of %d", ErrSkippedLevels, len(rep.Skipped), rep.Files)
	}

	logger.Debug("App.Run method finished.")
	return rep, nil
}

func (a *App) writeReport(ctx context.Context, rep *report.Report) (err error) {
	var w io.Writer = a.outW
	if a.config.Output != "" {
		f, createErr := os.Create(a.config.Output)
		if createErr != nil {
			return fmt.Errorf("failed to create report file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to close report file: %w", cerr)
			}
		}()
		w = f
	}

	if err := report.Render(w, rep, a.config.Format); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	if a.config.Output != "" {
		ctxlog.FromContext(ctx).Info("Report written.", "path", a.config.Output, "format", a.config.Format)
	}
	return nil
}
