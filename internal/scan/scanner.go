package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/nxlvstats/internal/ctxlog"
	"github.com/specialistvlad/nxlvstats/internal/fsutil"
	"github.com/specialistvlad/nxlvstats/internal/level"
	"github.com/specialistvlad/nxlvstats/internal/stats"
)

// ErrNotUTF8 is wrapped by an IOError for files that are not valid UTF-8.
var ErrNotUTF8 = errors.New("file content is not valid UTF-8")

// IOError is a fatal failure to read the level pack.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Options configures a Scanner.
type Options struct {
	Root      string
	Extension string
	Workers   int
}

// Skipped records a level file excluded from the counts.
type Skipped struct {
	Path   string `json:"path" yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// Result is the outcome of a successful scan.
type Result struct {
	Files   int // level files discovered
	Tally   *stats.Tally
	Skipped []Skipped // sorted by path
}

// Scanner walks a level pack and tallies every level file in it.
type Scanner struct {
	opts     Options
	readFile func(name string) ([]byte, error)
}

// New creates a Scanner. A non-positive worker count means one worker.
func New(opts Options) *Scanner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Scanner{opts: opts, readFile: os.ReadFile}
}

// workerResult is the private state of one worker.
type workerResult struct {
	tally   *stats.Tally
	skipped []Skipped
}

// Run discovers level files and tallies them. It returns an *IOError if the
// pack cannot be walked or a file cannot be read.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Scan started.", "root", s.opts.Root, "extension", s.opts.Extension, "workers", s.opts.Workers)

	files, err := fsutil.FindFilesByExtension(ctx, s.opts.Root, s.opts.Extension)
	if err != nil {
		return nil, walkError(s.opts.Root, err)
	}
	logger.Info("Level files discovered.", "count", len(files))

	results := make([]workerResult, s.opts.Workers)
	paths := make(chan string)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(paths)
		for _, p := range files {
			select {
			case paths <- p:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for i := range results {
		results[i].tally = stats.NewTally()
		g.Go(func() error {
			return s.worker(gctx, paths, &results[i], i)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Files: len(files), Tally: stats.NewTally()}
	for _, r := range results {
		res.Tally.Merge(r.tally)
		res.Skipped = append(res.Skipped, r.skipped...)
	}
	slices.SortFunc(res.Skipped, func(a, b Skipped) int {
		return strings.Compare(a.Path, b.Path)
	})

	logger.Debug("Scan finished.", "files", res.Files, "skipped", len(res.Skipped))
	return res, nil
}

// worker tallies files from paths until the channel closes or a fatal error
// occurs.
func (s *Scanner) worker(ctx context.Context, paths <-chan string, out *workerResult, workerID int) error {
	logger := ctxlog.FromContext(ctx).With("workerID", workerID)
	logger.Debug("Worker started.")

	for path := range paths {
		fileCtx := ctxlog.With(ctx, "workerID", workerID, "file", path)
		reason, err := s.processFile(fileCtx, path, out.tally)
		if err != nil {
			logger.Error("Reading level file failed.", "file", path, "error", err)
			return err
		}
		if reason != "" {
			logger.Warn("Skipping level file.", "file", path, "reason", reason)
			out.skipped = append(out.skipped, Skipped{Path: path, Reason: reason})
		}
	}

	logger.Debug("Worker finished.")
	return nil
}

// processFile tallies one level file. A non-empty reason means the file was
// skipped; a non-nil error is fatal.
func (s *Scanner) processFile(ctx context.Context, path string, tally *stats.Tally) (string, error) {
	logger := ctxlog.FromContext(ctx)

	data, err := s.readFile(path)
	if err != nil {
		return "", &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Path: path, Err: ErrNotUTF8}
	}

	lvl, err := level.Parse(string(data))
	if err != nil {
		return err.Error(), nil
	}
	logger.Debug("Level parsed.", "gadgets", len(lvl.Gadgets), "groups", len(lvl.Groups), "terrain", len(lvl.Terrain))

	if err := tally.AddLevel(filepath.Base(path), lvl); err != nil {
		return err.Error(), nil
	}
	return "", nil
}

func walkError(root string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	path := root
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		path = pathErr.Path
	}
	return &IOError{Path: path, Err: err}
}
