package hcl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/specialistvlad/nxlvstats/internal/config"
	"github.com/specialistvlad/nxlvstats/internal/ctxlog"
	"github.com/specialistvlad/nxlvstats/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	getenv func(string) string
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{getenv: os.Getenv}
}

var _ config.Loader = (*Loader)(nil)

// Load parses the HCL file at path and overlays the attributes it sets onto s.
// A relative scan.root is resolved against the directory of the file.
func (l *Loader) Load(ctx context.Context, path string, s *config.Settings) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	evalCtx, err := l.evalContext()
	if err != nil {
		return err
	}

	var root schema.File
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	if err := translate(&root, s); err != nil {
		return fmt.Errorf("invalid config file %s: %w", path, err)
	}
	rootSet := root.Scan != nil && !root.Scan.Root.IsNull()
	if rootSet && s.Root != "" && !filepath.IsAbs(s.Root) {
		s.Root = filepath.Join(filepath.Dir(path), s.Root)
	}

	logger.Debug("HCL loading complete.", "path", path)
	return nil
}
