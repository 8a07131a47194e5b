// Package report turns a scan result into the per-style, per-level and total
// tables and renders them as text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/specialistvlad/nxlvstats/internal/scan"
	"github.com/specialistvlad/nxlvstats/internal/stats"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q: must be one of text, json, yaml", s)
}

// Report is the rendered outcome of one run.
type Report struct {
	RunID   string         `json:"run_id" yaml:"run_id"`
	Root    string         `json:"root" yaml:"root"`
	Files   int            `json:"files" yaml:"files"`
	Styles  []stats.Row    `json:"styles" yaml:"styles"`
	Levels  []stats.Row    `json:"levels" yaml:"levels"`
	Totals  stats.Counts   `json:"totals" yaml:"totals"`
	Summary stats.Summary  `json:"summary" yaml:"summary"`
	Skipped []scan.Skipped `json:"skipped" yaml:"skipped"`
}

// New builds a Report for a finished scan of root.
func New(root string, res *scan.Result) *Report {
	skipped := res.Skipped
	if skipped == nil {
		skipped = []scan.Skipped{}
	}
	return &Report{
		RunID:   uuid.NewString(),
		Root:    root,
		Files:   res.Files,
		Styles:  res.Tally.StyleRows(),
		Levels:  res.Tally.LevelRows(),
		Totals:  res.Tally.Totals(),
		Summary: res.Tally.Summary(),
		Skipped: skipped,
	}
}

// Render writes r to w in the given format.
func Render(w io.Writer, r *Report, format Format) error {
	switch format {
	case FormatText:
		return renderText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
