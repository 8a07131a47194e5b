package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/specialistvlad/nxlvstats/internal/stats"
)

const banner = "----------------------------------"

// renderText prints the fixed-width layout operators paste into pack notes.
func renderText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)

	section(bw, "PER STYLE COUNTS")
	table(bw, "style", r.Styles)

	section(bw, "PER LEVEL COUNTS")
	table(bw, "level", r.Levels)

	section(bw, "TOTAL COUNTS")
	fmt.Fprintf(bw, "Total objects: %d\n", r.Totals.Objects)
	fmt.Fprintf(bw, "Total terrain: %d\n", r.Totals.Terrain)

	section(bw, "SUMMARY")
	fmt.Fprintf(bw, "Levels: %d\n", r.Summary.Levels)
	distribution(bw, "Terrain per level", r.Summary.Terrain)
	distribution(bw, "Objects per level", r.Summary.Objects)

	if len(r.Skipped) > 0 {
		section(bw, "SKIPPED LEVELS")
		for _, s := range r.Skipped {
			fmt.Fprintf(bw, "%s: %s\n", s.Path, s.Reason)
		}
	}

	return bw.Flush()
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", banner, title, banner)
}

func table(w io.Writer, keyHeading string, rows []stats.Row) {
	fmt.Fprintf(w, "%-80s|%-10s|%-10s\n", keyHeading, "terrain", "objects")
	for _, row := range rows {
		fmt.Fprintf(w, "%-80s|%-10d|%-10d\n", row.Key, row.Terrain, row.Objects)
	}
}

func distribution(w io.Writer, label string, d stats.Distribution) {
	fmt.Fprintf(w, "%s: mean %.2f, std dev %.2f, median %.0f, max %d\n", label, d.Mean, d.StdDev, d.Median, d.Max)
}
