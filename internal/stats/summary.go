package stats

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Distribution describes how a count is spread across levels.
type Distribution struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	Median float64 `json:"median" yaml:"median"`
	Max    int     `json:"max" yaml:"max"`
}

// Summary holds per-level distributions of terrain and object counts.
type Summary struct {
	Levels  int          `json:"levels" yaml:"levels"`
	Terrain Distribution `json:"terrain" yaml:"terrain"`
	Objects Distribution `json:"objects" yaml:"objects"`
}

// Summary computes distributions over the per-level rows.
func (t *Tally) Summary() Summary {
	rows := t.LevelRows()
	terrain := make([]float64, 0, len(rows))
	objects := make([]float64, 0, len(rows))
	for _, r := range rows {
		terrain = append(terrain, float64(r.Terrain))
		objects = append(objects, float64(r.Objects))
	}
	return Summary{
		Levels:  len(rows),
		Terrain: distribution(terrain),
		Objects: distribution(objects),
	}
}

func distribution(x []float64) Distribution {
	if len(x) == 0 {
		return Distribution{}
	}
	slices.Sort(x)

	var d Distribution
	d.Mean, d.StdDev = stat.MeanStdDev(x, nil)
	if len(x) < 2 {
		// Sample deviation is undefined for a single level.
		d.StdDev = 0
	}
	d.Median = stat.Quantile(0.5, stat.Empirical, x, nil)
	d.Max = int(x[len(x)-1])
	return d
}
