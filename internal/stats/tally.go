// Package stats accumulates gadget and terrain usage counts across levels.
package stats

import (
	"slices"
	"strings"

	"github.com/specialistvlad/nxlvstats/internal/level"
)

// Counts holds the number of resolved terrain parts and gadgets ("objects")
// attributed to one key.
type Counts struct {
	Terrain int `json:"terrain" yaml:"terrain"`
	Objects int `json:"objects" yaml:"objects"`
}

func (c *Counts) add(other Counts) {
	c.Terrain += other.Terrain
	c.Objects += other.Objects
}

// Row is one line of a per-style or per-level table.
type Row struct {
	Key string `json:"key" yaml:"key"`
	Counts `yaml:",inline"`
}

// Tally is a set of per-style and per-level counters. It is not safe for
// concurrent use; give each goroutine its own Tally and Merge them.
type Tally struct {
	styles map[string]*Counts
	levels map[string]*Counts
	totals Counts
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{
		styles: make(map[string]*Counts),
		levels: make(map[string]*Counts),
	}
}

// AddLevel counts every gadget and every resolved terrain part of lvl under
// the level key name and under each part's style. If terrain resolution fails
// the error is returned and t is left untouched.
func (t *Tally) AddLevel(name string, lvl *level.Level) error {
	scratch := NewTally()
	scratch.levels[name] = &Counts{}

	level.VisitGadgets(lvl, func(g level.Gadget) {
		scratch.count(g.Style, name, Counts{Objects: 1})
	})
	err := level.VisitTerrain(lvl, func(p level.TerrainPart) {
		scratch.count(p.Style, name, Counts{Terrain: 1})
	})
	if err != nil {
		return err
	}

	t.Merge(scratch)
	return nil
}

func (t *Tally) count(style, levelName string, delta Counts) {
	bump(t.styles, style, delta)
	bump(t.levels, levelName, delta)
	t.totals.add(delta)
}

// Merge adds every counter of other into t.
func (t *Tally) Merge(other *Tally) {
	for k, c := range other.styles {
		bump(t.styles, k, *c)
	}
	for k, c := range other.levels {
		bump(t.levels, k, *c)
	}
	t.totals.add(other.totals)
}

func bump(m map[string]*Counts, key string, delta Counts) {
	c, ok := m[key]
	if !ok {
		c = &Counts{}
		m[key] = c
	}
	c.add(delta)
}

// StyleRows returns the per-style counts sorted by style.
func (t *Tally) StyleRows() []Row {
	return sortedRows(t.styles)
}

// LevelRows returns the per-level counts sorted by level name. Levels that
// contributed nothing still appear with zero counts.
func (t *Tally) LevelRows() []Row {
	return sortedRows(t.levels)
}

// Totals returns the grand totals.
func (t *Tally) Totals() Counts {
	return t.totals
}

func sortedRows(m map[string]*Counts) []Row {
	rows := make([]Row, 0, len(m))
	for k, c := range m {
		rows = append(rows, Row{Key: k, Counts: *c})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		return strings.Compare(a.Key, b.Key)
	})
	return rows
}
