package level

import "strings"

// GroupStyle marks a terrain part that expands to the terrain group named by
// its Piece.
const GroupStyle = "*GROUP"

// TerrainPart is a single terrain directive.
type TerrainPart struct {
	Style string
	Piece string
}

// IsGroupRef reports whether the part references a terrain group rather than
// a concrete piece.
func (p TerrainPart) IsGroupRef() bool {
	return strings.EqualFold(p.Style, GroupStyle)
}

// Gadget is a placeable level object.
type Gadget struct {
	Style string
	Piece string
}

// TerrainGroup is a named, reusable list of terrain parts. Parts may reference
// other groups.
type TerrainGroup struct {
	Name    string
	Terrain []TerrainPart
}

// Level is a parsed .nxlv document.
type Level struct {
	Gadgets []Gadget
	Groups  []TerrainGroup
	Terrain []TerrainPart
}

// Group returns the first group called name. Names are matched exactly.
func (l *Level) Group(name string) (*TerrainGroup, bool) {
	for i := range l.Groups {
		if l.Groups[i].Name == name {
			return &l.Groups[i], true
		}
	}
	return nil, false
}

func (l *Level) groupNames() []string {
	names := make([]string, 0, len(l.Groups))
	for _, g := range l.Groups {
		names = append(names, g.Name)
	}
	return names
}
