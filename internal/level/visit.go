package level

import (
	"slices"

	"github.com/agnivade/levenshtein"
)

// VisitGadgets calls fn for every gadget in document order.
func VisitGadgets(lvl *Level, fn func(Gadget)) {
	for _, g := range lvl.Gadgets {
		fn(g)
	}
}

// VisitTerrain calls fn for every concrete terrain part, expanding *GROUP
// references through the level's groups.
//
// Expansion uses a LIFO work list seeded with the top-level terrain: the last
// entry is handled first and a group's parts are pushed in order, so they are
// visited in reverse. Callers must only rely on the multiset of visited parts.
//
// All references reachable from the top-level terrain are checked before fn is
// first called. An unknown group yields a *ResolutionError and a self-referencing
// group yields a *CycleError; in both cases fn is never called.
func VisitTerrain(lvl *Level, fn func(TerrainPart)) error {
	if err := checkReferences(lvl); err != nil {
		return err
	}

	stack := slices.Clone(lvl.Terrain)
	for len(stack) > 0 {
		part := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !part.IsGroupRef() {
			fn(part)
			continue
		}
		group, ok := lvl.Group(part.Piece)
		if !ok {
			return unknownGroup(lvl, part.Piece)
		}
		stack = append(stack, group.Terrain...)
	}
	return nil
}

// Resolve returns the concrete terrain parts of lvl in VisitTerrain order.
func Resolve(lvl *Level) ([]TerrainPart, error) {
	var leaves []TerrainPart
	err := VisitTerrain(lvl, func(p TerrainPart) {
		leaves = append(leaves, p)
	})
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

const (
	unvisited = iota
	expanding
	expanded
)

// checkReferences walks the group graph depth-first from the top-level terrain.
func checkReferences(lvl *Level) error {
	state := make(map[string]int)

	var walk func(name string, path []string) error
	walk = func(name string, path []string) error {
		switch state[name] {
		case expanded:
			return nil
		case expanding:
			start := slices.Index(path, name)
			return &CycleError{Path: append(slices.Clone(path[start:]), name)}
		}

		group, ok := lvl.Group(name)
		if !ok {
			return unknownGroup(lvl, name)
		}

		state[name] = expanding
		path = append(path, name)
		for _, part := range group.Terrain {
			if !part.IsGroupRef() {
				continue
			}
			if err := walk(part.Piece, path); err != nil {
				return err
			}
		}
		state[name] = expanded
		return nil
	}

	for _, part := range lvl.Terrain {
		if !part.IsGroupRef() {
			continue
		}
		if err := walk(part.Piece, nil); err != nil {
			return err
		}
	}
	return nil
}

func unknownGroup(lvl *Level, name string) *ResolutionError {
	return &ResolutionError{Group: name, Suggestion: closestName(name, lvl.groupNames())}
}

// closestName returns the candidate nearest to name by edit distance, or ""
// when nothing is close enough to be a plausible typo.
func closestName(name string, candidates []string) string {
	best, bestDist := "", suggestionLimit(len(name))+1
	for _, cand := range candidates {
		if cand == "" {
			continue
		}
		dist := levenshtein.ComputeDistance(name, cand)
		if dist < bestDist || (dist == bestDist && cand < best) {
			best, bestDist = cand, dist
		}
	}
	return best
}

func suggestionLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
