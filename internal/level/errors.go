package level

import (
	"fmt"
	"strings"
)

// ParseError reports a field line that cannot hold its fixed-width prefix.
type ParseError struct {
	Line   int // 1-based line number in the source text
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// ResolutionError reports a *GROUP reference to a group the level does not
// define.
type ResolutionError struct {
	Group      string
	Suggestion string // closest defined group name, if any
}

func (e *ResolutionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown terrain group: %s (did you mean %q?)", e.Group, e.Suggestion)
	}
	return fmt.Sprintf("unknown terrain group: %s", e.Group)
}

// CycleError reports a terrain group that expands into itself. Path starts and
// ends with the same group name.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("terrain group cycle: %s", strings.Join(e.Path, " -> "))
}
