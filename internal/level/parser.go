package level

import (
	"strings"
	"unicode/utf8"
)

const (
	tagTerrainGroup = "$TERRAINGROUP"
	tagTerrain      = "$TERRAIN"
	tagGadget       = "$GADGET"
	tagEnd          = "$END"

	keyStyle = "STYLE"
	keyPiece = "PIECE"
	keyName  = "NAME"

	// Value offsets include the keyword and one delimiter byte.
	stylePieceOffset = 6
	nameOffset       = 5
)

// sourceLine is a trimmed, non-empty, non-comment line of the input.
type sourceLine struct {
	num  int
	text string
}

// cursor is the single forward-only reader shared by every block parser.
type cursor struct {
	lines []sourceLine
	pos   int
}

func newCursor(text string) *cursor {
	c := &cursor{}
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c.lines = append(c.lines, sourceLine{num: i + 1, text: line})
	}
	return c
}

func (c *cursor) next() (sourceLine, bool) {
	if c.pos >= len(c.lines) {
		return sourceLine{}, false
	}
	l := c.lines[c.pos]
	c.pos++
	return l, true
}

// Parse converts .nxlv text into a Level. Unknown lines are ignored and
// unterminated blocks end at end of input. A field line that is too short to
// carry its value, or whose value offset falls inside a multibyte character,
// is reported as a *ParseError.
func Parse(text string) (*Level, error) {
	lvl := &Level{}
	c := newCursor(text)

	for {
		line, ok := c.next()
		if !ok {
			return lvl, nil
		}

		switch {
		case strings.HasPrefix(line.text, tagTerrainGroup):
			group, err := parseTerrainGroup(c)
			if err != nil {
				return nil, err
			}
			lvl.Groups = append(lvl.Groups, group)
		case strings.HasPrefix(line.text, tagTerrain):
			part, err := parseTerrainPart(c)
			if err != nil {
				return nil, err
			}
			lvl.Terrain = append(lvl.Terrain, part)
		case strings.HasPrefix(line.text, tagGadget):
			gadget, err := parseGadget(c)
			if err != nil {
				return nil, err
			}
			lvl.Gadgets = append(lvl.Gadgets, gadget)
		}
	}
}

func parseTerrainPart(c *cursor) (TerrainPart, error) {
	style, piece, err := parseStylePiece(c)
	return TerrainPart{Style: style, Piece: piece}, err
}

func parseGadget(c *cursor) (Gadget, error) {
	style, piece, err := parseStylePiece(c)
	return Gadget{Style: style, Piece: piece}, err
}

// parseStylePiece reads the body of a $TERRAIN or $GADGET block.
func parseStylePiece(c *cursor) (style, piece string, err error) {
	for {
		line, ok := c.next()
		if !ok {
			return style, piece, nil
		}

		switch {
		case strings.HasPrefix(line.text, keyStyle):
			if style, err = fieldValue(line, stylePieceOffset); err != nil {
				return "", "", err
			}
		case strings.HasPrefix(line.text, keyPiece):
			if piece, err = fieldValue(line, stylePieceOffset); err != nil {
				return "", "", err
			}
		case strings.HasPrefix(line.text, tagEnd):
			return style, piece, nil
		}
	}
}

func parseTerrainGroup(c *cursor) (TerrainGroup, error) {
	var group TerrainGroup
	for {
		line, ok := c.next()
		if !ok {
			return group, nil
		}

		switch {
		case strings.HasPrefix(line.text, keyName):
			name, err := fieldValue(line, nameOffset)
			if err != nil {
				return TerrainGroup{}, err
			}
			group.Name = name
		case strings.HasPrefix(line.text, tagTerrain):
			part, err := parseTerrainPart(c)
			if err != nil {
				return TerrainGroup{}, err
			}
			group.Terrain = append(group.Terrain, part)
		case strings.HasPrefix(line.text, tagEnd):
			return group, nil
		}
	}
}

// fieldValue slices a field line at a fixed byte offset.
func fieldValue(line sourceLine, offset int) (string, error) {
	if len(line.text) < offset {
		return "", &ParseError{
			Line:   line.num,
			Text:   line.text,
			Reason: "malformed field line: too short",
		}
	}
	if offset < len(line.text) && !utf8.RuneStart(line.text[offset]) {
		return "", &ParseError{
			Line:   line.num,
			Text:   line.text,
			Reason: "malformed field line: value splits a multibyte character",
		}
	}
	return line.text[offset:], nil
}
