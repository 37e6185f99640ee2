package css

import (
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
)

// LineType is the line style of a border.
type LineType uint8

// Line types for borders.
const (
	LineSolid LineType = iota
	LineDashed
	LineDotted
)

func (lt LineType) String() string {
	switch lt {
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	}
	return "solid"
}

// Border is one side of a border.
type Border struct {
	Thickness float32
	Color     Color
	Line      LineType
}

// Exists is true for borders of non-zero thickness.
func (b Border) Exists() bool {
	return b.Thickness > 0
}

// ParseBorder parses a border value of the form
//
//    thickness [style] [color]
//
// e.g. "2px solid #ff0000". A value of "none" gives an empty border. The
// thickness is resolved with ctx and defaults to 1.
func ParseBorder(value string, ctx dimen.UnitContext) (Border, bool) {
	tokens := SplitTokens(strings.TrimSpace(value))
	if len(tokens) == 0 {
		return Border{}, false
	}
	if len(tokens) == 1 && foldCase(tokens[0]) == "none" {
		return Border{}, true
	}
	b := Border{Thickness: 1, Color: Black}
	i := 0
	if !IsColor(tokens[i]) {
		b.Thickness, _ = dimen.ParseLength(tokens[i], 1, ctx)
		i++
	}
	if i < len(tokens) {
		if lt, ok := parseLineType(tokens[i]); ok {
			b.Line = lt
			i++
		}
	}
	if i < len(tokens) {
		c, ok := ParseColor(tokens[i])
		if !ok {
			return b, false
		}
		b.Color = c
		i++
	}
	if i < len(tokens) {
		tracer().Errorf("ignoring trailing tokens of border '%s'", value)
	}
	return b, true
}

func parseLineType(token string) (LineType, bool) {
	switch foldCase(token) {
	case "solid":
		return LineSolid, true
	case "dashed":
		return LineDashed, true
	case "dotted":
		return LineDotted, true
	}
	return LineSolid, false
}
