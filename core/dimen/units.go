package dimen

import (
	"regexp"
	"strconv"
	"strings"
)

// PointsToPixels converts printer's points to screen pixels (96 dpi / 72 dpi).
const PointsToPixels float32 = 1.3333

// UnitContext holds the references needed to resolve relative units.
type UnitContext struct {
	FontSize float32 // reference for 'em'
	Parent   float32 // reference for '%'
	Scale    float32 // ambient UI scale factor, applied to 'px' and bare numbers
}

var lengthPattern = regexp.MustCompile(`^([+\-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+))\s*(px|pt|em|%)?$`)

// ParseLength parses a string to return a length in pixels. Syntax is a subset
// of CSS units: bare numbers and `px` are pixels, `pt` are printer's points,
// `em` are relative to the current font size and `%` relative to the parent
// dimension. If a percentage value is given (`80%`), the second return value
// will be true.
//
// Malformed input yields def, never an error.
func ParseLength(s string, def float32, ctx UnitContext) (float32, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	d := lengthPattern.FindStringSubmatch(s)
	if len(d) < 2 {
		return def, false
	}
	n, err := strconv.ParseFloat(d[1], 32)
	if err != nil {
		return def, false
	}
	v := float32(n)
	switch d[2] {
	case "pt":
		return v * PointsToPixels, false
	case "em":
		return v * ctx.FontSize, false
	case "%":
		return v * ctx.Parent * 0.01, true
	}
	if ctx.Scale == 0 {
		return v, false
	}
	return v * ctx.Scale, false
}

// ParseNumber parses a plain decimal number, returning def for malformed input.
func ParseNumber(s string, def float32) float32 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return def
	}
	return float32(n)
}
