package css

import (
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/percent"
)

// MaxColorStops is the maximum number of color stops kept for a gradient.
// Surplus stops are dropped.
const MaxColorStops = 4

// Direction is the direction of a linear gradient.
type Direction uint8

// Gradient directions. DirAngle means that the gradient's Angle field is valid.
const (
	DirBottom Direction = iota
	DirTop
	DirRight
	DirLeft
	DirAngle
)

func (d Direction) String() string {
	switch d {
	case DirTop:
		return "to top"
	case DirRight:
		return "to right"
	case DirLeft:
		return "to left"
	case DirAngle:
		return "angle"
	}
	return "to bottom"
}

// ColorSegment is a part of a gradient between two consecutive color stops.
// Pos is the fraction of the gradient's extent the segment covers.
type ColorSegment struct {
	From, To Color
	Pos      float32
}

// Gradient is a linear color gradient.
type Gradient struct {
	Dir      Direction
	Angle    float32 // degrees, if Dir == DirAngle
	Segments []ColorSegment
}

// IsEmpty is true for gradients without segments.
func (g Gradient) IsEmpty() bool {
	return len(g.Segments) == 0
}

type colorStop struct {
	color Color
	pos   float32 // percent, -1 if not given
}

// ParseGradient parses
//
//    linear-gradient(direction, color [position], color [position], …)
//
// The direction is optional and one of `to bottom` (default), `to top`,
// `to right`, `to left` or an angle `<n>deg`. At most MaxColorStops stops are
// kept. Consecutive stops form segments; a stop's position, in percent, gives
// the extent of the segment it ends. Segments without a position share the
// budget left over after all explicit positions have been summed up.
func ParseGradient(value string) (Gradient, bool) {
	g := Gradient{}
	s := strings.TrimSpace(foldCase(value))
	if !strings.HasPrefix(s, "linear-gradient") {
		return g, false
	}
	s = strings.TrimSpace(s[len("linear-gradient"):])
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		tracer().Errorf("malformed gradient '%s'", value)
		return g, false
	}
	args := SplitArgs(s[1 : len(s)-1])
	if dir, angle, ok := parseDirection(args[0]); ok {
		g.Dir, g.Angle = dir, angle
		args = args[1:]
	}
	stops := make([]colorStop, 0, MaxColorStops)
	for _, arg := range args {
		if len(stops) == MaxColorStops {
			tracer().Infof("gradient has more than %d color stops, dropping surplus", MaxColorStops)
			break
		}
		stop, ok := parseColorStop(arg)
		if !ok {
			return Gradient{}, false
		}
		stops = append(stops, stop)
	}
	if len(stops) < 2 {
		tracer().Errorf("gradient needs at least 2 color stops: '%s'", value)
		return Gradient{}, false
	}
	// an explicit position of the first stop takes its share of the budget
	total, unspecified := dimen.Max(0, stops[0].pos), 0
	for _, stop := range stops[1:] {
		if stop.pos < 0 {
			unspecified++
		} else {
			total += stop.pos
		}
	}
	share := float32(0)
	if unspecified > 0 {
		share = dimen.Max(0, 100-total) / float32(unspecified)
	}
	g.Segments = make([]ColorSegment, len(stops)-1)
	for i := 1; i < len(stops); i++ {
		pos := stops[i].pos
		if pos < 0 {
			pos = share
		}
		g.Segments[i-1] = ColorSegment{
			From: stops[i-1].color,
			To:   stops[i].color,
			Pos:  pos / 100,
		}
	}
	return g, true
}

func parseDirection(arg string) (Direction, float32, bool) {
	switch arg {
	case "to bottom":
		return DirBottom, 0, true
	case "to top":
		return DirTop, 0, true
	case "to right":
		return DirRight, 0, true
	case "to left":
		return DirLeft, 0, true
	}
	if strings.HasSuffix(arg, "deg") {
		deg := dimen.ParseNumber(strings.TrimSuffix(arg, "deg"), -1000)
		if deg > -1000 {
			return DirAngle, deg, true
		}
	}
	return DirBottom, 0, false
}

func parseColorStop(arg string) (colorStop, bool) {
	tokens := SplitTokens(arg)
	if len(tokens) == 0 || len(tokens) > 2 {
		tracer().Errorf("malformed color stop '%s'", arg)
		return colorStop{}, false
	}
	c, ok := ParseColor(tokens[0])
	if !ok {
		return colorStop{}, false
	}
	stop := colorStop{color: c, pos: -1}
	if len(tokens) == 2 {
		p, err := percent.FromString(tokens[1])
		if err != nil {
			tracer().Errorf("malformed color stop position '%s'", tokens[1])
			return colorStop{}, false
		}
		stop.pos = float32(p)
	}
	return stop, true
}
