package css

import (
	"github.com/npillmayer/boxflow/core/dimen"
)

// Shadow is a box shadow.
type Shadow struct {
	Offset dimen.Point
	Blur   float32
	Spread float32
	Color  Color
}

// Exists is true for shadows with a visible color.
func (s Shadow) Exists() bool {
	return s.Color.Visible()
}

// ParseShadow parses a box-shadow value of the form
//
//    x y [blur [spread]] color
//
// A token is taken as the color as soon as it does not start with a digit or
// a sign. Missing lengths are 0.
func ParseShadow(value string, ctx dimen.UnitContext) (Shadow, bool) {
	s := Shadow{Color: Black}
	if foldCase(Unquote(value)) == "none" {
		return Shadow{}, true
	}
	lengths := make([]float32, 0, 4)
	for _, token := range SplitTokens(value) {
		if IsColor(token) {
			c, ok := ParseColor(token)
			if !ok {
				return Shadow{}, false
			}
			s.Color = c
			break
		}
		if len(lengths) == 4 {
			tracer().Errorf("too many lengths in box-shadow '%s'", value)
			return Shadow{}, false
		}
		d, _ := dimen.ParseLength(token, 0, ctx)
		lengths = append(lengths, d)
	}
	if len(lengths) < 2 {
		tracer().Errorf("box-shadow needs an offset: '%s'", value)
		return Shadow{}, false
	}
	s.Offset = dimen.Point{X: lengths[0], Y: lengths[1]}
	if len(lengths) > 2 {
		s.Blur = lengths[2]
	}
	if len(lengths) > 3 {
		s.Spread = lengths[3]
	}
	return s, true
}
