package layout

import (
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/boxflow/engine/style/css"
)

// ParseLayoutStyle reads a layout description:
//
//    "direction: row; fill: horizontal; overflow-x: wrap; spacing: 4px 2px;
//     align: center; border: 1px solid gray; padding: 3px"
//
// Layout properties are
//
//    direction, flex-direction   row | horizontal | column | vertical | grid
//    fill                        all | horizontal | vertical | none
//    spacing                     one or two lengths (x, y)
//    spacing-x, spacing-y        a length
//    overflow                    clip | scroll | wrap, for both axes
//    overflow-x, overflow-y      clip | scroll | wrap
//    align                       keywords for both axes
//    halign, valign              left | right | center | justify
//                                top | bottom | center | justify
//
// All other properties go to the layout's style descriptor. Explicit width
// and height of the style are turned into an explicit margin-box size.
// Unknown values are reported and skipped.
func ParseLayoutStyle(text string, env style.Environment) (Spec, style.Descriptor) {
	spec := Spec{}
	var rest []string
	for _, d := range css.SplitDeclarations(text) {
		switch d.Property {
		case "direction", "flex-direction":
			switch css.Keyword(d.Value) {
			case "row", "horizontal":
				spec.Kind = Horizontal
			case "column", "vertical":
				spec.Kind = Vertical
			case "grid":
				spec.Kind = Grid
			default:
				tracer().Errorf("unknown layout direction '%s'", d.Value)
			}
		case "fill":
			switch css.Keyword(d.Value) {
			case "all", "both":
				spec.Fill = FillAll
			case "horizontal", "x":
				spec.Fill = FillHorizontal
			case "vertical", "y":
				spec.Fill = FillVertical
			case "none":
				spec.Fill = FillNone
			default:
				tracer().Errorf("unknown layout fill '%s'", d.Value)
			}
		case "spacing":
			tokens := css.SplitTokens(d.Value)
			if len(tokens) == 0 || len(tokens) > 2 {
				tracer().Errorf("malformed spacing '%s'", d.Value)
				continue
			}
			x, _ := dimen.ParseLength(tokens[0], 0, env.Horizontal())
			y := x
			if len(tokens) == 2 {
				y, _ = dimen.ParseLength(tokens[1], 0, env.Vertical())
			}
			spec.Spacing = dimen.Point{X: x, Y: y}
		case "spacing-x":
			spec.Spacing.X, _ = dimen.ParseLength(d.Value, spec.Spacing.X, env.Horizontal())
		case "spacing-y":
			spec.Spacing.Y, _ = dimen.ParseLength(d.Value, spec.Spacing.Y, env.Vertical())
		case "overflow":
			if o, ok := style.ParseOverflow(d.Value); ok {
				spec.Overflow = [2]style.Overflow{o, o}
			}
		case "overflow-x":
			if o, ok := style.ParseOverflow(d.Value); ok {
				spec.Overflow[xAxis] = o
			}
		case "overflow-y":
			if o, ok := style.ParseOverflow(d.Value); ok {
				spec.Overflow[yAxis] = o
			}
		case "align":
			for _, t := range css.SplitTokens(d.Value) {
				spec.Align |= alignment(t, style.AlignHorizontal|style.AlignVertical)
			}
		case "halign":
			spec.Align = spec.Align&^style.AlignHorizontal | alignment(d.Value, style.AlignHorizontal)
		case "valign":
			spec.Align = spec.Align&^style.AlignVertical | alignment(d.Value, style.AlignVertical|style.AlignJustify)
		default:
			rest = append(rest, d.Property+": "+d.Value)
		}
	}
	st, _ := style.Parse(strings.Join(rest, "; "), env)
	near, far := insets(&st)
	if st.HasExplicitWidth() {
		spec.Size.X = st.Dimension.X + near.X + far.X
	}
	if st.HasExplicitHeight() {
		spec.Size.Y = st.Dimension.Y + near.Y + far.Y
	}
	return spec, st
}

// alignment maps an alignment keyword to flags, restricted to mask.
// "center" means horizontal or vertical centering, depending on mask.
func alignment(value string, mask style.Alignment) style.Alignment {
	var a style.Alignment
	switch css.Keyword(value) {
	case "left", "start":
		a = style.AlignLeft
	case "right", "end":
		a = style.AlignRight
	case "top":
		a = style.AlignTop
	case "bottom":
		a = style.AlignBottom
	case "center", "middle":
		a = style.AlignHCenter | style.AlignVCenter
	case "justify":
		a = style.AlignJustify
	default:
		tracer().Errorf("unknown layout alignment '%s'", value)
	}
	return a & mask
}
