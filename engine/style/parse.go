package style

import (
	"math"
	"strings"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style/css"
)

// Parse parses a style text into a new descriptor, starting from defaults.
// It returns the descriptor and the set of properties the text specified.
//
// Unknown properties and malformed values are traced and skipped.
func Parse(text string, env Environment) (Descriptor, Property) {
	d := Defaults(env)
	props := ParseInto(&d, text, env)
	return d, props
}

// ParseInto overlays the properties of a style text onto d, leaving all
// other properties of d untouched. The properties parsed are added to
// d.Specified and returned.
//
// A font-size is resolved first, as 'em' lengths of the same text refer to it.
func ParseInto(d *Descriptor, text string, env Environment) Property {
	decls := css.SplitDeclarations(text)
	var props Property
	for _, decl := range decls {
		if decl.Property == "font-size" {
			props |= parseFontSize(d, decl.Value, env)
		}
	}
	if props&PropFontSize != 0 {
		env = env.WithFontSize(d.Font.Size)
	}
	for _, decl := range decls {
		if decl.Property == "font-size" {
			continue
		}
		parse, ok := propertyParsers[decl.Property]
		if !ok {
			tracer().Errorf("unknown style property '%s'", decl.Property)
			continue
		}
		props |= parse(d, decl.Value, env)
	}
	d.Specified |= props
	return props
}

// propertyParser parses the value of a property into d and returns the
// property bits it set, 0 if the value has been rejected.
type propertyParser func(d *Descriptor, value string, env Environment) Property

var propertyParsers = map[string]propertyParser{
	"background":                 parseBackground,
	"background-color":           parseBackground,
	"color":                      colorProperty(PropFgColor, func(d *Descriptor) *css.Color { return &d.FgColor }),
	"width":                      lengthProperty(PropWidth, true, func(d *Descriptor) *float32 { return &d.Dimension.X }),
	"height":                     lengthProperty(PropHeight, false, func(d *Descriptor) *float32 { return &d.Dimension.Y }),
	"min-width":                  lengthProperty(PropMinWidth, true, func(d *Descriptor) *float32 { return &d.MinDim.X }),
	"max-width":                  lengthProperty(PropMaxWidth, true, func(d *Descriptor) *float32 { return &d.MaxDim.X }),
	"min-height":                 lengthProperty(PropMinHeight, false, func(d *Descriptor) *float32 { return &d.MinDim.Y }),
	"max-height":                 lengthProperty(PropMaxHeight, false, func(d *Descriptor) *float32 { return &d.MaxDim.Y }),
	"padding":                    fourSided(PropPadding, func(d *Descriptor) *FourSidedMeasure { return &d.Padding }),
	"padding-top":                oneSide(PropPadding, Top, func(d *Descriptor) *FourSidedMeasure { return &d.Padding }),
	"padding-right":              oneSide(PropPadding, Right, func(d *Descriptor) *FourSidedMeasure { return &d.Padding }),
	"padding-bottom":             oneSide(PropPadding, Bottom, func(d *Descriptor) *FourSidedMeasure { return &d.Padding }),
	"padding-left":               oneSide(PropPadding, Left, func(d *Descriptor) *FourSidedMeasure { return &d.Padding }),
	"margin":                     fourSided(PropMargin, func(d *Descriptor) *FourSidedMeasure { return &d.Margin }),
	"margin-top":                 oneSide(PropMargin, Top, func(d *Descriptor) *FourSidedMeasure { return &d.Margin }),
	"margin-right":               oneSide(PropMargin, Right, func(d *Descriptor) *FourSidedMeasure { return &d.Margin }),
	"margin-bottom":              oneSide(PropMargin, Bottom, func(d *Descriptor) *FourSidedMeasure { return &d.Margin }),
	"margin-left":                oneSide(PropMargin, Left, func(d *Descriptor) *FourSidedMeasure { return &d.Margin }),
	"border":                     parseBorder,
	"border-top":                 borderSide(Top),
	"border-right":               borderSide(Right),
	"border-bottom":              borderSide(Bottom),
	"border-left":                borderSide(Left),
	"border-width":               parseBorderWidth,
	"border-color":               parseBorderColor,
	"border-style":               parseBorderStyle,
	"border-radius":              parseBorderRadius,
	"border-top-left-radius":     cornerRadius(TopLeft),
	"border-top-right-radius":    cornerRadius(TopRight),
	"border-bottom-right-radius": cornerRadius(BottomRight),
	"border-bottom-left-radius":  cornerRadius(BottomLeft),
	"font-weight":                parseFontWeight,
	"font-style":                 parseFontStyle,
	"font-family":                parseFontFamily,
	"text-align":                 parseTextAlign,
	"vertical-align":             parseVerticalAlign,
	"text-wrap":                  parseTextWrap,
	"text-overflow":              parseTextOverflow,
	"white-space":                parseWhitespace,
	"white-space-collapse":       parseWhitespaceCollapse,
	"word-break":                 parseWordBreak,
	"box-shadow":                 parseBoxShadow,
	"thumb-color":                colorProperty(PropThumbColor, func(d *Descriptor) *css.Color { return &d.ThumbColor }),
	"track-color":                colorProperty(PropTrackColor, func(d *Descriptor) *css.Color { return &d.TrackColor }),
	"track-outline":              colorProperty(PropTrackOutlineColor, func(d *Descriptor) *css.Color { return &d.TrackOutlineColor }),
	"thumb-offset":               lengthProperty(PropThumbOffset, true, func(d *Descriptor) *float32 { return &d.ThumbOffset }),
	"cell-spacing":               lengthProperty(PropCellSpacing, true, func(d *Descriptor) *float32 { return &d.CellSpacing }),
	"overflow":                   parseOverflow,
	"blink":                      parseBlink,
	"list-style-type":            parseListStyle,
}

// malformed is the default handed to length parsing to detect bad input.
var malformed = float32(math.Inf(-1))

func parseLength(value string, ctx dimen.UnitContext) (float32, bool, bool) {
	v, rel := dimen.ParseLength(value, malformed, ctx)
	if math.IsInf(float64(v), -1) {
		tracer().Errorf("malformed length '%s'", value)
		return 0, false, false
	}
	return v, rel, true
}

func markRelative(d *Descriptor, prop Property, rel bool) {
	if rel {
		d.Relative |= prop
	} else {
		d.Relative &^= prop
	}
}

func lengthProperty(prop Property, horizontal bool, field func(*Descriptor) *float32) propertyParser {
	return func(d *Descriptor, value string, env Environment) Property {
		if css.Keyword(value) == "auto" {
			*field(d) = -1
			markRelative(d, prop, false)
			return prop
		}
		ctx := env.Vertical()
		if horizontal {
			ctx = env.Horizontal()
		}
		v, rel, ok := parseLength(value, ctx)
		if !ok {
			return 0
		}
		*field(d) = v
		markRelative(d, prop, rel)
		return prop
	}
}

func colorProperty(prop Property, field func(*Descriptor) *css.Color) propertyParser {
	return func(d *Descriptor, value string, env Environment) Property {
		c, ok := css.ParseColor(value)
		if !ok {
			return 0
		}
		*field(d) = c
		return prop
	}
}

func parseBackground(d *Descriptor, value string, env Environment) Property {
	if strings.HasPrefix(css.Keyword(value), "linear-gradient") {
		g, ok := css.ParseGradient(value)
		if !ok {
			return 0
		}
		d.Gradient = g
		return PropBackground
	}
	c, ok := css.ParseColor(value)
	if !ok {
		return 0
	}
	d.BgColor = c
	d.Gradient = css.Gradient{}
	return PropBackground
}

func fourSided(prop Property, field func(*Descriptor) *FourSidedMeasure) propertyParser {
	return func(d *Descriptor, value string, env Environment) Property {
		sides, ok := css.SplitFourSides(value)
		if !ok {
			return 0
		}
		var m FourSidedMeasure
		var relative uint8
		for side, s := range sides {
			v, rel, ok := parseLength(s, env.axis(side))
			if !ok {
				return 0
			}
			m.Set(side, v)
			if rel {
				relative |= 1 << side
			}
		}
		*field(d) = m
		*d.relativeSides(prop) = relative
		markRelative(d, prop, relative != 0)
		return prop
	}
}

func oneSide(prop Property, side int, field func(*Descriptor) *FourSidedMeasure) propertyParser {
	return func(d *Descriptor, value string, env Environment) Property {
		v, rel, ok := parseLength(value, env.axis(side))
		if !ok {
			return 0
		}
		field(d).Set(side, v)
		sides := d.relativeSides(prop)
		if rel {
			*sides |= 1 << side
		} else {
			*sides &^= 1 << side
		}
		markRelative(d, prop, *sides != 0)
		return prop
	}
}

func parseBorder(d *Descriptor, value string, env Environment) Property {
	b, ok := css.ParseBorder(value, env.Horizontal())
	if !ok {
		return 0
	}
	d.Border.SetAll(b)
	return PropBorder
}

func borderSide(side int) propertyParser {
	return func(d *Descriptor, value string, env Environment) Property {
		b, ok := css.ParseBorder(value, env.axis(side))
		if !ok {
			return 0
		}
		*d.Border.Side(side) = b
		d.Border.MarkMixed()
		return PropBorder
	}
}

// forEachSide applies fn to the four values of a shorthand. If all values are
// equal, the border stays uniform.
func forEachSide(d *Descriptor, value string, fn func(side int, v string) bool) Property {
	sides, ok := css.SplitFourSides(value)
	if !ok {
		return 0
	}
	for side, v := range sides {
		if !fn(side, v) {
			return 0
		}
	}
	if sides[0] != sides[1] || sides[0] != sides[2] || sides[0] != sides[3] {
		d.Border.MarkMixed()
	}
	return PropBorder
}

func parseBorderWidth(d *Descriptor, value string, env Environment) Property {
	return forEachSide(d, value, func(side int, v string) bool {
		t, _, ok := parseLength(v, env.axis(side))
		d.Border.Side(side).Thickness = t
		return ok
	})
}

func parseBorderColor(d *Descriptor, value string, env Environment) Property {
	return forEachSide(d, css.Keyword(value), func(side int, v string) bool {
		c, ok := css.ParseColor(v)
		d.Border.Side(side).Color = c
		return ok
	})
}

func parseBorderStyle(d *Descriptor, value string, env Environment) Property {
	return forEachSide(d, css.Keyword(value), func(side int, v string) bool {
		b, ok := css.ParseBorder(v, env.axis(side))
		if ok {
			d.Border.Side(side).Line = b.Line
		}
		return ok
	})
}

func parseBorderRadius(d *Descriptor, value string, env Environment) Property {
	corners, ok := css.SplitFourSides(value)
	if !ok {
		return 0
	}
	var radius [4]float32
	for i, c := range corners {
		r, _, ok := parseLength(c, env.Horizontal())
		if !ok {
			return 0
		}
		radius[i] = r
	}
	d.Border.Radius = radius
	return PropBorderRadius
}

func cornerRadius(corner int) propertyParser {
	return func(d *Descriptor, value string, env Environment) Property {
		r, _, ok := parseLength(value, env.Horizontal())
		if !ok {
			return 0
		}
		d.Border.Radius[corner] = r
		return PropBorderRadius
	}
}

var fontSizeKeywords = map[string]float32{
	"xx-small":  0.6,
	"x-small":   0.75,
	"small":     0.89,
	"medium":    1,
	"large":     1.2,
	"x-large":   1.5,
	"xx-large":  2,
	"xxx-large": 3,
}

func parseFontSize(d *Descriptor, value string, env Environment) Property {
	if f, ok := fontSizeKeywords[css.Keyword(value)]; ok {
		d.Font.Size = f * env.DefaultFontSize
		return PropFontSize
	}
	scale := env.FontScale
	if scale == 0 {
		scale = 1
	}
	ctx := dimen.UnitContext{FontSize: env.FontSize, Parent: env.FontSize, Scale: scale}
	v, _, ok := parseLength(value, ctx)
	if !ok || v <= 0 {
		return 0
	}
	d.Font.Size = v
	return PropFontSize
}

func parseFontWeight(d *Descriptor, value string, env Environment) Property {
	d.Font.Flags &^= FontBold | FontLight
	switch kw := css.Keyword(value); kw {
	case "bold", "bolder":
		d.Font.Flags |= FontBold
	case "light", "lighter":
		d.Font.Flags |= FontLight
	case "normal":
	default:
		w := dimen.ParseNumber(kw, -1)
		if w < 0 {
			tracer().Errorf("malformed font-weight '%s'", value)
			return 0
		}
		if w >= 600 {
			d.Font.Flags |= FontBold
		} else if w < 400 {
			d.Font.Flags |= FontLight
		}
	}
	return PropFontWeight
}

func parseFontStyle(d *Descriptor, value string, env Environment) Property {
	switch css.Keyword(value) {
	case "italic", "oblique":
		d.Font.Flags |= FontItalic
	case "normal":
		d.Font.Flags &^= FontItalic
	default:
		tracer().Errorf("unknown font-style '%s'", value)
		return 0
	}
	return PropFontStyle
}

func parseFontFamily(d *Descriptor, value string, env Environment) Property {
	family := css.Unquote(value)
	if family == "" {
		return 0
	}
	d.Font.Flags &^= FontMono
	if css.Keyword(family) == "monospace" {
		family = env.MonoFamily
	}
	if family == env.MonoFamily {
		d.Font.Flags |= FontMono
	}
	d.Font.Family = family
	return PropFontFamily
}

func parseTextAlign(d *Descriptor, value string, env Environment) Property {
	var a Alignment
	switch css.Keyword(value) {
	case "left", "start":
		a = AlignLeft
	case "right", "end":
		a = AlignRight
	case "center":
		a = AlignHCenter
	case "justify":
		a = AlignJustify
	default:
		tracer().Errorf("unknown text-align '%s'", value)
		return 0
	}
	d.Align = d.Align&^AlignHorizontal | a
	return PropHAlignment
}

func parseVerticalAlign(d *Descriptor, value string, env Environment) Property {
	a := AlignVCenter
	switch css.Keyword(value) {
	case "top":
		a = AlignTop
	case "bottom":
		a = AlignBottom
	}
	d.Align = d.Align&^AlignVertical | a
	return PropVAlignment
}

func setTextFlag(d *Descriptor, flag TextFlags, on bool) {
	if on {
		d.Text |= flag
	} else {
		d.Text &^= flag
	}
}

func parseTextWrap(d *Descriptor, value string, env Environment) Property {
	switch css.Keyword(value) {
	case "nowrap":
		setTextFlag(d, TextNoWrap, true)
	case "wrap", "normal":
		setTextFlag(d, TextNoWrap, false)
	default:
		tracer().Errorf("unknown text-wrap '%s'", value)
		return 0
	}
	return PropTextWrap
}

func parseTextOverflow(d *Descriptor, value string, env Environment) Property {
	switch css.Keyword(value) {
	case "ellipsis":
		setTextFlag(d, TextEllipsis, true)
	case "clip":
		setTextFlag(d, TextEllipsis, false)
	default:
		tracer().Errorf("unknown text-overflow '%s'", value)
		return 0
	}
	return PropTextOverflow
}

func parseWhitespace(d *Descriptor, value string, env Environment) Property {
	collapse, preserve, nowrap := true, false, false
	switch css.Keyword(value) {
	case "normal":
	case "nowrap":
		nowrap = true
	case "pre":
		collapse, preserve, nowrap = false, true, true
	case "pre-wrap":
		collapse, preserve = false, true
	case "pre-line":
	default:
		tracer().Errorf("unknown white-space '%s'", value)
		return 0
	}
	setTextFlag(d, TextCollapseWhitespace, collapse)
	setTextFlag(d, TextPreserveWhitespace, preserve)
	setTextFlag(d, TextNoWrap, nowrap)
	return PropWhitespace | PropTextWrap
}

func parseWhitespaceCollapse(d *Descriptor, value string, env Environment) Property {
	switch css.Keyword(value) {
	case "collapse":
		setTextFlag(d, TextCollapseWhitespace, true)
		setTextFlag(d, TextPreserveWhitespace, false)
	case "preserve":
		setTextFlag(d, TextCollapseWhitespace, false)
		setTextFlag(d, TextPreserveWhitespace, true)
	default:
		tracer().Errorf("unknown white-space-collapse '%s'", value)
		return 0
	}
	return PropWhitespaceCollapse
}

func parseWordBreak(d *Descriptor, value string, env Environment) Property {
	switch css.Keyword(value) {
	case "break-all", "break-word":
		setTextFlag(d, TextBreakWords, true)
	case "normal", "keep-all":
		setTextFlag(d, TextBreakWords, false)
	default:
		tracer().Errorf("unknown word-break '%s'", value)
		return 0
	}
	return PropWordBreak
}

func parseBoxShadow(d *Descriptor, value string, env Environment) Property {
	s, ok := css.ParseShadow(value, env.Horizontal())
	if !ok {
		return 0
	}
	d.Shadow = s
	return PropBoxShadow
}

// ParseOverflow interprets an overflow keyword.
func ParseOverflow(value string) (Overflow, bool) {
	switch css.Keyword(value) {
	case "clip", "hidden", "visible":
		return OverflowClip, true
	case "scroll", "auto":
		return OverflowScroll, true
	case "wrap":
		return OverflowWrap, true
	}
	tracer().Errorf("unknown overflow '%s'", value)
	return OverflowClip, false
}

func parseOverflow(d *Descriptor, value string, env Environment) Property {
	o, ok := ParseOverflow(value)
	if !ok {
		return 0
	}
	d.Overflow = o
	return PropOverflow
}

func parseBlink(d *Descriptor, value string, env Environment) Property {
	switch css.Keyword(value) {
	case "true", "yes", "on", "1":
		d.Blink = true
	case "false", "no", "off", "0", "none":
		d.Blink = false
	default:
		tracer().Errorf("malformed blink '%s'", value)
		return 0
	}
	return PropBlink
}

func parseListStyle(d *Descriptor, value string, env Environment) Property {
	d.ListBullet = css.Keyword(value)
	return PropListBulletType
}
