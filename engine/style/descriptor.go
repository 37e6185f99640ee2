package style

import (
	"fmt"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style/css"
)

// FourSidedMeasure holds a length per side, e.g. for padding or margins.
type FourSidedMeasure struct {
	Top, Right, Bottom, Left float32
}

// Uniform creates a FourSidedMeasure with all sides set to v.
func Uniform(v float32) FourSidedMeasure {
	return FourSidedMeasure{v, v, v, v}
}

// H is left + right.
func (m FourSidedMeasure) H() float32 {
	return m.Left + m.Right
}

// V is top + bottom.
func (m FourSidedMeasure) V() float32 {
	return m.Top + m.Bottom
}

// Side indices, used for FourSidedMeasure.Set and FourSidedBorder.Side.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// Set sets the value of one side.
func (m *FourSidedMeasure) Set(side int, v float32) {
	switch side {
	case Top:
		m.Top = v
	case Right:
		m.Right = v
	case Bottom:
		m.Bottom = v
	case Left:
		m.Left = v
	}
}

// Corner indices for border radii.
const (
	TopLeft int = iota
	TopRight
	BottomRight
	BottomLeft
)

// FourSidedBorder is a border with individual sides and corner radii.
type FourSidedBorder struct {
	Top, Right, Bottom, Left css.Border
	Radius                   [4]float32 // indexed by TopLeft, TopRight, …
	uniform                  bool
}

// SetAll sets every side to b and marks the border as uniform.
func (fb *FourSidedBorder) SetAll(b css.Border) {
	fb.Top, fb.Right, fb.Bottom, fb.Left = b, b, b, b
	fb.uniform = true
}

// Side returns a pointer to one side of the border. Callers modifying a side
// should call MarkMixed.
func (fb *FourSidedBorder) Side(side int) *css.Border {
	switch side {
	case Right:
		return &fb.Right
	case Bottom:
		return &fb.Bottom
	case Left:
		return &fb.Left
	}
	return &fb.Top
}

// MarkMixed flags the border as set per side.
func (fb *FourSidedBorder) MarkMixed() {
	fb.uniform = false
}

// IsUniform is true if the border has been set by a shorthand and no side
// has been changed individually since.
func (fb FourSidedBorder) IsUniform() bool {
	return fb.uniform
}

// IsRounded is true if any corner has a radius.
func (fb FourSidedBorder) IsRounded() bool {
	for _, r := range fb.Radius {
		if r > 0 {
			return true
		}
	}
	return false
}

// Exists is true if any side has a thickness.
func (fb FourSidedBorder) Exists() bool {
	return fb.Top.Exists() || fb.Right.Exists() || fb.Bottom.Exists() || fb.Left.Exists()
}

// H is the sum of the thickness of the left and right side.
func (fb FourSidedBorder) H() float32 {
	return fb.Left.Thickness + fb.Right.Thickness
}

// V is the sum of the thickness of the top and bottom side.
func (fb FourSidedBorder) V() float32 {
	return fb.Top.Thickness + fb.Bottom.Thickness
}

// Thickness returns the thickness of all sides.
func (fb FourSidedBorder) Thickness() FourSidedMeasure {
	return FourSidedMeasure{fb.Top.Thickness, fb.Right.Thickness, fb.Bottom.Thickness, fb.Left.Thickness}
}

// FontFlags are font variants.
type FontFlags uint8

// Font variants.
const (
	FontBold FontFlags = 1 << iota
	FontItalic
	FontLight
	FontMono
	FontStrike
	FontUnderline
)

// Font references a font by family, size and variant. Fonts are not loaded
// by this package.
type Font struct {
	Family string
	Size   float32
	Flags  FontFlags
}

// Alignment flags for text placement within a content box.
type Alignment uint8

// Alignment flags.
const (
	AlignLeft    Alignment = 1
	AlignRight   Alignment = 2
	AlignHCenter Alignment = 4
	AlignTop     Alignment = 8
	AlignBottom  Alignment = 16
	AlignVCenter Alignment = 32
	AlignJustify Alignment = 64

	AlignHorizontal = AlignLeft | AlignRight | AlignHCenter | AlignJustify
	AlignVertical   = AlignTop | AlignBottom | AlignVCenter
)

// TextFlags control wrapping and white-space handling of widget text.
type TextFlags uint8

// Text flags.
const (
	TextNoWrap TextFlags = 1 << iota
	TextEllipsis
	TextCollapseWhitespace
	TextPreserveWhitespace
	TextBreakWords
)

// Overflow is the behaviour for content exceeding its box.
type Overflow uint8

// Overflow modes.
const (
	OverflowClip Overflow = iota
	OverflowScroll
	OverflowWrap
)

func (o Overflow) String() string {
	switch o {
	case OverflowScroll:
		return "scroll"
	case OverflowWrap:
		return "wrap"
	}
	return "clip"
}

// Descriptor is a resolved style. Lengths are in pixels.
//
// Specified has a bit set for every property given explicitly, Relative a
// bit for every property given in percent.
type Descriptor struct {
	BgColor           css.Color
	Gradient          css.Gradient
	FgColor           css.Color
	Dimension         dimen.Point // -1 if not given
	MinDim            dimen.Point
	MaxDim            dimen.Point
	Padding           FourSidedMeasure
	Margin            FourSidedMeasure
	Border            FourSidedBorder
	Font              Font
	Align             Alignment
	Text              TextFlags
	Shadow            css.Shadow
	Overflow          Overflow
	CellSpacing       float32
	Blink             bool
	ListBullet        string
	ThumbColor        css.Color
	TrackColor        css.Color
	TrackOutlineColor css.Color
	ThumbOffset       float32
	Specified         Property
	Relative          Property
	relSides          [2]uint8 // relative sides of padding and margin, bit per side
}

// relativeSides returns the side mask for PropPadding or PropMargin.
func (d *Descriptor) relativeSides(prop Property) *uint8 {
	if prop == PropPadding {
		return &d.relSides[0]
	}
	return &d.relSides[1]
}

// Defaults returns a descriptor with default values: a transparent
// background, black foreground, no explicit dimension, unbounded maximum
// dimension and the environment's default font.
func Defaults(env Environment) Descriptor {
	return Descriptor{
		BgColor:   css.Transparent,
		FgColor:   css.Black,
		Dimension: dimen.Point{X: -1, Y: -1},
		MaxDim:    dimen.Point{X: dimen.Infinity, Y: dimen.Infinity},
		Font: Font{
			Family: env.FontFamily,
			Size:   env.DefaultFontSize,
		},
		Align:             AlignLeft | AlignVCenter,
		Text:              TextCollapseWhitespace,
		ThumbColor:        css.White,
		TrackColor:        css.RGBA(211, 211, 211, 255),
		TrackOutlineColor: css.RGBA(128, 128, 128, 255),
	}
}

// HasExplicitWidth is true if the descriptor specifies a width.
func (d *Descriptor) HasExplicitWidth() bool {
	return d.Specified&PropWidth != 0 && d.Dimension.X >= 0
}

// HasExplicitHeight is true if the descriptor specifies a height.
func (d *Descriptor) HasExplicitHeight() bool {
	return d.Specified&PropHeight != 0 && d.Dimension.Y >= 0
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("style%v{bg=%v fg=%v dim=%v pad=%v border=%v font=%v}",
		d.Specified, d.BgColor, d.FgColor, d.Dimension, d.Padding, d.Border.Thickness(), d.Font)
}
