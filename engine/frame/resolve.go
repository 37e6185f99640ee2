package frame

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style"
)

// Request collects the input for resolving a box.
type Request struct {
	Anchor  dimen.Point       // where the margin box starts growing
	Style   *style.Descriptor // resolved style of the widget
	Text    string            // text to measure, may be empty
	Measure Measurer          // may be nil if Text is empty
	Flags   Sizing
	Bounds  dimen.Rect // for expanding axes: the far edges to expand to
}

var noStyle = style.Descriptor{
	Dimension: dimen.Point{X: -1, Y: -1},
	MaxDim:    dimen.Point{X: dimen.Infinity, Y: dimen.Infinity},
}

// Resolve computes the rectangles of a box.
//
// Along an axis with an expand flag set, the margin box spans from the anchor
// to the far edge of req.Bounds (the left or top edge for ToLeft/ToTop).
// Otherwise the content is sized to the style's explicit dimension, or to the
// measured text if there is none. In both cases the content size is clamped
// to the style's minimum and maximum dimension, and the other rectangles
// grow outward from the content by padding, border thickness and margin.
func Resolve(req Request) Box {
	st := req.Style
	if st == nil {
		st = &noStyle
	}
	m := memo{
		measurer: req.Measure,
		text:     req.Text,
		family:   st.Font.Family,
		size:     st.Font.Size,
	}
	border := st.Border.Thickness()
	insetsH := st.Margin.H() + border.H() + st.Padding.H()
	insetsV := st.Margin.V() + border.V() + st.Padding.V()
	// content width
	var cw float32
	wrapping := st.Text&style.TextNoWrap == 0
	switch {
	case req.Flags&ExpandH != 0:
		cw = expandExtent(req.Anchor.X, req.Bounds.TopL.X, req.Bounds.BotR.X, req.Flags&ToLeft != 0) - insetsH
	case st.HasExplicitWidth():
		cw = st.Dimension.X
	default:
		wrap := float32(0)
		if wrapping && st.MaxDim.X < dimen.Infinity {
			wrap = st.MaxDim.X
		}
		cw, _ = m.measure(wrap)
	}
	cw = clampContent(cw, st.MinDim.X, st.MaxDim.X)
	// content height
	var ch float32
	switch {
	case req.Flags&ExpandV != 0:
		ch = expandExtent(req.Anchor.Y, req.Bounds.TopL.Y, req.Bounds.BotR.Y, req.Flags&ToTop != 0) - insetsV
	case st.HasExplicitHeight():
		ch = st.Dimension.Y
	default:
		_, ch = m.measure(wrapWidth(wrapping, cw))
	}
	ch = clampContent(ch, st.MinDim.Y, st.MaxDim.Y)
	//
	box := Box{}
	x := layoutAxis(req.Anchor.X, req.Flags&ToLeft != 0, cw,
		[3]float32{st.Margin.Left, border.Left, st.Padding.Left},
		[3]float32{st.Margin.Right, border.Right, st.Padding.Right})
	y := layoutAxis(req.Anchor.Y, req.Flags&ToTop != 0, ch,
		[3]float32{st.Margin.Top, border.Top, st.Padding.Top},
		[3]float32{st.Margin.Bottom, border.Bottom, st.Padding.Bottom})
	box.Margin = dimen.R(x[0].from, y[0].from, x[0].to, y[0].to).Canonical()
	box.Border = dimen.R(x[1].from, y[1].from, x[1].to, y[1].to).Canonical()
	box.Padding = dimen.R(x[2].from, y[2].from, x[2].to, y[2].to).Canonical()
	box.Content = dimen.R(x[3].from, y[3].from, x[3].to, y[3].to).Canonical()
	// text
	tw, th := m.measure(wrapWidth(wrapping, cw))
	box.Text = placeText(box.Content, tw, th, st.Align)
	tracer().Debugf("resolved box %v, flags=%v", box.Margin, req.Flags)
	return box
}

func wrapWidth(wrapping bool, w float32) float32 {
	if wrapping {
		return w
	}
	return 0
}

// expandExtent returns the distance from the anchor to the far edge.
func expandExtent(anchor, lo, hi float32, negative bool) float32 {
	if negative {
		return dimen.Max(0, anchor-lo)
	}
	return dimen.Max(0, hi-anchor)
}

func clampContent(d, lo, hi float32) float32 {
	d = dimen.Clamp(d, lo, hi)
	return dimen.Max(0, d)
}

type span struct {
	from, to float32
}

// layoutAxis lays out the edges of margin, border, padding and content along
// one axis, growing from the anchor. near holds margin, border and padding of
// the side at the start of the growth direction, far those of the other side.
// Spans are returned in growth direction, i.e. unordered for negative growth.
func layoutAxis(anchor float32, negative bool, content float32, near, far [3]float32) [4]span {
	if negative {
		near, far = far, near
	}
	sign := float32(1)
	if negative {
		sign = -1
	}
	var spans [4]span
	pos := anchor
	for i := 0; i < 3; i++ {
		spans[i].from = pos
		pos += sign * near[i]
	}
	spans[3].from = pos
	pos += sign * content
	spans[3].to = pos
	for i := 2; i >= 0; i-- {
		pos += sign * far[i]
		spans[i].to = pos
	}
	return spans
}

// placeText positions a text of extent tw × th within the content rectangle.
// Text larger than the content starts at the content's top left corner.
func placeText(content dimen.Rect, tw, th float32, align style.Alignment) dimen.Rect {
	x, y := content.TopL.X, content.TopL.Y
	freeW := dimen.Max(0, content.Width()-tw)
	freeH := dimen.Max(0, content.Height()-th)
	switch {
	case align&style.AlignRight != 0:
		x += freeW
	case align&style.AlignHCenter != 0:
		x += freeW / 2
	}
	switch {
	case align&style.AlignBottom != 0:
		y += freeH
	case align&style.AlignVCenter != 0:
		y += freeH / 2
	}
	return dimen.R(x, y, x+tw, y+th)
}

// FromMargin derives the inner rectangles of a box from its margin
// rectangle, shrinking by margin, border thickness and padding of st.
// Insets larger than the rectangle collapse the inner rectangles instead of
// inverting them. The text rectangle is set to the content rectangle.
func FromMargin(margin dimen.Rect, st *style.Descriptor) Box {
	if st == nil {
		return BoxAt(margin)
	}
	border := st.Border.Thickness()
	box := Box{Margin: margin}
	box.Border = inset(box.Margin, st.Margin)
	box.Padding = inset(box.Border, border)
	box.Content = inset(box.Padding, st.Padding)
	box.Text = box.Content
	return box
}

// FromContent derives the outer rectangles of a box from its content
// rectangle, growing by padding, border thickness and margin of st.
func FromContent(content dimen.Rect, st *style.Descriptor) Box {
	if st == nil {
		return BoxAt(content)
	}
	border := st.Border.Thickness()
	box := Box{Content: content, Text: content}
	box.Padding = outset(box.Content, st.Padding)
	box.Border = outset(box.Padding, border)
	box.Margin = outset(box.Border, st.Margin)
	return box
}

func inset(outer dimen.Rect, m style.FourSidedMeasure) dimen.Rect {
	r := outer
	r.TopL.X += m.Left
	r.TopL.Y += m.Top
	r.BotR.X -= m.Right
	r.BotR.Y -= m.Bottom
	if r.BotR.X < r.TopL.X {
		x := dimen.Clamp(r.TopL.X, outer.TopL.X, outer.BotR.X)
		r.TopL.X, r.BotR.X = x, x
	}
	if r.BotR.Y < r.TopL.Y {
		y := dimen.Clamp(r.TopL.Y, outer.TopL.Y, outer.BotR.Y)
		r.TopL.Y, r.BotR.Y = y, y
	}
	return r
}

func outset(r dimen.Rect, m style.FourSidedMeasure) dimen.Rect {
	r.TopL.X -= m.Left
	r.TopL.Y -= m.Top
	r.BotR.X += m.Right
	r.BotR.Y += m.Bottom
	return r
}
