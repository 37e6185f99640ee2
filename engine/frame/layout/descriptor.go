package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/boxflow/engine/widget"
)

// Kind is the direction in which a layout places its items.
type Kind uint8

// Layout kinds. Grid is reserved: items of a grid layout are stacked at the
// cursor, placement is left to the grid widget.
const (
	Horizontal Kind = iota
	Vertical
	Grid
)

func (k Kind) String() string {
	switch k {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case Grid:
		return "grid"
	}
	return "kind?"
}

// Fill tells along which axes a layout claims all of the available space.
type Fill uint8

// Fill flags.
const (
	FillNone       Fill = 0
	FillHorizontal Fill = 1
	FillVertical   Fill = 2
	FillAll             = FillHorizontal | FillVertical
)

func (f Fill) String() string {
	switch f {
	case FillNone:
		return "none"
	case FillHorizontal:
		return "horizontal"
	case FillVertical:
		return "vertical"
	}
	return "all"
}

// Direction flags for moving the ad-hoc cursor.
type Direction uint8

// Directions. Right and Down place the cursor at the far edge of a widget,
// Left and Up negate amounts for MoveBy.
const (
	Right Direction = 1 << iota
	Down
	Left
	Up
)

// Neighbors name widgets bounding a top-level layout or expanding widget.
// Unused sides are widget.NoID.
type Neighbors struct {
	Left, Top, Right, Bottom widget.ID
}

// NoNeighbors is the neutral neighbor set.
var NoNeighbors = Neighbors{widget.NoID, widget.NoID, widget.NoID, widget.NoID}

// Sizing sets the margin-box size of widgets placed while it is active.
// Zero extents leave an axis alone. Relative extents are fractions of the
// enclosing layout's (or window's) interior.
type Sizing struct {
	Width, Height       float32
	RelWidth, RelHeight bool
}

// Spec describes a layout to open.
type Spec struct {
	Kind      Kind
	Fill      Fill
	Align     style.Alignment
	Spacing   dimen.Point
	Overflow  [2]style.Overflow // horizontal and vertical
	Size      dimen.Point       // explicit margin-box size, 0 = unset
	Neighbors *Neighbors        // only for top-level layouts, may be nil
	Style     *style.Descriptor // margin, border and padding of the layout
	Sizing    *Sizing           // pushed for the lifetime of the layout
}

// Item is an entry of the per-frame item sequence.
type Item struct {
	ID       widget.ID
	Type     widget.Type // widget.Sublayout for layouts
	Box      frame.Box
	Row, Col int
	Parent   int // index of the enclosing layout's item, -1 for top level
	Last     int // layouts: index of the last descendant item
	Depth    int

	fromFar bool // pinned to the far edge of its row or column
}

// IsLayout is true for items representing layouts.
func (it Item) IsLayout() bool {
	return it.Type == widget.Sublayout
}

// Descriptor is the state of an open layout.
type Descriptor struct {
	Kind     Kind
	Fill     Fill
	Align    style.Alignment
	Spacing  dimen.Point
	Overflow [2]style.Overflow
	ID       widget.ID

	style     *style.Descriptor
	item      int         // index of the layout's own item
	explicit  [2]bool     // axes with explicit size
	margin    dimen.Rect  // margin box as known at Begin
	origin    dimen.Point // top left corner of the interior
	limit     dimen.Point // far edges of the interior, Infinity if unbounded
	nextpos   dimen.Point // placement cursor
	prevpos   dimen.Point // far-edge cursor for items growing to the left or top
	extent    dimen.Point // far edges reached by items
	line, pos int         // current row/column and position within it
	lineMain  float32     // main-axis extent of the current row/column, incl. spacing
	lineCross float32     // largest cross-axis extent in the current row/column
	lineNear  int         // items of the current row/column placed from the near edge
	cumCross  float32     // cross-axis extent of finished rows/columns, incl. spacing
	lineStart int         // index into members where the current row/column starts
	members   []int       // items of this layout, indices into the sequence
	sizing    bool        // a sizing entry has been pushed by Begin
}

func (l *Descriptor) reset() {
	members := l.members[:0]
	*l = Descriptor{}
	l.members = members
}

// Interior returns the rectangle available to items. Unbounded axes extend
// to dimen.Infinity.
func (l *Descriptor) Interior() dimen.Rect {
	return dimen.Rect{TopL: l.origin, BotR: l.limit}
}

// Cursor returns the position where the next item will be placed.
func (l *Descriptor) Cursor() dimen.Point {
	return l.nextpos
}

func (l *Descriptor) main() axis {
	if l.Kind == Vertical {
		return yAxis
	}
	return xAxis
}

func (l *Descriptor) fills(a axis) bool {
	return l.Fill&a.fill() != 0
}

func (l *Descriptor) wraps() bool {
	a := l.main()
	return l.Kind != Grid && l.Overflow[a] == style.OverflowWrap && a.of(l.limit) < dimen.Infinity
}

// --- Axis helpers ----------------------------------------------------------

type axis int

const (
	xAxis axis = 0
	yAxis axis = 1
)

func (a axis) of(p dimen.Point) float32 {
	if a == xAxis {
		return p.X
	}
	return p.Y
}

func (a axis) set(p *dimen.Point, v float32) {
	if a == xAxis {
		p.X = v
	} else {
		p.Y = v
	}
}

func (a axis) other() axis {
	return 1 - a
}

func (a axis) size(r dimen.Rect) float32 {
	if a == xAxis {
		return r.Width()
	}
	return r.Height()
}

func (a axis) fill() Fill {
	if a == xAxis {
		return FillHorizontal
	}
	return FillVertical
}

func (a axis) expand() frame.Sizing {
	if a == xAxis {
		return frame.ExpandH
	}
	return frame.ExpandV
}

// negative is the flag for growing towards the near edge along a.
func (a axis) negative() frame.Sizing {
	if a == xAxis {
		return frame.ToLeft
	}
	return frame.ToTop
}

func (a axis) center() style.Alignment {
	if a == xAxis {
		return style.AlignHCenter
	}
	return style.AlignVCenter
}

func (a axis) far() style.Alignment {
	if a == xAxis {
		return style.AlignRight
	}
	return style.AlignBottom
}

func translate(box frame.Box, a axis, d float32) frame.Box {
	if a == xAxis {
		return box.TranslateX(d)
	}
	return box.TranslateY(d)
}
