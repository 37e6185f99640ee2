package layout

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/style"
	"github.com/npillmayer/boxflow/engine/widget"
)

// MaxNesting is the maximum number of simultaneously open layouts.
const MaxNesting = 8

// spanOnce marks a span entry which is consumed by the next item.
const spanOnce frame.Sizing = 1 << 7

var axes = [2]axis{xAxis, yAxis}

// Engine places the widgets of a frame. It is not safe for concurrent use.
type Engine struct {
	store   *widget.Store
	measure frame.Measurer
	window  dimen.Rect
	levels  [MaxNesting]Descriptor
	depth   int
	items   []Item
	sizing  *arraystack.Stack // of Sizing
	spans   *arraystack.Stack // of frame.Sizing
	adhoc   struct {
		nextpos dimen.Point
		last    widget.ID
	}
	fromFar bool // last box resolved is anchored at the far-edge cursor
}

// NewEngine creates a layout engine writing geometry to store and measuring
// texts with m.
func NewEngine(store *widget.Store, m frame.Measurer) *Engine {
	e := &Engine{
		store:   store,
		measure: m,
		sizing:  arraystack.New(),
		spans:   arraystack.New(),
	}
	e.Reset(dimen.Rect{})
	return e
}

// Reset prepares the engine for a new frame drawn into window.
func (e *Engine) Reset(window dimen.Rect) {
	e.window = window
	for i := 0; i < e.depth; i++ {
		e.levels[i].reset()
	}
	e.depth = 0
	e.items = e.items[:0]
	e.sizing.Clear()
	e.spans.Clear()
	e.adhoc.nextpos = window.TopL
	e.adhoc.last = widget.NoID
	e.fromFar = false
}

// Window returns the rectangle of the frame.
func (e *Engine) Window() dimen.Rect {
	return e.window
}

// Depth returns the number of open layouts.
func (e *Engine) Depth() int {
	return e.depth
}

// SizingDepth returns the number of active sizing entries.
func (e *Engine) SizingDepth() int {
	return e.sizing.Size()
}

// SpanDepth returns the number of active span entries.
func (e *Engine) SpanDepth() int {
	return e.spans.Size()
}

// Items returns the item sequence of the current frame. The slice is owned
// by the engine and valid until the next Reset.
func (e *Engine) Items() []Item {
	return e.items
}

// Top returns the innermost open layout, or nil.
func (e *Engine) Top() *Descriptor {
	if e.depth == 0 {
		return nil
	}
	return &e.levels[e.depth-1]
}

// Cursor returns the position where the next widget will be placed.
func (e *Engine) Cursor() dimen.Point {
	if l := e.Top(); l != nil {
		return l.nextpos
	}
	return e.adhoc.nextpos
}

// LastItem returns the id of the widget or layout placed last outside of any
// layout.
func (e *Engine) LastItem() widget.ID {
	return e.adhoc.last
}

// --- Layouts ---------------------------------------------------------------

// Begin opens a layout. Its geometry is seeded by the cursor of the
// enclosing layout, or by the ad-hoc cursor and the window for top-level
// layouts. Axes with an explicit size or fill policy are bounded, other
// axes grow with the content and are shrunk to it by End.
//
// Opening more than MaxNesting layouts returns an error of kind
// core.EOVERFLOW.
func (e *Engine) Begin(spec Spec) (dimen.Rect, error) {
	if e.depth == MaxNesting {
		err := core.Overflow("layout", MaxNesting)
		tracer().Errorf("%v", err)
		return dimen.Rect{}, err
	}
	parent := e.Top()
	var anchor, far dimen.Point
	if parent == nil {
		anchor, far = e.adhoc.nextpos, e.window.BotR
		if nb := spec.Neighbors; nb != nil {
			if nb.Left != widget.NoID {
				anchor.X = e.store.Geometry(nb.Left).BotR.X
			}
			if nb.Top != widget.NoID {
				anchor.Y = e.store.Geometry(nb.Top).BotR.Y
			}
			if nb.Right != widget.NoID {
				far.X = e.store.Geometry(nb.Right).TopL.X
			}
			if nb.Bottom != widget.NoID {
				far.Y = e.store.Geometry(nb.Bottom).TopL.Y
			}
		}
	} else {
		anchor, far = parent.nextpos, parent.limit
		if spec.Neighbors != nil {
			tracer().Infof("neighbors of nested layout ignored")
		}
	}
	id := e.store.Allocate(widget.Layout)
	l := &e.levels[e.depth]
	l.reset()
	l.Kind, l.Fill, l.Align = spec.Kind, spec.Fill, spec.Align
	l.Spacing, l.Overflow = spec.Spacing, spec.Overflow
	l.ID, l.style = id, spec.Style
	margin := dimen.Rect{TopL: anchor, BotR: anchor}
	for _, a := range axes {
		switch {
		case a.of(spec.Size) > 0:
			a.set(&margin.BotR, a.of(anchor)+a.of(spec.Size))
			l.explicit[a] = true
		case l.fills(a) && a.of(far) < dimen.Infinity:
			a.set(&margin.BotR, dimen.Max(a.of(anchor), a.of(far)))
		case l.fills(a):
			tracer().Infof("layout %v cannot fill unbounded axis, sizing to content", id)
			l.Fill &^= a.fill()
		}
	}
	near, _ := insets(spec.Style)
	box := frame.FromMargin(margin, spec.Style)
	l.margin = margin
	l.origin = anchor.Add(near)
	l.limit = box.Content.BotR
	for _, a := range axes {
		if !l.bounded(a) {
			a.set(&l.limit, dimen.Infinity)
		} else if a.of(l.limit) < a.of(l.origin) {
			a.set(&l.limit, a.of(l.origin))
		}
	}
	l.nextpos, l.extent = l.origin, l.origin
	l.prevpos = l.limit
	l.item = len(e.items)
	item := Item{ID: id, Type: widget.Sublayout, Box: box, Parent: -1, Last: l.item, Depth: e.depth}
	if parent != nil {
		item.Parent = parent.item
	}
	e.items = append(e.items, item)
	if spec.Sizing != nil {
		e.PushSizing(*spec.Sizing)
		l.sizing = true
	}
	e.depth++
	tracer().Debugf("begin %v layout %v at %v, fill=%v", l.Kind, id, margin, l.Fill)
	return margin, nil
}

// BeginStyled opens a layout described by style text, see ParseLayoutStyle.
func (e *Engine) BeginStyled(text string, env style.Environment, neighbors *Neighbors) (dimen.Rect, error) {
	spec, st := ParseLayoutStyle(text, env)
	spec.Neighbors = neighbors
	spec.Style = &st
	return e.Begin(spec)
}

// End closes depth layouts and returns the margin rectangle of the layout
// closed last. Closing more layouts than are open is a no-op.
func (e *Engine) End(depth int) dimen.Rect {
	var r dimen.Rect
	if depth > 0 && e.depth == 0 {
		tracer().Infof("no open layout to end")
	}
	for ; depth > 0 && e.depth > 0; depth-- {
		r = e.close()
	}
	return r
}

func (e *Engine) close() dimen.Rect {
	l := &e.levels[e.depth-1]
	e.alignMain(l)
	e.alignCross(l)
	margin := l.margin
	_, far := insets(l.style)
	for _, a := range axes {
		if !l.bounded(a) {
			a.set(&margin.BotR, dimen.Max(a.of(l.extent), a.of(l.origin))+a.of(far))
		}
	}
	box := frame.FromMargin(margin, l.style)
	it := &e.items[l.item]
	it.Box = box
	it.Last = len(e.items) - 1
	e.store.Record(l.ID, box, l.style)
	if l.sizing {
		e.PopSizing(1)
	}
	e.depth--
	if parent := e.Top(); parent != nil {
		e.place(parent, l.item)
	} else {
		e.adhoc.last = l.ID
		e.adhoc.nextpos = dimen.Point{X: margin.TopL.X, Y: margin.BotR.Y}
	}
	tracer().Debugf("end layout %v at %v", l.ID, e.items[l.item].Box.Margin)
	return e.items[l.item].Box.Margin
}

func (l *Descriptor) bounded(a axis) bool {
	return l.explicit[a] || l.fills(a)
}

// insets returns the sums of margin, border and padding at the near and far
// sides of a box.
func insets(st *style.Descriptor) (near, far dimen.Point) {
	if st == nil {
		return
	}
	b := st.Border.Thickness()
	near = dimen.Point{
		X: st.Margin.Left + b.Left + st.Padding.Left,
		Y: st.Margin.Top + b.Top + st.Padding.Top,
	}
	far = dimen.Point{
		X: st.Margin.Right + b.Right + st.Padding.Right,
		Y: st.Margin.Bottom + b.Bottom + st.Padding.Bottom,
	}
	return
}

// --- Items -----------------------------------------------------------------

// Add places a resolved widget box into the current layout, or at the
// ad-hoc cursor if no layout is open, and records it in the store.
// It returns the index of the item in the item sequence.
func (e *Engine) Add(id widget.ID, box frame.Box, st *style.Descriptor) int {
	idx := len(e.items)
	item := Item{ID: id, Type: id.Type(), Box: box, Parent: -1, Last: idx, Depth: e.depth}
	l := e.Top()
	if l != nil {
		item.Parent = l.item
		item.fromFar = e.fromFar
	}
	e.fromFar = false
	e.items = append(e.items, item)
	if l != nil {
		e.place(l, idx)
	} else {
		e.adhoc.last = id
		e.adhoc.nextpos = dimen.Point{X: box.Margin.TopL.X, Y: box.Margin.BotR.Y}
	}
	e.store.Record(id, e.items[idx].Box, st)
	if top, ok := e.spans.Peek(); ok && top.(frame.Sizing)&spanOnce != 0 {
		e.spans.Pop()
	}
	return idx
}

// place moves an item to the cursor of l and advances the cursor, wrapping
// to a new row or column if necessary.
func (e *Engine) place(l *Descriptor, idx int) {
	m := l.main()
	c := m.other()
	margin := e.items[idx].Box.Margin
	if l.Kind == Grid {
		e.shift(idx, xAxis, l.nextpos.X-margin.TopL.X)
		e.shift(idx, yAxis, l.nextpos.Y-margin.TopL.Y)
		l.members = append(l.members, idx)
		e.extend(l, idx)
		return
	}
	size, cross := m.size(margin), c.size(margin)
	fromFar := e.items[idx].fromFar
	if l.wraps() && l.lineStart < len(l.members) {
		if fromFar && m.of(l.prevpos)-size < m.of(l.nextpos) ||
			!fromFar && m.of(l.nextpos)+size > m.of(l.prevpos) {
			e.nextLine(l)
		}
	}
	if fromFar {
		e.shift(idx, m, m.of(l.prevpos)-m.of(margin.BotR))
	} else {
		e.shift(idx, m, m.of(l.nextpos)-m.of(margin.TopL))
	}
	e.shift(idx, c, c.of(l.nextpos)-c.of(margin.TopL))
	it := &e.items[idx]
	if m == xAxis {
		it.Row, it.Col = l.line, l.pos
	} else {
		it.Row, it.Col = l.pos, l.line
	}
	l.lineCross = dimen.Max(l.lineCross, cross)
	if fromFar {
		m.set(&l.prevpos, m.of(l.prevpos)-size-m.of(l.Spacing))
	} else {
		if l.lineNear > 0 {
			l.lineMain += m.of(l.Spacing)
		}
		l.lineMain += size
		l.lineNear++
		m.set(&l.nextpos, m.of(l.nextpos)+size+m.of(l.Spacing))
	}
	l.members = append(l.members, idx)
	l.pos++
	e.extend(l, idx)
}

// nextLine finishes the current row (or column) of l and moves the cursor
// to the start of the next one.
func (e *Engine) nextLine(l *Descriptor) {
	m := l.main()
	c := m.other()
	e.alignMain(l)
	l.cumCross += l.lineCross + c.of(l.Spacing)
	l.lineCross, l.lineMain, l.lineNear = 0, 0, 0
	l.lineStart = len(l.members)
	l.line++
	l.pos = 0
	m.set(&l.nextpos, m.of(l.origin))
	c.set(&l.nextpos, c.of(l.origin)+l.cumCross)
	m.set(&l.prevpos, m.of(l.limit))
}

func (e *Engine) extend(l *Descriptor, idx int) {
	r := e.items[idx].Box.Margin
	l.extent.X = dimen.Max(l.extent.X, r.BotR.X)
	l.extent.Y = dimen.Max(l.extent.Y, r.BotR.Y)
}

// shift translates an item along an axis, including all items nested in it.
func (e *Engine) shift(idx int, a axis, d float32) {
	if d == 0 {
		return
	}
	for i := idx; i <= e.items[idx].Last; i++ {
		e.items[i].Box = translate(e.items[i].Box, a, d)
		e.store.SetBox(e.items[i].ID, e.items[i].Box)
	}
}

// --- Box model -------------------------------------------------------------

// BoxModelBounds resolves the box of a widget placed at the current cursor.
//
// Expanding axes are bounded, in order of precedence, by the enclosing
// layout if it fills that axis, by an explicit neighbor, or by the window
// if no layout is open. An expand flag without any of these bounds is
// ignored. Active spans add expand flags, an active sizing entry sets the
// widget's margin-box size. nb may be nil.
func (e *Engine) BoxModelBounds(st *style.Descriptor, text string, flags frame.Sizing, nb *Neighbors) frame.Box {
	e.fromFar = false
	if nb == nil {
		nb = &NoNeighbors
	}
	if top, ok := e.spans.Peek(); ok {
		flags |= top.(frame.Sizing) &^ spanOnce
	}
	l := e.Top()
	if top, ok := e.sizing.Peek(); ok {
		st = e.applySizing(st, top.(Sizing), l)
	}
	bounds := e.window
	for _, a := range axes {
		if flags&a.expand() == 0 {
			continue
		}
		negative := (a == xAxis && flags&frame.ToLeft != 0) || (a == yAxis && flags&frame.ToTop != 0)
		nearNb, farNb := nb.Left, nb.Right
		if a == yAxis {
			nearNb, farNb = nb.Top, nb.Bottom
		}
		switch {
		case l != nil && l.fills(a) && a.of(l.limit) < dimen.Infinity:
			a.set(&bounds.TopL, a.of(l.origin))
			a.set(&bounds.BotR, a.of(l.limit))
		case negative && nearNb != widget.NoID:
			a.set(&bounds.TopL, a.of(e.store.Geometry(nearNb).BotR))
		case !negative && farNb != widget.NoID:
			a.set(&bounds.BotR, a.of(e.store.Geometry(farNb).TopL))
		case l == nil:
			// window
		default:
			tracer().Infof("cannot expand widget along unbounded axis of layout %v", l.ID)
			flags &^= a.expand()
		}
	}
	anchor := e.Cursor()
	if l != nil && l.Kind != Grid {
		m := l.main()
		if flags&m.negative() != 0 && l.bounded(m) {
			m.set(&anchor, m.of(l.prevpos))
			e.fromFar = true
		}
	}
	return frame.Resolve(frame.Request{
		Anchor:  anchor,
		Style:   st,
		Text:    text,
		Measure: e.measure,
		Flags:   flags,
		Bounds:  bounds,
	})
}

func (e *Engine) applySizing(st *style.Descriptor, sz Sizing, l *Descriptor) *style.Descriptor {
	var d style.Descriptor
	if st != nil {
		d = *st
	} else {
		d.Dimension = dimen.Point{X: -1, Y: -1}
		d.MaxDim = dimen.Point{X: dimen.Infinity, Y: dimen.Infinity}
	}
	interior := e.window
	if l != nil {
		interior = l.Interior()
	}
	near, far := insets(&d)
	sizes := [2]float32{sz.Width, sz.Height}
	relative := [2]bool{sz.RelWidth, sz.RelHeight}
	for _, a := range axes {
		v := sizes[a]
		if v <= 0 {
			continue
		}
		if relative[a] {
			avail := a.size(interior)
			if avail >= dimen.Infinity || a.of(interior.BotR) >= dimen.Infinity {
				tracer().Infof("relative sizing inside unbounded layout ignored")
				continue
			}
			v *= avail
		}
		a.set(&d.Dimension, dimen.Max(0, v-a.of(near)-a.of(far)))
		if a == xAxis {
			d.Specified |= style.PropWidth
		} else {
			d.Specified |= style.PropHeight
		}
	}
	return &d
}

// --- Sizing and spans ------------------------------------------------------

// PushSizing activates a sizing for subsequently placed widgets.
func (e *Engine) PushSizing(sz Sizing) {
	e.sizing.Push(sz)
}

// PopSizing removes depth sizing entries.
func (e *Engine) PopSizing(depth int) {
	for ; depth > 0; depth-- {
		if _, ok := e.sizing.Pop(); !ok {
			tracer().Infof("sizing stack is empty")
			return
		}
	}
}

// PushSpan lets subsequent widgets expand along the given axes
// (frame.ExpandH and/or frame.ExpandV) until PopSpan.
func (e *Engine) PushSpan(dir frame.Sizing) {
	e.spans.Push(dir & frame.Expand)
}

// SetSpan lets the next widget expand along the given axes.
func (e *Engine) SetSpan(dir frame.Sizing) {
	e.spans.Push(dir&frame.Expand | spanOnce)
}

// PopSpan removes depth span entries.
func (e *Engine) PopSpan(depth int) {
	for ; depth > 0; depth-- {
		if _, ok := e.spans.Pop(); !ok {
			tracer().Infof("span stack is empty")
			return
		}
	}
}
