package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/widget"
)

// The functions in this file move the ad-hoc cursor. They are no-ops while a
// layout is open.

func (e *Engine) adhocOnly(op string) bool {
	if e.depth > 0 {
		tracer().Infof("%s ignored inside of layout", op)
		return false
	}
	return true
}

// Move places the cursor next to the widget placed last, see MoveFrom.
func (e *Engine) Move(dir Direction) {
	if !e.adhocOnly("move") {
		return
	}
	if e.adhoc.last == widget.NoID {
		tracer().Infof("move: no widget placed yet")
		return
	}
	e.MoveFrom(e.adhoc.last, dir)
}

// MoveFrom places the cursor at the top left corner of widget id, moved to
// its right edge for Right and to its bottom edge for Down.
func (e *Engine) MoveFrom(id widget.ID, dir Direction) {
	if !e.adhocOnly("move") {
		return
	}
	g := e.store.Geometry(id)
	e.adhoc.nextpos = g.TopL
	if dir&Right != 0 {
		e.adhoc.nextpos.X = g.BotR.X
	}
	if dir&Down != 0 {
		e.adhoc.nextpos.Y = g.BotR.Y
	}
}

// MoveBetween takes the cursor's x-coordinate from widget hid and its
// y-coordinate from widget vid, using their far edges if toRight or
// toBottom are set.
func (e *Engine) MoveBetween(hid, vid widget.ID, toRight, toBottom bool) {
	if !e.adhocOnly("move") {
		return
	}
	hg, vg := e.store.Geometry(hid), e.store.Geometry(vid)
	e.adhoc.nextpos.X = hg.TopL.X
	if toRight {
		e.adhoc.nextpos.X = hg.BotR.X
	}
	e.adhoc.nextpos.Y = vg.TopL.Y
	if toBottom {
		e.adhoc.nextpos.Y = vg.BotR.Y
	}
}

// MoveBy moves the cursor by amount, negating the horizontal part for Left
// and the vertical part for Up.
func (e *Engine) MoveBy(amount dimen.Point, dir Direction) {
	if !e.adhocOnly("move") {
		return
	}
	if dir&Left != 0 {
		amount.X = -amount.X
	}
	if dir&Up != 0 {
		amount.Y = -amount.Y
	}
	e.adhoc.nextpos = e.adhoc.nextpos.Add(amount)
}

// MoveTo sets the cursor.
func (e *Engine) MoveTo(pos dimen.Point) {
	if !e.adhocOnly("move") {
		return
	}
	e.adhoc.nextpos = pos
}

// AddSpacing advances the cursor by v.
func (e *Engine) AddSpacing(v dimen.Point) {
	if !e.adhocOnly("spacing") {
		return
	}
	e.adhoc.nextpos = e.adhoc.nextpos.Add(v)
}
