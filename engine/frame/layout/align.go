package layout

import (
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/style"
)

// alignMain distributes unused main-axis space of the current row (or
// column) of l. Center puts half of it before the row, far-edge alignment
// all of it, justify spreads it as equal gaps around the items. Items pinned
// to the far edge keep their place and the space they take is not
// distributed. Layouts not filling their main axis are left alone.
func (e *Engine) alignMain(l *Descriptor) {
	m := l.main()
	if l.Kind == Grid || !l.fills(m) || l.unbounded(m) {
		return
	}
	var line []int
	for _, idx := range l.members[l.lineStart:] {
		if !e.items[idx].fromFar {
			line = append(line, idx)
		}
	}
	if len(line) == 0 {
		return
	}
	avail := m.of(l.prevpos) - m.of(l.origin)
	switch {
	case l.Align&m.center() != 0:
		if free := avail - l.lineMain; free > 0 {
			for _, idx := range line {
				e.shift(idx, m, free/2)
			}
		}
	case l.Align&m.far() != 0:
		if free := avail - l.lineMain; free > 0 {
			for _, idx := range line {
				e.shift(idx, m, free)
			}
		}
	case l.Align&style.AlignJustify != 0:
		var sum float32
		for _, idx := range line {
			sum += m.size(e.items[idx].Box.Margin)
		}
		gap := (avail - sum) / float32(len(line)+1)
		if gap <= 0 {
			return
		}
		pos := m.of(l.origin) + gap
		for _, idx := range line {
			r := e.items[idx].Box.Margin
			e.shift(idx, m, pos-m.of(r.TopL))
			pos += m.size(r) + gap
		}
	}
}

// alignCross distributes unused cross-axis space of l among its rows (or
// columns). Center and far-edge alignment move all rows, justify spreads the
// space as equal gaps between rows. Center and far edge take precedence, as
// the justify flag is shared by both axes.
func (e *Engine) alignCross(l *Descriptor) {
	c := l.main().other()
	if l.Kind == Grid || !l.fills(c) || l.unbounded(c) || len(l.members) == 0 {
		return
	}
	avail := c.of(l.limit) - c.of(l.origin)
	free := avail - (l.cumCross + l.lineCross)
	if free <= 0 {
		return
	}
	switch {
	case l.Align&c.center() != 0:
		for _, idx := range l.members {
			e.shift(idx, c, free/2)
		}
	case l.Align&c.far() != 0:
		for _, idx := range l.members {
			e.shift(idx, c, free)
		}
	case l.Align&style.AlignJustify != 0:
		gap := free / float32(l.line+2)
		for _, idx := range l.members {
			line := e.items[idx].Row
			if c == xAxis {
				line = e.items[idx].Col
			}
			e.shift(idx, c, gap*float32(line+1))
		}
	}
}

func (l *Descriptor) unbounded(a axis) bool {
	return a.of(l.limit) >= dimen.Infinity
}
