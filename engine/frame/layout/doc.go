/*
Package layout places widgets sequentially inside nested horizontal and
vertical layouts.

Overview

A layout is opened with Begin, receives items with Add and is closed with
End. Items advance a cursor along the layout's main axis. If a layout
wraps, an item exceeding the main-axis bound starts a new row (or column
for vertical layouts); the finished row is aligned first. Closing a layout
aligns its last row, aligns all rows along the cross axis, shrinks the
layout to its content for axes it does not fill, and adds the layout as a
single item to its parent. Alignment only redistributes space along axes
the layout fills.

Outside of any layout, widgets are placed at an ad-hoc cursor, which may be
moved relative to widgets already placed (Move, MoveFrom, MoveBetween, ...).

The engine keeps every item of a frame in one ordered sequence. A closed
layout's item precedes the items of its descendants, which makes it cheap
to move a nested layout as a whole.

Example:

    e := layout.NewEngine(store, measurer)
    e.Reset(dimen.R(0, 0, 800, 600))
    e.Begin(layout.Spec{Kind: layout.Horizontal, Fill: layout.FillHorizontal,
        Overflow: [2]style.Overflow{style.OverflowWrap}})
    box := e.BoxModelBounds(st, "OK", 0, nil)
    e.Add(id, box, st)
    e.End(1)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.layout")
}
