/*
Package framedebug helps inspecting the layout of a frame.

The item sequence of a frame's layout engine is turned into a tree of
layouts and widgets by Build. Trees may be printed (Dump), drawn with
Graphviz (ToGraphViz) or queried with XPath (Query). For XPath, every node
is an element named after its widget type, with attributes

    id    widget id, e.g. "button#2"
    x, y  top left corner of the margin box
    w, h  width and height of the margin box
    row   row within the enclosing layout
    col   column within the enclosing layout

Example:

    tree := framedebug.Build(ctx.Items())
    nodes, err := framedebug.Query(tree, "//layout/button[@row='1']")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}
