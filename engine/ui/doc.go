/*
Package ui ties style cascade, box model resolution, layout and the widget
store together into a per-frame context.

A client drives a Context once per frame:

    ctx := ui.New(parameters.NewUIRegisters(), measurer)
    ctx.BeginFrame(dimen.Point{X: 800, Y: 600})
    ctx.WithStyle(style.DefaultStyle("padding: 4px"), func() error {
        return ctx.WithLayout(layout.Spec{Kind: layout.Horizontal}, func() error {
            ctx.AddWidget(widget.Label, "Name:", 0)
            ctx.AddWidget(widget.TextInput, "", frame.ExpandH)
            return nil
        })
    })
    if err := ctx.EndFrame(); err != nil {
        ...
    }

Widgets are assigned a fresh id each frame, in call order. Geometry and
style of a widget may be queried from the store until the next frame
begins.

Style resolution for a widget starts with the descriptor of the style
stack's slot selected by the widget's state. Theme rules matching the
widget fill in the properties which have not been pushed explicitly.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ui

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.ui'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.ui")
}
