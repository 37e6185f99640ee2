/*
Package widget stores per-frame widget geometry and styles, addressed by
widget ids.

A widget id packs the widget's type tag into its high bits and a
sequential per-type index into its low bits:

    id = type << TypeBits | index

The store keeps a separate growable arena per widget type, so that
collaborators may iterate over all widgets of a type cheaply.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package widget

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxflow.widget'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.widget")
}
