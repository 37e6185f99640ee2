/*
Package monospace measures text set in a monospace font.

Every grapheme occupies one cell, or two cells for East Asian wide
characters (UAX#11). Cells are either of a fixed width or derived from the
font size.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.text'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.text")
}
