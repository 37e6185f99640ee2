/*
Package frame resolves the box model of widgets.

Every widget occupies four nested rectangles, following the CSS box model:
the content box, surrounded by padding, border and margin. A fifth rectangle
holds the widget's text, placed within the content box according to the
widget's text alignment.

    ┌──────────────── margin ─────────────────┐
    │  ┌───────────── border ──────────────┐  │
    │  │  ┌────────── padding ──────────┐  │  │
    │  │  │  ┌─────── content ───────┐  │  │  │
    │  │  │  │  text                 │  │  │  │
    │  │  │  └───────────────────────┘  │  │  │
    │  │  └─────────────────────────────┘  │  │
    │  └───────────────────────────────────┘  │
    └─────────────────────────────────────────┘

Along each axis a box is either fitted to its content (an explicit dimension
from the style or the measured text), or expanded to fill the space up to
the far edge of given bounds. Boxes usually grow to the right and downwards
from an anchor point; flags ToLeft and ToTop reverse the direction.

Text is never shaped here. Clients supply a Measurer.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package frame

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.frame'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.frame")
}
