/*
Package bitmapface measures text with a font.Face of golang.org/x/image,
by default basicfont.Face7x13. Extents are scaled from the face's native
line height to the requested font size.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package bitmapface

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.text'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.text")
}
