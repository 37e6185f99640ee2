/*
Package text provides line wrapping for text measurers.

Sub-packages implement frame.Measurer: package monospace for cell-based
fonts, package bitmapface for fonts of golang.org/x/image/font.

Input is normalized to Unicode NFC. Line-wrap opportunities are found with
UAX#14, mandatory breaks are newline characters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package text

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxflow.text'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.text")
}
