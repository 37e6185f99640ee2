/*
Package css parses the values of the style mini-language: colors, color
gradients, borders, shadows and four-sided shorthands. It also splits a style
text into its declarations.

The package knows nothing about style descriptors. Property semantics are the
business of package style, which calls into this package for every value.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxflow.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.style")
}
