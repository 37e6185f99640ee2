/*
Package style resolves style texts into style descriptors and cascades them
over the interaction states of widgets.

Style texts are written in a small subset of CSS:

    background-color: rgb(10, 20, 30); padding: 5px 3px; border: 2px solid red;

Parsing a style text results in a Descriptor and a bitmask of the properties
the text specified. Lengths are resolved at parse time, using an Environment
which carries the current font size, the parent's dimension and the ambient
scale factor.

Every widget may be in one of six interaction states (see Slot). A Stack holds
six descriptors per nesting level. Properties not specified for a state are
filled in from the default state by CopyStyle, which never touches a property
already specified.

Malformed style text is never an error: problems are traced and the offending
declaration is skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxflow.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.style")
}
