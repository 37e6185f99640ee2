/*
Package theme applies stylesheets to widgets by widget type, id and class.

A theme is a stylesheet of rules like

    button { padding: 4px 8px; border: 1px solid gray }
    button.primary:hover { background-color: steelblue }
    #ok:disabled { color: silver }

Selectors are matched with simple type, class and id semantics; combinators
never match, as widgets carry no document tree. A trailing pseudo-class
selects the interaction state the rule applies to.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package theme

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxflow.style'.
func tracer() tracing.Trace {
	return tracing.Select("boxflow.style")
}
