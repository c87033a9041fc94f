/*
Package parbreak prepares paragraphs for optimal line breaking.

The package sits on top of the core algorithm in
[github.com/npillmayer/parbreak/linebreak] and covers the practical
plumbing around it: turning strings into item sequences (with or without
hyphenation), producing width-measuring callbacks from various sources,
and the common "try without hyphens first, hyphenate only if needed"
flow.

Text measurement is deliberately a callback ([Measure]): the breaking
core must not know about fonts, terminals or rendering surfaces. The
adapters in this package produce such callbacks from a fixed per-rune
width, from East-Asian-aware terminal cell counts, or from an
x/image font.Face.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package parbreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the itemization namespace.
func tracer() tracing.Trace {
	return tracing.Select("parbreak.itemize")
}
