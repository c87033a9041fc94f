/*
Package linebreak breaks paragraphs into lines.

The package implements the optimal-fit algorithm by Donald E. Knuth and
Michael F. Plass ("Breaking Paragraphs into Lines", Software — Practice
and Experience 11, 1981), the algorithm at the heart of TeX's paragraph
builder. Input is a sequence of [Item] values — boxes, glue and
penalties — together with a [ParShape] providing the target width for
each line. [BreakLines] performs a dynamic-programming search over
candidate breakpoints and returns the sequence of item indices that
minimizes total demerits for the whole paragraph. [AdjustmentRatios] and
[PositionItems] then turn chosen breakpoints into per-line spacing
ratios and renderable item positions.

The package is deliberately small in scope: it knows nothing about
fonts, scripts or rendering surfaces. Callers measure their own text
(see the parent package for itemization helpers) and render the
positions returned by [PositionItems] however they like. All functions
are pure and safe for concurrent use on disjoint inputs.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package linebreak

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the linebreak package namespace.
func tracer() tracing.Trace {
	return tracing.Select("parbreak.linebreak")
}

// assertTrue panics when condition is false.
func assertTrue(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
