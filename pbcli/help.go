package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "items", "item", "boxes", "glue", "penalty":
		pterm.Info.Println("Items")
		pterm.Println(`
	A paragraph is a sequence of items:
	+---------+-----------------------------------------------+
	| box     | a word; fixed width, never a breakpoint       |
	| glue    | elastic space; breakpoint when after a box    |
	| penalty | explicit break candidate, e.g. a hyphen point |
	+---------+-----------------------------------------------+
	'items' lists the itemization of the current text.
	`)
	case "flow", "ratios", "breaking":
		pterm.Info.Println("Breaking")
		pterm.Println(`
	'flow' breaks the current text into justified lines and renders
	them in terminal cells.
	'ratios' prints one row per line with the adjustment ratio (how far
	the line's glue stretches or shrinks) and its fitness class.
	`)
	case "options", "option", "dhp", "adjpen", "maxratio":
		pterm.Info.Println("Options")
		pterm.Println(`
	width:65        constant column width (cells)
	width:30,60     narrow first line, wide rest
	hyphens:on      allow breaking compound words at their dashes
	maxratio:2      hard cap on the adjustment ratio (error if exceeded)
	dhp:200         penalty for consecutive hyphenated line endings
	adjpen:100      penalty for adjacent lines of clashing fitness
	maxratio, dhp and adjpen without argument reset to their default;
	width and hyphens need an argument.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	text <words>    set the paragraph text ('text' alone prints it)
	flow            break and render the paragraph
	ratios          per-line adjustment ratios and fitness classes
	items           list the item sequence
	width, hyphens, maxratio, dhp, adjpen    settings (try 'help:options')
	quit            leave (or <ctrl>D)
	`)
	}
}
