package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/parbreak"
	"github.com/npillmayer/parbreak/linebreak"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runFlowCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := paragraphText(args["text"])
	shape := parseShape(flags["width"])
	opts := parseOptions(flags)
	measure := parbreak.TerminalMeasure()

	p := parbreak.ItemsFromString(text, measure, hyphenator(flags["hyphens"]))
	breakpoints, err := linebreak.BreakLines(p.Items, shape, opts)
	if err != nil {
		fatalf("%v", err)
	}
	printJustified(p, shape, breakpoints, measure)
}

// printJustified renders each line in terminal cells, rounding glue gaps
// to whole columns.
func printJustified(p *parbreak.Paragraph, shape linebreak.ParShape, breakpoints []int, measure parbreak.Measure) {
	positioned := linebreak.PositionItems(p.Items, shape, breakpoints, false)
	lines := make([]strings.Builder, len(breakpoints)-1)
	for _, pos := range positioned {
		sb := &lines[pos.Line]
		for int(math.Round(measure(sb.String()))) < int(math.Round(pos.XOffset)) {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Text[pos.Index])
	}
	for i := range lines {
		pterm.Println(lines[i].String())
	}
}

func runRatiosCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := paragraphText(args["text"])
	shape := parseShape(flags["width"])
	opts := parseOptions(flags)

	p := parbreak.ItemsFromString(text, parbreak.TerminalMeasure(), hyphenator(flags["hyphens"]))
	breakpoints, err := linebreak.BreakLines(p.Items, shape, opts)
	if err != nil {
		fatalf("%v", err)
	}
	ratios := linebreak.AdjustmentRatios(p.Items, shape, breakpoints)
	lineText := p.LineText(breakpoints)
	data := [][]string{
		{"Line", "Width", "Ratio", "Fitness", "Text"},
	}
	for i, r := range ratios {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%g", shape.LineLength(i)),
			fmt.Sprintf("%.4f", r),
			fitnessName(r),
			lineText[i],
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func fitnessName(r float64) string {
	switch {
	case r < -0.5:
		return "very tight"
	case r < 0.5:
		return "decent"
	case r < 1:
		return "loose"
	}
	return "very loose"
}

func runItemsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	text := paragraphText(args["text"])
	p := parbreak.ItemsFromString(text, parbreak.TerminalMeasure(), hyphenator(flags["hyphens"]))
	data := [][]string{
		{"Index", "Item", "Text"},
	}
	for i, it := range p.Items {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			it.String(),
			p.Text[i],
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
