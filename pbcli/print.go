package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/parbreak/linebreak"
	"github.com/pterm/pterm"
)

func flowOp(intp *Intp, op *Op) (error, bool) {
	p := intp.paragraph()
	breakpoints, err := linebreak.BreakLines(p.Items, intp.shape(), intp.opts)
	if err != nil {
		return err, false
	}
	printJustified(intp, p.Items, p.Text, breakpoints)
	return nil, false
}

// printJustified renders the broken paragraph in terminal cells, rounding
// glue gaps to whole columns. A ruler line shows the target width.
func printJustified(intp *Intp, items []linebreak.Item, text []string, breakpoints []int) {
	positioned := linebreak.PositionItems(items, intp.shape(), breakpoints, false)
	lines := map[int]*strings.Builder{}
	for _, pos := range positioned {
		sb, ok := lines[pos.Line]
		if !ok {
			sb = &strings.Builder{}
			lines[pos.Line] = sb
		}
		for int(math.Round(intp.measure(sb.String()))) < int(math.Round(pos.XOffset)) {
			sb.WriteByte(' ')
		}
		sb.WriteString(text[pos.Index])
	}
	pterm.Println(strings.Repeat("-", int(math.Round(intp.shape().LineLength(0)))))
	for line := 0; line+1 < len(breakpoints); line++ {
		if sb, ok := lines[line]; ok {
			pterm.Println(sb.String())
		} else {
			pterm.Println()
		}
	}
	pterm.Println(strings.Repeat("-", int(math.Round(intp.shape().LineLength(0)))))
}

func ratiosOp(intp *Intp, op *Op) (error, bool) {
	p := intp.paragraph()
	shape := intp.shape()
	breakpoints, err := linebreak.BreakLines(p.Items, shape, intp.opts)
	if err != nil {
		return err, false
	}
	ratios := linebreak.AdjustmentRatios(p.Items, shape, breakpoints)
	lineText := p.LineText(breakpoints)
	data := [][]string{
		{"Line", "Ratio", "Fitness", "Text"},
	}
	for i, r := range ratios {
		data = append(data, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.4f", r),
			fitnessName(r),
			lineText[i],
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
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

func itemsOp(intp *Intp, op *Op) (error, bool) {
	p := intp.paragraph()
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
	return nil, false
}
