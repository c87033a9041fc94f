package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/parbreak"
	"github.com/npillmayer/parbreak/linebreak"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("pb-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for exercising optimal-fit paragraph breaking.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("flow").
		SetDescription("Break a paragraph into justified lines and print them.").
		SetShortDescription("break a paragraph").
		AddArgument("text...", "paragraph text (variadic argument parts joined by comma by commando; '-' reads stdin)", "-").
		AddFlag("width,w", "column width(s) in cells, comma separated for per-line widths", commando.String, "60").
		AddFlag("hyphens,y", "break compound words at their dashes", commando.Bool, nil).
		AddFlag("maxratio,r", "hard cap on the adjustment ratio (0 = unbounded)", commando.String, "0").
		AddFlag("dhp", "penalty for consecutive hyphenated line endings", commando.String, "0").
		AddFlag("adjpen", "penalty for adjacent lines of clashing fitness", commando.String, "0").
		SetAction(runFlowCommand)

	commando.
		Register("ratios").
		SetDescription("Print per-line adjustment ratios and fitness classes for a paragraph.").
		SetShortDescription("per-line ratios").
		AddArgument("text...", "paragraph text (variadic argument parts joined by comma by commando; '-' reads stdin)", "-").
		AddFlag("width,w", "column width(s) in cells, comma separated for per-line widths", commando.String, "60").
		AddFlag("hyphens,y", "break compound words at their dashes", commando.Bool, nil).
		AddFlag("maxratio,r", "hard cap on the adjustment ratio (0 = unbounded)", commando.String, "0").
		AddFlag("dhp", "penalty for consecutive hyphenated line endings", commando.String, "0").
		AddFlag("adjpen", "penalty for adjacent lines of clashing fitness", commando.String, "0").
		SetAction(runRatiosCommand)

	commando.
		Register("items").
		SetDescription("Print the itemization (boxes, glue, penalties) of a paragraph.").
		SetShortDescription("itemize a paragraph").
		AddArgument("text...", "paragraph text (variadic argument parts joined by comma by commando; '-' reads stdin)", "-").
		AddFlag("hyphens,y", "break compound words at their dashes", commando.Bool, nil).
		SetAction(runItemsCommand)

	commando.Parse(nil)
}

// paragraphText resolves the text argument; commando joins variadic
// parts with commas, "-" or an empty argument reads stdin.
func paragraphText(arg commando.ArgValue) string {
	text := strings.ReplaceAll(arg.Value, ",", " ")
	if text = strings.TrimSpace(text); text != "" && text != "-" {
		return text
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalf("cannot read text from stdin: %v", err)
	}
	return strings.TrimSpace(string(b))
}

// parseShape parses the --width flag into a line-width oracle.
func parseShape(flag commando.FlagValue) linebreak.ParShape {
	spec := mustFlagString(flag, "width")
	var widths []float64
	for _, field := range strings.Split(spec, ",") {
		w, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil || w <= 0 {
			fatalf("not a usable width: %q", field)
		}
		widths = append(widths, w)
	}
	if len(widths) == 1 {
		return linebreak.RectangularShape(widths[0])
	}
	return linebreak.VariableShape(widths...)
}

// parseOptions collects the breaking options common to flow and ratios.
func parseOptions(flags map[string]commando.FlagValue) linebreak.Options {
	return linebreak.Options{
		MaxAdjustmentRatio:        mustFlagFloat(flags["maxratio"], "maxratio"),
		DoubleHyphenPenalty:       mustFlagFloat(flags["dhp"], "dhp"),
		AdjacentLooseTightPenalty: mustFlagFloat(flags["adjpen"], "adjpen"),
	}
}

// hyphenator returns the demo dash-splitting hyphenator if --hyphens is
// set, nil otherwise.
func hyphenator(flag commando.FlagValue) parbreak.Hyphenate {
	if !mustFlagBool(flag, "hyphens") {
		return nil
	}
	return func(word string) []string {
		return strings.Split(word, "-")
	}
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagFloat(flag commando.FlagValue, name string) float64 {
	v, err := strconv.ParseFloat(mustFlagString(flag, name), 64)
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return v
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "pb-tools: "+format+"\n", args...)
	os.Exit(1)
}
