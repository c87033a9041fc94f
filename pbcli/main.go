package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/parbreak"
	"github.com/npillmayer/parbreak/linebreak"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'parbreak.cli'
func tracer() tracing.Trace {
	return tracing.Select("parbreak.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"trace.parbreak.linebreak": "Info",
		"trace.parbreak.itemize":   "Info",
		"trace.parbreak.cli":       "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	width := flag.Float64("width", 60, "Column width in terminal cells")
	flag.Parse()
	pterm.Info.Println("Welcome to the paragraph-breaking CLI")
	//
	// set up REPL
	repl, err := readline.New("pb > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{
		repl:    repl,
		text:    sampleText,
		widths:  []float64{*width},
		measure: parbreak.TerminalMeasure(),
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		setTraceLevel(tracing.LevelDebug)
	case "Info":
		setTraceLevel(tracing.LevelInfo)
	case "Error":
		setTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

func setTraceLevel(level tracing.TraceLevel) {
	tracing.Select("parbreak.linebreak").SetTraceLevel(level)
	tracing.Select("parbreak.itemize").SetTraceLevel(level)
	tracer().SetTraceLevel(level)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// sampleText is the well-worn opening of Grimm's "The Frog King", the
// text of Knuth's original line-breaking examples.
const sampleText = "In olden times when wishing still helped one, there lived a " +
	"king whose daughters were all beautiful; and the youngest was so beautiful " +
	"that the sun itself, which has seen so much, was astonished whenever it " +
	"shone in her face."

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	text     string
	widths   []float64
	hyphens  bool
	opts     linebreak.Options
	measure  parbreak.Measure
}

func (intp *Intp) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("( width=%v hyphens=%v", intp.widths, intp.hyphens))
	if intp.opts.DoubleHyphenPenalty != 0 {
		sb.WriteString(fmt.Sprintf(" dhp=%g", intp.opts.DoubleHyphenPenalty))
	}
	if intp.opts.AdjacentLooseTightPenalty != 0 {
		sb.WriteString(fmt.Sprintf(" adjpen=%g", intp.opts.AdjacentLooseTightPenalty))
	}
	if intp.opts.MaxAdjustmentRatio != 0 {
		sb.WriteString(fmt.Sprintf(" maxratio=%g", intp.opts.MaxAdjustmentRatio))
	}
	sb.WriteString(fmt.Sprintf(" | %d chars of text )", len(intp.text)))
	return sb.String()
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(op)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	arg  string
}

const NOOP = -1
const (
	QUIT int = iota
	HELP
	TEXT
	WIDTH
	HYPHENS
	MAXRATIO
	DHP
	ADJPEN
	FLOW
	RATIOS
	ITEMS
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"text":     TEXT,
	"width":    WIDTH,
	"hyphens":  HYPHENS,
	"maxratio": MAXRATIO,
	"dhp":      DHP,
	"adjpen":   ADJPEN,
	"flow":     FLOW,
	"ratios":   RATIOS,
	"items":    ITEMS,
}

var opNames = []string{
	"quit",
	"help",
	"text",
	"width",
	"hyphens",
	"maxratio",
	"dhp",
	"adjpen",
	"flow",
	"ratios",
	"items",
}

func (intp *Intp) parseCommand(line string) (*Op, error) {
	word, rest, _ := strings.Cut(line, " ")
	c := strings.Split(word, ":") // e.g.  "width:65" or "hyphens:on" or "flow"
	code, ok := opMap[strings.ToLower(c[0])]
	if !ok {
		code = HELP
	}
	op := &Op{code: code}
	if len(c) > 1 {
		op.arg = c[1]
	}
	if code == TEXT {
		op.arg = strings.TrimSpace(rest)
	}
	tracer().Debugf("parsed command: %s", opNames[code])
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	TEXT:     textOp,
	WIDTH:    widthOp,
	HYPHENS:  hyphensOp,
	MAXRATIO: maxratioOp,
	DHP:      dhpOp,
	ADJPEN:   adjpenOp,
	FLOW:     flowOp,
	RATIOS:   ratiosOp,
	ITEMS:    itemsOp,
}

func (intp *Intp) execute(op *Op) (error, bool) {
	fn, ok := commandFn[op.code]
	if !ok {
		return fmt.Errorf("unknown command code %d", op.code), false
	}
	return fn(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func textOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		pterm.Println(intp.text)
		return nil, false
	}
	intp.text = op.arg
	return nil, false
}

func widthOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return fmt.Errorf("width needs an argument, e.g. width:65 or width:30,60"), false
	}
	var widths []float64
	for _, field := range strings.Split(op.arg, ",") {
		w, err := strconv.ParseFloat(field, 64)
		if err != nil || w <= 0 {
			return fmt.Errorf("not a usable width: %q", field), false
		}
		widths = append(widths, w)
	}
	intp.widths = widths
	return nil, false
}

func hyphensOp(intp *Intp, op *Op) (error, bool) {
	switch strings.ToLower(op.arg) {
	case "on", "true", "1":
		intp.hyphens = true
	case "off", "false", "0":
		intp.hyphens = false
	default:
		return fmt.Errorf("hyphens:on or hyphens:off"), false
	}
	return nil, false
}

func maxratioOp(intp *Intp, op *Op) (error, bool) {
	return intp.setOption(&intp.opts.MaxAdjustmentRatio, op)
}

func dhpOp(intp *Intp, op *Op) (error, bool) {
	return intp.setOption(&intp.opts.DoubleHyphenPenalty, op)
}

func adjpenOp(intp *Intp, op *Op) (error, bool) {
	return intp.setOption(&intp.opts.AdjacentLooseTightPenalty, op)
}

func (intp *Intp) setOption(target *float64, op *Op) (error, bool) {
	if op.arg == "" {
		*target = 0
		return nil, false
	}
	v, err := strconv.ParseFloat(op.arg, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", op.arg), false
	}
	*target = v
	return nil, false
}

// shape returns the current line-width oracle.
func (intp *Intp) shape() linebreak.ParShape {
	if len(intp.widths) == 1 {
		return linebreak.RectangularShape(intp.widths[0])
	}
	return linebreak.VariableShape(intp.widths...)
}

// paragraph itemizes the current text with the current settings.
func (intp *Intp) paragraph() *parbreak.Paragraph {
	var hyphenate parbreak.Hyphenate
	if intp.hyphens {
		hyphenate = dashHyphenator
	}
	return parbreak.ItemsFromString(intp.text, intp.measure, hyphenate)
}

// dashHyphenator splits compound words at explicit dashes. Dictionary
// hyphenation is out of scope for a demo CLI.
func dashHyphenator(word string) []string {
	return strings.Split(word, "-")
}
