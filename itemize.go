package parbreak

import (
	"strings"
	"unicode"

	"github.com/npillmayer/parbreak/linebreak"
)

// Hyphenate splits a word into breakable fragments. Returning the word
// unsplit (or a single fragment) means no break opportunity inside it.
// Dictionaries and pattern sets live with the caller; this package only
// defines the contract.
type Hyphenate func(word string) []string

// hyphenCost is the aesthetic cost of ending a line inside a word.
const hyphenCost = 10

// Paragraph is an itemized paragraph: the item sequence for the breaking
// core plus the text run behind each item, aligned by index. Boxes carry
// their word (or word fragment), penalties their break mark (usually a
// hyphen), glue a single space; the finishing glue and the forced break
// carry empty text.
type Paragraph struct {
	Items []linebreak.Item
	Text  []string
}

// ItemsFromString splits text on whitespace and turns it into a
// well-formed paragraph: one glue per whitespace run, one box per word —
// or, with a hyphenator, boxes per fragment interleaved with flagged
// hyphen penalties. The sequence is terminated by the customary
// finishing glue (zero width, stretch [linebreak.MaxCost]) and a forced
// break.
func ItemsFromString(text string, measure Measure, hyphenate Hyphenate) *Paragraph {
	p := &Paragraph{}
	spaceWidth := measure(" ")
	spaceGlue := linebreak.Glue(spaceWidth, 1.5*spaceWidth, max(0, spaceWidth-2))
	hyphenWidth := measure("-")

	runes := []rune(text)
	words := 0
	for i := 0; i < len(runes); {
		j := i
		if unicode.IsSpace(runes[i]) {
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				j++
			}
			p.append(spaceGlue, " ")
		} else {
			for j < len(runes) && !unicode.IsSpace(runes[j]) {
				j++
			}
			p.appendWord(string(runes[i:j]), measure, hyphenate, hyphenWidth)
			words++
		}
		i = j
	}
	p.terminate()
	tracer().Debugf("itemized %d words into %d items", words, len(p.Items))
	return p
}

func (p *Paragraph) append(it linebreak.Item, text string) {
	p.Items = append(p.Items, it)
	p.Text = append(p.Text, text)
}

func (p *Paragraph) appendWord(word string, measure Measure, hyphenate Hyphenate, hyphenWidth float64) {
	var fragments []string
	if hyphenate != nil {
		fragments = hyphenate(word)
	}
	if len(fragments) <= 1 {
		p.append(linebreak.Box(measure(word)), word)
		return
	}
	for i, fragment := range fragments {
		if i > 0 {
			p.append(linebreak.Penalty(hyphenWidth, hyphenCost, true), "-")
		}
		p.append(linebreak.Box(measure(fragment)), fragment)
	}
}

// terminate appends the finishing glue and forced break that end a
// well-formed paragraph.
func (p *Paragraph) terminate() {
	p.append(linebreak.Glue(0, linebreak.MaxCost, 0), "")
	p.append(linebreak.ForcedBreak(), "")
}

// LineText reconstructs the text of each line for the given breakpoints.
// Hyphen marks appear only where a flagged penalty break was actually
// taken; discarded glue at line edges leaves no trace.
func (p *Paragraph) LineText(breakpoints []int) []string {
	if len(breakpoints) < 2 {
		return nil
	}
	lines := make([]string, 0, len(breakpoints)-1)
	for line := 0; line+1 < len(breakpoints); line++ {
		start := breakpoints[line]
		if line > 0 {
			start++
		}
		end := breakpoints[line+1]
		var sb strings.Builder
		for i := start; i <= end; i++ {
			switch it := p.Items[i]; it.Type {
			case linebreak.BoxType:
				sb.WriteString(p.Text[i])
			case linebreak.GlueType:
				if i != start && i != end {
					sb.WriteString(p.Text[i])
				}
			case linebreak.PenaltyType:
				if i == end && it.Width > 0 {
					sb.WriteString(p.Text[i])
				}
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
