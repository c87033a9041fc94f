package parbreak

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-text/typesetting/segmenter"
	"github.com/npillmayer/parbreak/linebreak"
)

// ItemsFromText itemizes text along UAX#14 line-break boundaries instead
// of plain whitespace. Break opportunities without a space (after an
// explicit hyphen, between CJK ideographs, after a slash, …) become
// zero-width penalties, mandatory breaks (newlines) terminate the
// current paragraph unit with a forced break. Words are not hyphenated —
// combine with a [Hyphenate] via [ItemsFromString] if dictionary
// hyphenation is wanted.
func ItemsFromText(text string, measure Measure) *Paragraph {
	p := &Paragraph{}
	spaceWidth := measure(" ")
	spaceGlue := linebreak.Glue(spaceWidth, 1.5*spaceWidth, max(0, spaceWidth-2))

	var seg segmenter.Segmenter
	seg.Init([]rune(text))
	iter := seg.LineIterator()
	for iter.Next() {
		segment := iter.Line()
		fragment := string(segment.Text)
		word := strings.TrimRightFunc(fragment, unicode.IsSpace)
		if word != "" {
			p.append(linebreak.Box(measure(word)), word)
		}
		switch {
		case segment.IsMandatoryBreak:
			p.terminate()
		case len(word) < len(fragment):
			p.append(spaceGlue, " ")
		case word != "":
			// a bare break opportunity; ending a line after a visible
			// hyphen counts as a hyphenated line
			cost, flagged := 0.0, false
			if r, _ := utf8.DecodeLastRuneInString(word); r == '-' {
				cost, flagged = hyphenCost, true
			}
			p.append(linebreak.Penalty(0, cost, flagged), "")
		}
	}
	if n := len(p.Items); n == 0 || !isForced(p.Items[n-1]) {
		p.terminate()
	}
	tracer().Debugf("itemized text into %d items along UAX#14 boundaries", len(p.Items))
	return p
}

func isForced(it linebreak.Item) bool {
	return it.Type == linebreak.PenaltyType && it.Cost <= linebreak.MinCost
}
