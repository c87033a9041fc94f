package parbreak

import (
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

// Measure returns the typeset width of a piece of text in whatever unit
// the caller's line widths are expressed in. Itemizers call it for
// words, for a single space and for the hyphen mark.
type Measure func(text string) float64

// FixedMeasure measures every rune at the same width. Good enough for
// tests and for rough previews.
func FixedMeasure(unitsPerRune float64) Measure {
	return func(text string) float64 {
		return unitsPerRune * float64(utf8.RuneCountInString(text))
	}
}

// TerminalMeasure measures text in terminal cells, counting East Asian
// wide and fullwidth runes as two cells.
func TerminalMeasure() Measure {
	return func(text string) float64 {
		cells := 0.0
		for _, r := range text {
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				cells += 2
			default:
				cells++
			}
		}
		return cells
	}
}

// FaceMeasure measures text with the metrics of a font face, including
// kerning between adjacent glyphs. Units are pixels (fractional). Runes
// the face cannot map are skipped.
func FaceMeasure(face font.Face) Measure {
	return func(text string) float64 {
		var advance fixed.Int26_6
		prev := rune(-1)
		for _, r := range text {
			adv, ok := face.GlyphAdvance(r)
			if !ok {
				continue
			}
			if prev >= 0 {
				advance += face.Kern(prev, r)
			}
			advance += adv
			prev = r
		}
		return float64(advance) / 64
	}
}
