package parbreak

import (
	"errors"
	"math"

	"github.com/npillmayer/parbreak/linebreak"
)

// FlowText breaks a paragraph of text in up to two passes, spending
// hyphenation only when needed: the first pass runs without a hyphenator
// under a hard adjustment-ratio cap (the initial threshold), and only if
// that fails with [linebreak.ErrMaxAdjustmentRatioExceeded] is the text
// re-itemized with hyphenate and broken again under the caller's own
// options. It returns the paragraph that was finally used together with
// its breakpoints.
//
// With a nil hyphenate the second pass reuses the unhyphenated items and
// merely lifts the threshold cap.
func FlowText(text string, measure Measure, shape linebreak.ParShape, hyphenate Hyphenate, opts linebreak.Options) (*Paragraph, []int, error) {
	initial := opts.InitialMaxAdjustmentRatio
	if initial == 0 {
		initial = 1
	}
	strict := opts
	strict.MaxAdjustmentRatio = initial
	if opts.MaxAdjustmentRatio != 0 {
		strict.MaxAdjustmentRatio = math.Min(opts.MaxAdjustmentRatio, initial)
	}

	p := ItemsFromString(text, measure, nil)
	breakpoints, err := linebreak.BreakLines(p.Items, shape, strict)
	if err == nil {
		return p, breakpoints, nil
	}
	if !errors.Is(err, linebreak.ErrMaxAdjustmentRatioExceeded) {
		return nil, nil, err
	}

	tracer().Infof("paragraph needs ratios above %g, retrying with hyphenation", strict.MaxAdjustmentRatio)
	if hyphenate != nil {
		p = ItemsFromString(text, measure, hyphenate)
	}
	breakpoints, err = linebreak.BreakLines(p.Items, shape, opts)
	if err != nil {
		return nil, nil, err
	}
	return p, breakpoints, nil
}
