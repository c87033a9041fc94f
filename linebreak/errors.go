package linebreak

import (
	"errors"
	"fmt"
)

// ErrMaxAdjustmentRatioExceeded is returned by [BreakLines] when the
// caller set a hard Options.MaxAdjustmentRatio and no breakpoint
// sequence stays within it. It is a recoverable signal: retry with
// hyphenation enabled or with a larger ratio.
var ErrMaxAdjustmentRatioExceeded = errors.New("linebreak: no breakpoints within maximum adjustment ratio")

// InvalidItemError reports a malformed input item: negative width, or
// glue with negative stretch or shrink. This is a programmer error and
// will not go away on retry.
type InvalidItemError struct {
	Index  int
	Item   Item
	Reason string
}

func (e *InvalidItemError) Error() string {
	return fmt.Sprintf("linebreak: invalid item at %d (%s): %s", e.Index, e.Item, e.Reason)
}

// validateItems rejects items the optimizer cannot handle.
func validateItems(items []Item) error {
	for i, it := range items {
		if it.Width < 0 {
			return &InvalidItemError{Index: i, Item: it, Reason: "negative width"}
		}
		if it.Type == GlueType && (it.Stretch < 0 || it.Shrink < 0) {
			return &InvalidItemError{Index: i, Item: it, Reason: "negative stretch or shrink"}
		}
	}
	return nil
}
