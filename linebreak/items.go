package linebreak

import "fmt"

// ItemType discriminates the three kinds of typesetting items.
type ItemType int8

const (
	BoxType ItemType = iota
	GlueType
	PenaltyType
)

func (t ItemType) String() string {
	switch t {
	case BoxType:
		return "box"
	case GlueType:
		return "glue"
	case PenaltyType:
		return "penalty"
	}
	return fmt.Sprintf("ItemType(%d)", int(t))
}

// Cost sentinels and the lower bound for line adjustment.
//
// A penalty with Cost <= MinCost forces a break, one with Cost >= MaxCost
// forbids it. No line may shrink its glue by more than 1×, i.e. below an
// adjustment ratio of MinAdjustmentRatio.
const (
	MinCost            = -1000.0
	MaxCost            = 1000.0
	MinAdjustmentRatio = -1.0
)

// Item is one element of a paragraph: a box, a glue or a penalty.
//
// Boxes are opaque typeset units (usually words) of fixed width. Glue is
// elastic inter-box space with a preferred Width that may grow by up to
// Stretch (times the line's adjustment ratio) or give up as much as
// Shrink. Penalties are explicit break opportunities; Width is typeset
// only if the break is taken there (a hyphen mark, typically), and
// Flagged marks break points that are visually intrusive when stacked on
// consecutive lines.
//
// Stretch, Shrink apply to glue only, Cost and Flagged to penalties only;
// the remaining fields are zero for other item types.
type Item struct {
	Type    ItemType
	Width   float64
	Stretch float64
	Shrink  float64
	Cost    float64
	Flagged bool
}

// Box returns a box item of the given width.
func Box(width float64) Item {
	return Item{Type: BoxType, Width: width}
}

// Glue returns a glue item with preferred width and elasticity bounds.
func Glue(width, stretch, shrink float64) Item {
	return Item{Type: GlueType, Width: width, Stretch: stretch, Shrink: shrink}
}

// Penalty returns a penalty item. Width is the typeset width if a break
// is taken here; cost values at or beyond ±[MaxCost] force or forbid the
// break.
func Penalty(width, cost float64, flagged bool) Item {
	return Item{Type: PenaltyType, Width: width, Cost: cost, Flagged: flagged}
}

// ForcedBreak returns a penalty that unconditionally ends a line. A
// well-formed paragraph ends with Glue(0, MaxCost, 0) followed by a
// forced break; see the itemization helpers in the parent package.
func ForcedBreak() Item {
	return Penalty(0, MinCost, false)
}

func (it Item) String() string {
	switch it.Type {
	case BoxType:
		return fmt.Sprintf("box[w=%g]", it.Width)
	case GlueType:
		return fmt.Sprintf("glue[w=%g +%g -%g]", it.Width, it.Stretch, it.Shrink)
	case PenaltyType:
		return fmt.Sprintf("penalty[w=%g p=%g flagged=%v]", it.Width, it.Cost, it.Flagged)
	}
	return "<invalid item>"
}

// isForcedBreak is true for penalties which unconditionally end a line.
func (it Item) isForcedBreak() bool {
	return it.Type == PenaltyType && it.Cost <= MinCost
}
