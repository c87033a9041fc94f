package linebreak

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type PositionTestEnviron struct {
	suite.Suite
	items       []Item
	shape       ParShape
	breakpoints []int
}

// listen for 'go test' command --> run test methods
func TestPositionFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "parbreak.linebreak")
	defer teardown()
	suite.Run(t, new(PositionTestEnviron))
}

// run once, before test suite methods
func (env *PositionTestEnviron) SetupSuite() {
	env.items = hyphenatedWords()
	env.shape = RectangularShape(65)
	breakpoints, err := BreakLines(env.items, env.shape, Options{})
	env.Require().NoError(err)
	env.breakpoints = breakpoints
}

// --- Tests -----------------------------------------------------------------

func (env *PositionTestEnviron) TestPositionBoxesAndHyphens() {
	positioned := PositionItems(env.items, env.shape, env.breakpoints, false)
	env.Require().Len(positioned, 9)

	expect := []PositionedItem{
		{Index: 0, Line: 0, XOffset: 0, Width: 15},
		{Index: 2, Line: 0, XOffset: 20, Width: 15},
		{Index: 4, Line: 0, XOffset: 40, Width: 20},
		{Index: 5, Line: 0, XOffset: 60, Width: 5}, // hyphen mark
		{Index: 6, Line: 1, XOffset: 0, Width: 20},
		{Index: 8, Line: 1, XOffset: 22.5, Width: 15},
		{Index: 10, Line: 1, XOffset: 40, Width: 20},
		{Index: 11, Line: 1, XOffset: 60, Width: 5}, // hyphen mark
		{Index: 12, Line: 2, XOffset: 0, Width: 20},
	}
	for i, want := range expect {
		env.Equal(want.Index, positioned[i].Index, "record %d", i)
		env.Equal(want.Line, positioned[i].Line, "record %d", i)
		env.InDelta(want.XOffset, positioned[i].XOffset, 1e-9, "record %d", i)
		env.InDelta(want.Width, positioned[i].Width, 1e-9, "record %d", i)
	}
}

func (env *PositionTestEnviron) TestPositionGlueRecords() {
	positioned := PositionItems(env.items, env.shape, env.breakpoints, true)
	env.Require().Len(positioned, 14)

	// every feasible line fills its target width exactly
	lineWidths := map[int]float64{}
	for _, p := range positioned {
		lineWidths[p.Line] += p.Width
	}
	for line := 0; line < 3; line++ {
		env.InDelta(65.0, lineWidths[line], 1e-9, "line %d", line)
	}
}

func (env *PositionTestEnviron) TestPositionIdempotence() {
	first := PositionItems(env.items, env.shape, env.breakpoints, true)
	second := PositionItems(env.items, env.shape, env.breakpoints, true)
	env.Equal(first, second)
}

func (env *PositionTestEnviron) TestPositionClampsOverfullLines() {
	// oversize box forces a fallback break; its line overruns the target
	// but shrinks no more than the available shrinkability
	items := []Item{Box(5), Glue(5, 10, 10), Box(100), Glue(5, 10, 10), ForcedBreak()}
	shape := RectangularShape(50)
	breakpoints, err := BreakLines(items, shape, Options{})
	env.Require().NoError(err)
	env.Require().Equal([]int{0, 3, 4}, breakpoints)

	positioned := PositionItems(items, shape, breakpoints, false)
	env.Require().Len(positioned, 2)
	env.Equal(0.0, positioned[0].XOffset)
	env.InDelta(5.0, positioned[0].Width, 1e-9)
	// glue shrinks by exactly its shrinkability (ratio clamped to -1)
	env.InDelta(0.0, positioned[1].XOffset, 1e-9)
	env.InDelta(100.0, positioned[1].Width, 1e-9)
}

func (env *PositionTestEnviron) TestPositionRigidUnderfullLine() {
	// a line whose glue cannot stretch keeps natural spacing
	items := []Item{Box(10), Glue(5, 0, 0), Box(10), ForcedBreak()}
	shape := RectangularShape(50)
	positioned := PositionItems(items, shape, []int{0, 3}, true)
	env.Require().Len(positioned, 3)
	env.InDelta(5.0, positioned[1].Width, 1e-9, "rigid glue stays at its natural width")
	env.InDelta(15.0, positioned[2].XOffset, 1e-9)
}
