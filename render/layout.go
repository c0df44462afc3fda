package render

import (
	"github.com/lixenwraith/fruit-catcher/game"
	"github.com/lixenwraith/fruit-catcher/parameter"
)

// Layout maps play-area units to screen cells
// Row 0 is the status bar and the last row is the help line
type Layout struct {
	Width  int
	Height int
}

// PlayRows returns the number of rows available to the play area
func (l Layout) PlayRows() int {
	return max(l.Height-2, 1)
}

// Row maps a vertical position to a screen row
// Positions above the area or past its bottom are not visible
func (l Layout) Row(y float64) (int, bool) {
	if y < 0 || y > parameter.PlayAreaHeight {
		return 0, false
	}
	row := int(y / parameter.PlayAreaHeight * float64(l.PlayRows()))
	if row >= l.PlayRows() {
		row = l.PlayRows() - 1
	}
	return row + 1, true
}

// LaneWidth returns the column span of one lane
func (l Layout) LaneWidth() int {
	return max(l.Width/parameter.LaneCount, 1)
}

// LaneX returns the leftmost column of lane
func (l Layout) LaneX(lane game.Lane) int {
	return int(lane) * l.LaneWidth()
}

// LaneCenter returns the middle column of lane
func (l Layout) LaneCenter(lane game.Lane) int {
	return l.LaneX(lane) + l.LaneWidth()/2
}

// BasketRow returns the screen row of the basket
func (l Layout) BasketRow() int {
	row, _ := l.Row(parameter.BasketRow)
	return row
}
