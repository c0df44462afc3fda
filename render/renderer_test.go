package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruit-catcher/game"
	"github.com/lixenwraith/fruit-catcher/parameter"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestLayoutRow(t *testing.T) {
	l := Layout{Width: 30, Height: 22} // 20 play rows

	if _, ok := l.Row(parameter.SpawnY); ok {
		t.Error("Expected spawn position above the visible area")
	}
	if _, ok := l.Row(parameter.PlayAreaHeight + 1); ok {
		t.Error("Expected escaped position to be hidden")
	}

	row, ok := l.Row(0)
	if !ok || row != 1 {
		t.Errorf("Expected top of area on row 1, got %d", row)
	}
	row, _ = l.Row(parameter.PlayAreaHeight)
	if row != 20 {
		t.Errorf("Expected bottom of area on row 20, got %d", row)
	}
	if l.BasketRow() != 17 {
		t.Errorf("Expected basket on row 17, got %d", l.BasketRow())
	}
}

func TestLayoutLanes(t *testing.T) {
	l := Layout{Width: 30, Height: 10}
	if l.LaneX(game.LaneLeft) != 0 || l.LaneX(game.LaneCenter) != 10 || l.LaneX(game.LaneRight) != 20 {
		t.Error("Expected lanes at columns 0, 10, 20")
	}
	if l.LaneCenter(game.LaneRight) != 25 {
		t.Errorf("Expected right lane center at 25, got %d", l.LaneCenter(game.LaneRight))
	}
}

func TestRendererDrawsItemsAndBasket(t *testing.T) {
	screen := newSimScreen(t, 30, 22)
	r := NewRenderer(screen)

	snap := game.Snapshot{
		BasketLane:    game.LaneRight,
		RemainingTime: 42,
		Score:         350,
		Level:         1,
		Active:        true,
		Items: []game.Item{
			{ID: 1, Category: game.CategoryApple, Lane: game.LaneLeft, Y: 300},
			{ID: 2, Category: game.CategoryBomb, Lane: game.LaneCenter, Y: 0},
			{ID: 3, Category: game.CategoryOrange, Lane: game.LaneCenter, Y: -50},
		},
	}
	r.Draw(snap)

	l := r.Layout()
	appleRow, _ := l.Row(300)
	if got := cellAt(screen, l.LaneCenter(game.LaneLeft), appleRow); got != '●' {
		t.Errorf("Expected apple glyph, got %q", got)
	}
	if got := cellAt(screen, l.LaneCenter(game.LaneCenter), 1); got != '✹' {
		t.Errorf("Expected bomb glyph on first play row, got %q", got)
	}

	basket := []rune(rowText(screen, l.BasketRow()))
	right := string(basket[20:])
	if !strings.Contains(right, "\\") || !strings.Contains(right, "/") {
		t.Errorf("Expected basket in right lane, got %q", string(basket))
	}
	if strings.Contains(string(basket[:20]), "_") {
		t.Errorf("Basket drawn outside its lane: %q", string(basket))
	}

	status := rowText(screen, 0)
	if !strings.Contains(status, "SCORE 350") || !strings.Contains(status, "TIME 42s") {
		t.Errorf("Unexpected status bar %q", status)
	}
}

func TestRendererUnlimitedAndMuted(t *testing.T) {
	screen := newSimScreen(t, 60, 10)
	r := NewRenderer(screen)
	r.SetMuted(true)

	r.Draw(game.Snapshot{Unlimited: true, Level: 1, Active: true})

	status := rowText(screen, 0)
	if !strings.Contains(status, "TIME inf") || !strings.Contains(status, "[muted]") {
		t.Errorf("Unexpected status bar %q", status)
	}
}

func TestRendererEndBanner(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	r := NewRenderer(screen)

	r.DrawEnd(game.Snapshot{Score: 1200, Level: 3}, game.GameEnd{Score: 1200, Level: 3, Reason: game.ReasonBombHit})

	found := false
	for y := 0; y < 12; y++ {
		if strings.Contains(rowText(screen, y), "Score 1200  Level 3") {
			found = true
		}
	}
	if !found {
		t.Error("Expected final score in end banner")
	}
}

func TestRendererResize(t *testing.T) {
	screen := newSimScreen(t, 30, 10)
	r := NewRenderer(screen)

	screen.SetSize(90, 40)
	r.Resize()

	if r.Layout().Width != 90 || r.Layout().Height != 40 {
		t.Errorf("Expected 90x40 after resize, got %+v", r.Layout())
	}

	// Tiny screens must not panic
	screen.SetSize(2, 2)
	r.Resize()
	r.Draw(game.Snapshot{Items: []game.Item{{Category: "pear", Y: 100}}})
}

func TestEndTitle(t *testing.T) {
	if EndTitle(game.ReasonTimeExpired) != "TIME UP" {
		t.Error("Unexpected time-up title")
	}
	if !strings.Contains(EndTitle(game.ReasonBombHit), "bomb") {
		t.Error("Expected bomb title to mention the bomb")
	}
}
