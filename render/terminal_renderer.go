package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruit-catcher/game"
)

const helpLine = "←/a/h left  ↓/s/j center  →/d/l right  r restart  m mute  q quit"

// Renderer draws engine snapshots onto a tcell screen
// Not safe for concurrent use; call from the goroutine that owns the screen
type Renderer struct {
	screen tcell.Screen
	layout Layout
	muted  bool
}

// NewRenderer creates a renderer sized to screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen size and repaints from scratch on next Draw
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.layout = Layout{Width: w, Height: h}
	r.screen.Sync()
}

// Layout returns the current geometry
func (r *Renderer) Layout() Layout {
	return r.layout
}

// SetMuted updates the mute indicator in the status bar
func (r *Renderer) SetMuted(muted bool) {
	r.muted = muted
}

// Draw renders a full frame for snap
func (r *Renderer) Draw(snap game.Snapshot) {
	r.paint(snap)
	r.screen.Show()
}

// DrawEnd renders the final frame with an end banner over it
func (r *Renderer) DrawEnd(snap game.Snapshot, end game.GameEnd) {
	r.paint(snap)
	r.drawBanner(end)
	r.screen.Show()
}

func (r *Renderer) paint(snap game.Snapshot) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(bg)
	r.screen.Clear()

	r.drawLaneGuides(bg)
	r.drawItems(snap.Items)
	r.drawBasket(snap.BasketLane)
	r.drawStatusBar(snap)
	r.drawText(0, r.layout.Height-1, tcell.StyleDefault.Foreground(RgbHelpText).Background(RgbBackground), helpLine)
}

func (r *Renderer) drawLaneGuides(bg tcell.Style) {
	style := bg.Foreground(RgbLaneGuide)
	for lane := game.LaneCenter; lane <= game.LaneRight; lane++ {
		x := r.layout.LaneX(lane)
		for row := 1; row <= r.layout.PlayRows(); row++ {
			r.screen.SetContent(x, row, '│', nil, style)
		}
	}
}

func (r *Renderer) drawItems(items []game.Item) {
	for _, it := range items {
		row, ok := r.layout.Row(it.Y)
		if !ok {
			continue
		}
		ch, style := GlyphFor(it.Category)
		r.screen.SetContent(r.layout.LaneCenter(it.Lane), row, ch, nil, style)
	}
}

func (r *Renderer) drawBasket(lane game.Lane) {
	style := tcell.StyleDefault.Foreground(RgbBasket).Background(RgbBackground)
	width := max(r.layout.LaneWidth()-2, 3)
	basket := "\\" + strings.Repeat("_", width-2) + "/"
	x := r.layout.LaneCenter(lane) - width/2
	r.drawText(x, r.layout.BasketRow(), style, basket)
}

func (r *Renderer) drawStatusBar(snap game.Snapshot) {
	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(RgbStatusBar)
	for x := 0; x < r.layout.Width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, style)
	}
	r.drawText(1, 0, style, StatusText(snap, r.muted))
}

func (r *Renderer) drawBanner(end game.GameEnd) {
	lines := []string{
		EndTitle(end.Reason),
		fmt.Sprintf("Score %d  Level %d", end.Score, end.Level),
		"r restart  q quit",
	}

	style := tcell.StyleDefault.Foreground(RgbStatusBar).Background(EndBannerColor(end.Reason)).Bold(true)
	top := r.layout.Height/2 - len(lines)/2
	for i, line := range lines {
		padded := " " + line + " "
		x := (r.layout.Width - len([]rune(padded))) / 2
		r.drawText(max(x, 0), top+i, style, padded)
	}
}

// drawText writes s from (x, y), clipped to the screen
func (r *Renderer) drawText(x, y int, style tcell.Style, s string) {
	if y < 0 || y >= r.layout.Height {
		return
	}
	for _, ch := range s {
		if x >= r.layout.Width {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
}

// StatusText formats the HUD line
func StatusText(snap game.Snapshot, muted bool) string {
	remaining := "inf"
	if !snap.Unlimited {
		remaining = fmt.Sprintf("%ds", snap.RemainingTime)
	}
	text := fmt.Sprintf("SCORE %d  LEVEL %d  TIME %s", snap.Score, snap.Level, remaining)
	if muted {
		text += "  [muted]"
	}
	return text
}

// EndTitle names the end reason for players
func EndTitle(reason game.EndReason) string {
	switch reason {
	case game.ReasonBombHit:
		return "BOOM! You caught a bomb"
	case game.ReasonTimeExpired:
		return "TIME UP"
	case game.ReasonRestarted:
		return "RESTARTED"
	default:
		return "GAME STOPPED"
	}
}
