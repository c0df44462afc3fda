package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fruit-catcher/game"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbLaneGuide  = tcell.NewRGBColor(50, 50, 60)    // Dim lane separators
	RgbBasket     = tcell.NewRGBColor(205, 133, 63)  // Wicker brown
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbHelpText   = tcell.NewRGBColor(140, 140, 140) // Gray

	RgbApple   = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbOrange  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbBomb    = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbUnknown = tcell.NewRGBColor(100, 150, 255) // Blue for custom categories

	RgbEndBombBg  = tcell.NewRGBColor(200, 50, 50)   // Red banner
	RgbEndTimeBg  = tcell.NewRGBColor(135, 206, 250) // Light sky blue banner
	RgbEndOtherBg = tcell.NewRGBColor(128, 0, 128)   // Dark purple banner
)

// glyph is the visual for one category
type glyph struct {
	r     rune
	color tcell.Color
}

var glyphs = map[game.Category]glyph{
	game.CategoryApple:  {'●', RgbApple},
	game.CategoryOrange: {'●', RgbOrange},
	game.CategoryBomb:   {'✹', RgbBomb},
}

// GlyphFor returns the rune and style used to draw category
func GlyphFor(c game.Category) (rune, tcell.Style) {
	g, ok := glyphs[c]
	if !ok {
		g = glyph{'◆', RgbUnknown}
	}
	return g.r, tcell.StyleDefault.Foreground(g.color).Background(RgbBackground)
}

// EndBannerColor returns the banner background for reason
func EndBannerColor(reason game.EndReason) tcell.Color {
	switch reason {
	case game.ReasonBombHit:
		return RgbEndBombBg
	case game.ReasonTimeExpired:
		return RgbEndTimeBg
	default:
		return RgbEndOtherBg
	}
}
