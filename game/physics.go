package game

import (
	"math"
	"slices"

	"github.com/lixenwraith/fruit-catcher/parameter"
)

// tick runs one physics step: move, cull escaped items, collect, publish
func (e *Engine) tick(gen uint64) {
	if !e.live(gen) {
		return
	}
	e.metrics.ticks.Add(1)

	kept := e.state.items[:0]
	var caught []Item
	for _, it := range e.state.items {
		it.Y += it.Speed
		if it.Y > parameter.PlayAreaHeight {
			e.metrics.missed.Add(1)
			continue
		}
		if it.Lane == e.state.basket && inHitBand(it.Y) {
			caught = append(caught, it)
			continue
		}
		kept = append(kept, it)
	}
	// Clear the tail so dropped items do not linger in the backing array
	clear(e.state.items[len(kept):])

	// Caught items stay in state until collected, so a hazard ending the game
	// mid-batch freezes the ones still waiting their turn
	n := len(kept)
	e.state.items = append(kept, caught...)
	for _, it := range caught {
		e.state.items = slices.Delete(e.state.items, n, n+1)
		e.collect(it)
		if !e.live(gen) {
			return
		}
	}

	e.publish()
	e.frameTimer = e.sched.NextFrame(func() {
		e.tick(gen)
	})
}

// inHitBand reports whether y lies strictly within HitRange of the basket row
func inHitBand(y float64) bool {
	return math.Abs(y-parameter.BasketRow) < parameter.HitRange
}
