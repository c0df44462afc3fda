package game

import "github.com/lixenwraith/fruit-catcher/parameter"

// countdown decrements the remaining time once per second until it expires
// Every decrement is published, including the final zero, before the game stops
func (e *Engine) countdown(gen uint64) {
	if !e.live(gen) {
		return
	}

	e.state.remaining--
	if e.state.remaining < 0 {
		e.state.remaining = 0
	}
	e.publish()
	if e.state.remaining == 0 {
		e.stop(ReasonTimeExpired)
		return
	}

	e.clockTimer = e.sched.AfterFunc(parameter.CountdownInterval, func() {
		e.countdown(gen)
	})
}
