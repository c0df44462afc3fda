package game

import (
	"sync/atomic"

	"github.com/lixenwraith/fruit-catcher/status"
)

// metrics caches registry pointers so loops write atomics without lookups
type metrics struct {
	started *atomic.Int64
	spawned *atomic.Int64
	caught  *atomic.Int64
	missed  *atomic.Int64
	bombs   *atomic.Int64
	ticks   *atomic.Int64
	score   *atomic.Int64
	level   *atomic.Int64
	lastEnd *status.AtomicString
}

func newMetrics(reg *status.Registry) *metrics {
	return &metrics{
		started: reg.Ints.Get("game.started"),
		spawned: reg.Ints.Get("game.spawned"),
		caught:  reg.Ints.Get("game.caught"),
		missed:  reg.Ints.Get("game.missed"),
		bombs:   reg.Ints.Get("game.bombs"),
		ticks:   reg.Ints.Get("game.ticks"),
		score:   reg.Ints.Get("game.score"),
		level:   reg.Ints.Get("game.level"),
		lastEnd: reg.Strings.Get("game.last_end"),
	}
}

// newSharedMetrics records counters into a registry shared by many engines
// Per-game gauges stay private since one value cannot describe several games
func newSharedMetrics(reg *status.Registry) *metrics {
	m := newMetrics(reg)
	own := status.NewRegistry()
	m.score = own.Ints.Get("game.score")
	m.level = own.Ints.Get("game.level")
	return m
}
