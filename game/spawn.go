package game

import (
	"time"

	"github.com/lixenwraith/fruit-catcher/parameter"
)

// SpawnInterval returns the delay between spawns at level
// Non-increasing in level, floored at parameter.SpawnIntervalMin
func SpawnInterval(level int) time.Duration {
	d := parameter.SpawnIntervalBase - time.Duration(level)*parameter.SpawnIntervalStep
	if d < parameter.SpawnIntervalMin {
		return parameter.SpawnIntervalMin
	}
	return d
}

// spawnLoop spawns one item and reschedules itself while game gen is live
func (e *Engine) spawnLoop(gen uint64) {
	if !e.live(gen) {
		return
	}

	delay := SpawnInterval(e.state.level)
	e.spawn()

	e.spawnTimer = e.sched.AfterFunc(delay, func() {
		e.spawnLoop(gen)
	})
}

// spawn appends a new item above the play area
func (e *Engine) spawn() {
	lane := Lane(e.rng.Intn(parameter.LaneCount))
	def := e.catalog.Pick(e.rng.Float64(), e.state.level)

	e.nextID++
	e.state.items = append(e.state.items, Item{
		ID:       e.nextID,
		Category: def.Category,
		Score:    def.BaseScore,
		Speed:    def.BaseSpeed + float64(e.state.level)*parameter.LevelSpeedBonus,
		Lane:     lane,
		Y:        parameter.SpawnY,
		Hazard:   def.Hazard,
	})
	e.metrics.spawned.Add(1)
}
