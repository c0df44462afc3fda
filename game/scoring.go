package game

import "github.com/lixenwraith/fruit-catcher/parameter"

// LevelForScore returns floor(score/PointsPerLevel)+1
func LevelForScore(score int) int {
	if score < 0 {
		score = 0
	}
	return score/parameter.PointsPerLevel + 1
}

// collect applies a caught item; hazards end the game with score unchanged
func (e *Engine) collect(it Item) {
	if e.hooks.OnCollect != nil {
		e.hooks.OnCollect(it)
	}

	def, ok := e.catalog.Def(it.Category)
	if ok && def.Hazard {
		e.metrics.bombs.Add(1)
		e.stop(ReasonBombHit)
		return
	}

	e.metrics.caught.Add(1)
	e.state.score += it.Score
	if lvl := LevelForScore(e.state.score); lvl > e.state.level {
		e.state.level = lvl
		e.logger.Printf("game %d level %d at score %d", e.generation, lvl, e.state.score)
	}
	e.metrics.score.Store(int64(e.state.score))
	e.metrics.level.Store(int64(e.state.level))

	if e.hooks.OnScoreChange != nil {
		e.hooks.OnScoreChange(e.state.score, e.state.level)
	}
}
