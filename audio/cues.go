package audio

import "github.com/lixenwraith/fruit-catcher/game"

// Player is the cue surface driven by engine hooks
type Player interface {
	PlayCatch(category game.Category)
	PlayBomb()
	PlayLevelUp()
	PlayTimeUp()
}

// Cues wraps next so engine events also trigger sounds on p
// The returned hooks run on the scheduler thread like the engine's own
func Cues(p Player, next game.Hooks) game.Hooks {
	level := 1

	return game.Hooks{
		OnCollect: func(it game.Item) {
			// Hazards get their own cue when the game ends
			if !it.Hazard {
				p.PlayCatch(it.Category)
			}
			if next.OnCollect != nil {
				next.OnCollect(it)
			}
		},
		OnScoreChange: func(score, lvl int) {
			if lvl > level {
				p.PlayLevelUp()
			}
			level = lvl
			if next.OnScoreChange != nil {
				next.OnScoreChange(score, lvl)
			}
		},
		OnGameEnd: func(end game.GameEnd) {
			level = 1
			switch end.Reason {
			case game.ReasonBombHit:
				p.PlayBomb()
			case game.ReasonTimeExpired:
				p.PlayTimeUp()
			}
			if next.OnGameEnd != nil {
				next.OnGameEnd(end)
			}
		},
		OnStateUpdate: next.OnStateUpdate,
	}
}
