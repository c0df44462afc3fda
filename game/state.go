package game

// Item is a falling entity
type Item struct {
	ID       uint64   `json:"id" msgpack:"id"`
	Category Category `json:"category" msgpack:"category"`
	Score    int      `json:"score" msgpack:"score"`
	Speed    float64  `json:"speed" msgpack:"speed"`
	Lane     Lane     `json:"lane" msgpack:"lane"`
	Y        float64  `json:"y" msgpack:"y"`
	Hazard   bool     `json:"hazard,omitempty" msgpack:"hazard,omitempty"`
}

// Snapshot is the state published to renderers after every change
// Items is a private copy; the engine never touches it after publishing
type Snapshot struct {
	BasketLane    Lane   `json:"basketLane" msgpack:"basketLane"`
	Items         []Item `json:"items" msgpack:"items"`
	RemainingTime int    `json:"remainingTime" msgpack:"remainingTime"`
	Unlimited     bool   `json:"unlimited" msgpack:"unlimited"`
	Score         int    `json:"score" msgpack:"score"`
	Level         int    `json:"level" msgpack:"level"`
	Active        bool   `json:"active" msgpack:"active"`
}

// EndReason distinguishes how a game ended
type EndReason string

const (
	ReasonTimeExpired EndReason = "time_expired"
	ReasonBombHit     EndReason = "bomb_hit"
	ReasonStopped     EndReason = "stopped"
	ReasonRestarted   EndReason = "restarted"
)

// GameEnd is delivered once per game through Hooks.OnGameEnd
type GameEnd struct {
	Score  int       `json:"score" msgpack:"score"`
	Level  int       `json:"level" msgpack:"level"`
	Reason EndReason `json:"reason" msgpack:"reason"`
}

// Hooks are the outbound notifications, all invoked on the scheduler thread
// Nil hooks are skipped
type Hooks struct {
	OnScoreChange func(score, level int)
	OnGameEnd     func(end GameEnd)
	OnStateUpdate func(snap Snapshot)

	// OnCollect fires for every caught item, hazards included, before scoring
	OnCollect func(it Item)
}

// state is the mutable engine state, owned by the scheduler thread
type state struct {
	score     int
	level     int
	remaining int
	unlimited bool
	basket    Lane
	active    bool
	items     []Item
}

func (s *state) snapshot() Snapshot {
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return Snapshot{
		BasketLane:    s.basket,
		Items:         items,
		RemainingTime: s.remaining,
		Unlimited:     s.unlimited,
		Score:         s.score,
		Level:         s.level,
		Active:        s.active,
	}
}
