package parameter

import "time"

// Play Area
const (
	// PlayAreaHeight is the vertical extent of the play area; items below it escaped
	PlayAreaHeight = 600.0

	// BasketRow is the vertical position of the basket
	BasketRow = 500.0

	// HitRange is the half-height of the band around BasketRow where items are caught
	HitRange = 30.0

	// SpawnY is the starting position of new items, above the visible area
	SpawnY = -50.0

	// LaneCount is the number of lanes items fall through
	LaneCount = 3
)

// Spawn Timing
const (
	// SpawnIntervalBase is the spawn delay before level reduction
	SpawnIntervalBase = 3000 * time.Millisecond

	// SpawnIntervalStep is subtracted from the spawn delay per level
	SpawnIntervalStep = 400 * time.Millisecond

	// SpawnIntervalMin is the floor for the spawn delay
	SpawnIntervalMin = 800 * time.Millisecond

	// LevelSpeedBonus is added to an item's base speed per level
	LevelSpeedBonus = 0.5
)

// Scoring
const (
	// PointsPerLevel is the score span of one level
	PointsPerLevel = 500

	// ProbabilityEpsilon is the tolerance for the category probability sum
	ProbabilityEpsilon = 1e-9
)

// Clocks
const (
	// CountdownInterval is the period of the remaining-time countdown
	CountdownInterval = 1 * time.Second

	// FrameInterval is the physics cadence, standing in for display refresh (~60Hz)
	FrameInterval = 16 * time.Millisecond

	// DefaultTimeLimit is the host default round length in seconds
	DefaultTimeLimit = 60
)

// Bridge
const (
	// BroadcastHz caps state frames sent to a websocket client per second
	BroadcastHz = 20

	// TickHz is the nominal physics rate advertised to clients
	TickHz = int(time.Second / FrameInterval)
)
