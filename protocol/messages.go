package protocol

// Start requests a new game
type Start struct {
	TimeLimit int `json:"timeLimit" msgpack:"timeLimit"`
}

// Stop ends the current game
type Stop struct{}

// Lane moves the basket by lane name
type Lane struct {
	Lane string `json:"lane" msgpack:"lane"`
}

// Pose carries a normalized body x coordinate from the client's pose detector
type Pose struct {
	X float64 `json:"x" msgpack:"x"`
}

// Welcome is the first frame sent on a new session
type Welcome struct {
	SessionID string `json:"sessionId" msgpack:"sessionId"`
	TickHz    int    `json:"tickHz" msgpack:"tickHz"`
	StateHz   int    `json:"stateHz" msgpack:"stateHz"`
	Codec     string `json:"codec" msgpack:"codec"`
}

// Score reports a scoring event
type Score struct {
	Score int `json:"score" msgpack:"score"`
	Level int `json:"level" msgpack:"level"`
}

// End reports the end of a game
type End struct {
	Score  int    `json:"score" msgpack:"score"`
	Level  int    `json:"level" msgpack:"level"`
	Reason string `json:"reason" msgpack:"reason"`
}

// Error reports a rejected client message
type Error struct {
	Message string `json:"message" msgpack:"message"`
}
