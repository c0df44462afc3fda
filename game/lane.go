package game

import (
	"fmt"
	"strings"
)

// Lane is one of the three horizontal tracks
type Lane int

const (
	LaneLeft Lane = iota
	LaneCenter
	LaneRight
)

var laneNames = [...]string{"left", "center", "right"}

// String returns the symbolic lane name
func (l Lane) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return laneNames[l]
}

// Valid reports whether l is one of the three lanes
func (l Lane) Valid() bool {
	return l >= LaneLeft && l <= LaneRight
}

// ParseLane resolves a symbolic lane name, case-insensitive
func ParseLane(name string) (Lane, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return LaneLeft, nil
	case "center", "centre", "middle":
		return LaneCenter, nil
	case "right":
		return LaneRight, nil
	}
	return LaneCenter, fmt.Errorf("%w: %q", ErrUnknownLane, name)
}

// MarshalText encodes the lane by name
func (l Lane) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLane, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a lane name
func (l *Lane) UnmarshalText(text []byte) error {
	parsed, err := ParseLane(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
