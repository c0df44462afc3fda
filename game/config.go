package game

import "fmt"

// Config holds the per-game options accepted by Start
type Config struct {
	// TimeLimit is the round length in seconds, 0 means unlimited
	TimeLimit int `json:"timeLimit" msgpack:"timeLimit"`
}

// Validate rejects negative time limits
func (c Config) Validate() error {
	if c.TimeLimit < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTimeLimit, c.TimeLimit)
	}
	return nil
}
