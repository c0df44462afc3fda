package game

import "errors"

var (
	// ErrInvalidTimeLimit is returned by Start for a negative time limit
	ErrInvalidTimeLimit = errors.New("time limit must be zero (unlimited) or positive")

	// ErrUnknownLane is returned for a lane name other than left, center or right
	ErrUnknownLane = errors.New("unknown lane")

	// ErrInvalidCatalog is returned when a category table fails validation
	ErrInvalidCatalog = errors.New("invalid category catalog")

	// ErrNilScheduler is returned by New without a scheduler
	ErrNilScheduler = errors.New("scheduler is required")
)
