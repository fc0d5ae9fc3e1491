package models

import "errors"

// Domain-specific errors shared by the service and console layers
var (
	// ErrDifficultyOutOfRange is returned by input parsing when a difficulty is outside 1-5
	ErrDifficultyOutOfRange = errors.New("difficulty must be between 1 and 5")

	// ErrNegativeHours is returned by input parsing for negative hour values
	ErrNegativeHours = errors.New("hours cannot be negative")
)
