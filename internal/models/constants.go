package models

// Difficulty bounds shown in prompts. The data layer stores whatever it is given.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// HoursScale is the number of decimal places kept for hours and costs
const HoursScale = 2
