package constants

import "time"

const (
	// QuestionsPerLevel is the number of questions asked in each level
	QuestionsPerLevel int = 10
	// MaxLevel is the last level of a session
	MaxLevel int = 4
	// StartingLives is the number of lives at the start of a session
	StartingLives int = 3
	// LevelClearedBonusLives is added to the lives when a level is cleared
	LevelClearedBonusLives int = 1

	// GameOverDelay lets the final incorrect feedback display before game over
	GameOverDelay time.Duration = 1200 * time.Millisecond
	// CelebrationDuration is how long the celebration stays on after a correct answer
	CelebrationDuration time.Duration = 3000 * time.Millisecond

	// MaxDivisionAttempts caps the rejection sampling of level 1 divisions.
	// A single draw is accepted with probability 89/100.
	MaxDivisionAttempts int = 1000
)

// Operators used in rendered problems
const (
	OperatorAdd      = "+"
	OperatorSubtract = "-"
	OperatorMultiply = "×"
	OperatorDivide   = "÷"
)
