package ridethebus

// Stage is the phase a betting round is currently in
type Stage string

// Stage constants
const (
	// StageStart is before the first round has begun
	StageStart Stage = "start"

	// StageBetting means we are waiting on the player to stake a bet
	StageBetting Stage = "betting"

	// StageGuessColor is the first guess: red or black
	StageGuessColor Stage = "guess-color"

	// StageGuessHigherLower is the second guess: higher or lower than the previous card
	StageGuessHigherLower Stage = "guess-higher-lower"

	// StageGuessInsideOutside is the third guess: inside or outside the first two cards
	StageGuessInsideOutside Stage = "guess-inside-outside"

	// StageGuessSuit is the final guess: the exact suit
	StageGuessSuit Stage = "guess-suit"

	// StageRoundWon means all four guesses were correct and the winnings were banked
	StageRoundWon Stage = "round-won"

	// StageRoundOver means the round was lost
	StageRoundOver Stage = "round-over"

	// StageBankrupt means the round was lost and the balance hit zero
	StageBankrupt Stage = "bankrupt"
)

// IsGuessStage returns true if the stage expects a guess command
func (s Stage) IsGuessStage() bool {
	switch s {
	case StageGuessColor, StageGuessHigherLower, StageGuessInsideOutside, StageGuessSuit:
		return true
	}

	return false
}
