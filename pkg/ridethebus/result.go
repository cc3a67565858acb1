package ridethebus

import "ridethebus-server/pkg/deck"

// GuessResult is the outcome of a single guess
type GuessResult struct {
	// Card is the card dealt for the guess
	Card *deck.Card `json:"card"`

	// Correct is true if the guess was right
	Correct bool `json:"correct"`

	// Stage is the stage the guess was made in
	Stage Stage `json:"stage"`

	// Multiplier is the payout multiplier applied on a correct guess
	Multiplier int `json:"multiplier"`

	// Winnings is the pending payout recorded by a correct guess
	Winnings int `json:"winnings"`
}
