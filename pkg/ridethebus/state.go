package ridethebus

import "ridethebus-server/pkg/deck"

// State is the renderer-facing snapshot of the game.
// The renderer carries no game logic of its own; it draws whatever this
// snapshot reports.
type State struct {
	Stage           Stage        `json:"stage"`
	DealtCards      []*deck.Card `json:"dealtCards"`
	CardsRevealed   int          `json:"cardsRevealed"`
	Balance         int          `json:"balance"`
	CurrentBet      int          `json:"currentBet"`
	DefaultBet      int          `json:"defaultBet"`
	PendingWinnings int          `json:"pendingWinnings"`
	HighScore       int          `json:"highScore"`
	CardsRemaining  int          `json:"cardsRemaining"`
	DeckHash        string       `json:"deckHash"`
	Payouts         Payouts      `json:"payouts"`
}

// State returns the current state of the game
func (g *Game) State() *State {
	return &State{
		Stage:           g.stage,
		DealtCards:      g.DealtCards(),
		CardsRevealed:   g.CardsRevealed(),
		Balance:         g.player.Balance(),
		CurrentBet:      g.player.CurrentBet(),
		DefaultBet:      g.player.DefaultBet(),
		PendingWinnings: g.player.PendingWinnings(),
		HighScore:       g.player.HighScore(),
		CardsRemaining:  g.deck.CardsLeft(),
		DeckHash:        g.deck.HashCode(),
		Payouts:         g.payouts,
	}
}
