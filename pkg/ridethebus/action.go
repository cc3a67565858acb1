package ridethebus

import (
	"errors"
	"fmt"
	"ridethebus-server/pkg/deck"
	"ridethebus-server/pkg/playable"
)

// action constants for the client payload
const (
	ActionStartRound         = "startRound"
	ActionPlaceBet           = "placeBet"
	ActionGuessColor         = "guessColor"
	ActionGuessHigherLower   = "guessHigherLower"
	ActionGuessInsideOutside = "guessInsideOutside"
	ActionGuessSuit          = "guessSuit"
	ActionCollectWinnings    = "collectWinnings"
)

// Action performs a command from the client payload.
// If updateState is true, the caller should push the new state to connected
// clients and persist the wallet.
func (g *Game) Action(message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	switch message.Action {
	case ActionStartRound:
		if err := g.StartRound(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case ActionPlaceBet:
		amount, ok := message.AdditionalData.GetInt("amount")
		if !ok {
			return nil, false, errors.New("amount is required")
		}

		if err := g.PlaceBet(amount); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	case ActionGuessColor:
		color, ok := message.AdditionalData.GetString("color")
		if !ok {
			return nil, false, errors.New("color is required")
		}

		result, err := g.GuessColor(deck.Color(color))
		if err != nil {
			return nil, false, err
		}

		return guessResponse(result, message.Context), true, nil
	case ActionGuessHigherLower:
		higher, ok := message.AdditionalData.GetBool("higher")
		if !ok {
			return nil, false, errors.New("higher is required")
		}

		result, err := g.GuessHigherLower(higher)
		if err != nil {
			return nil, false, err
		}

		return guessResponse(result, message.Context), true, nil
	case ActionGuessInsideOutside:
		inside, ok := message.AdditionalData.GetBool("inside")
		if !ok {
			return nil, false, errors.New("inside is required")
		}

		result, err := g.GuessInsideOutside(inside)
		if err != nil {
			return nil, false, err
		}

		return guessResponse(result, message.Context), true, nil
	case ActionGuessSuit:
		suit, ok := message.AdditionalData.GetString("suit")
		if !ok {
			return nil, false, errors.New("suit is required")
		}

		result, err := g.GuessSuit(suit)
		if err != nil {
			return nil, false, err
		}

		return guessResponse(result, message.Context), true, nil
	case ActionCollectWinnings:
		if err := g.CollectWinnings(); err != nil {
			return nil, false, err
		}

		return playable.OK(message.Context), true, nil
	}

	return nil, false, fmt.Errorf("unknown action: %s", message.Action)
}

func guessResponse(result *GuessResult, ctx string) *playable.Response {
	value := "incorrect"
	if result.Correct {
		value = "correct"
	}

	return &playable.Response{
		Key:     "guess",
		Value:   value,
		Data:    result,
		Context: ctx,
	}
}
