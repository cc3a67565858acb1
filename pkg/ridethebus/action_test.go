package ridethebus

import (
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"ridethebus-server/pkg/deck"
	"ridethebus-server/pkg/playable"
)

// payloadFromJSON round-trips through encoding/json the way a payload
// arrives from a real client
func payloadFromJSON(t *testing.T, raw string) *playable.PayloadIn {
	t.Helper()

	var payload playable.PayloadIn
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatal(err)
	}

	return &payload
}

func TestGame_Action(t *testing.T) {
	a := assert.New(t)
	game, err := NewGame(logrus.StandardLogger(), DefaultOptions())
	a.NoError(err)

	response, didUpdate, err := game.Action(payloadFromJSON(t, `{"action":"startRound","context":"c1"}`))
	a.NoError(err)
	a.True(didUpdate)
	a.Equal("OK", response.Value)
	a.Equal("c1", response.Context)
	a.Equal(StageBetting, game.Stage())

	stackDeck(game, "2h,5c,3d,9s")

	response, didUpdate, err = game.Action(payloadFromJSON(t, `{"action":"placeBet","additionalData":{"amount":10}}`))
	a.NoError(err)
	a.True(didUpdate)
	a.Equal("OK", response.Value)
	a.Equal(StageGuessColor, game.Stage())

	response, didUpdate, err = game.Action(payloadFromJSON(t, `{"action":"guessColor","additionalData":{"color":"red"}}`))
	a.NoError(err)
	a.True(didUpdate)
	a.Equal("guess", response.Key)
	a.Equal("correct", response.Value)

	result, ok := response.Data.(*GuessResult)
	a.True(ok)
	a.True(result.Correct)
	a.Equal(2, result.Multiplier)

	response, _, err = game.Action(payloadFromJSON(t, `{"action":"guessHigherLower","additionalData":{"higher":true}}`))
	a.NoError(err)
	a.Equal("correct", response.Value)

	response, _, err = game.Action(payloadFromJSON(t, `{"action":"guessInsideOutside","additionalData":{"inside":true}}`))
	a.NoError(err)
	a.Equal("correct", response.Value)

	response, _, err = game.Action(payloadFromJSON(t, `{"action":"guessSuit","additionalData":{"suit":"SPADES"}}`))
	a.NoError(err)
	a.Equal("correct", response.Value)
	a.Equal(StageRoundWon, game.Stage())
	a.Equal(410, game.Player().Balance())
}

func TestGame_ActionCollectWinnings(t *testing.T) {
	a := assert.New(t)
	game := createTestGame(t, DefaultOptions(), "2h,5c")
	a.NoError(game.PlaceBet(10))

	_, err := game.GuessColor(deck.Red)
	a.NoError(err)
	_, err = game.GuessHigherLower(true)
	a.NoError(err)

	response, didUpdate, err := game.Action(payloadFromJSON(t, `{"action":"collectWinnings"}`))
	a.NoError(err)
	a.True(didUpdate)
	a.Equal("OK", response.Value)
	a.Equal(StageBetting, game.Stage())
	a.Equal(130, game.Player().Balance())
}

func TestGame_ActionErrors(t *testing.T) {
	a := assert.New(t)
	game, err := NewGame(logrus.StandardLogger(), DefaultOptions())
	a.NoError(err)

	response, didUpdate, err := game.Action(payloadFromJSON(t, `{"action":"dance"}`))
	a.Nil(response)
	a.False(didUpdate)
	a.EqualError(err, "unknown action: dance")

	a.NoError(game.StartRound())

	response, didUpdate, err = game.Action(payloadFromJSON(t, `{"action":"placeBet"}`))
	a.Nil(response)
	a.False(didUpdate)
	a.EqualError(err, "amount is required")

	response, didUpdate, err = game.Action(payloadFromJSON(t, `{"action":"guessColor","additionalData":{"color":5}}`))
	a.Nil(response)
	a.False(didUpdate)
	a.EqualError(err, "color is required")

	response, didUpdate, err = game.Action(payloadFromJSON(t, `{"action":"placeBet","additionalData":{"amount":0}}`))
	a.Nil(response)
	a.False(didUpdate)
	a.Equal(ErrInvalidBet, err)
}
