package ridethebus

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStage_IsGuessStage(t *testing.T) {
	a := assert.New(t)

	a.True(StageGuessColor.IsGuessStage())
	a.True(StageGuessHigherLower.IsGuessStage())
	a.True(StageGuessInsideOutside.IsGuessStage())
	a.True(StageGuessSuit.IsGuessStage())

	a.False(StageStart.IsGuessStage())
	a.False(StageBetting.IsGuessStage())
	a.False(StageRoundWon.IsGuessStage())
	a.False(StageRoundOver.IsGuessStage())
	a.False(StageBankrupt.IsGuessStage())
}
