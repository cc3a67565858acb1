package ridethebus

import (
	"errors"
	"fmt"
	"ridethebus-server/pkg/deck"
	"ridethebus-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

// maxCardsPerRound is the most cards that can be dealt in a single round
const maxCardsPerRound = 4

// Game is a single-player game of Ride the Bus.
// The game owns one Player for its whole lifetime and a fresh Deck for every
// round. Commands are synchronous; each one either completes a full state
// transition or fails without touching the state.
type Game struct {
	options    Options
	payouts    Payouts
	player     *Player
	deck       *deck.Deck
	dealtCards []*deck.Card
	stage      Stage
	logger     logrus.FieldLogger
	logChan    chan []*playable.LogMessage

	// seed is used to shuffle each round's deck. Zero means time-based.
	// Only tests should set a non-zero seed.
	seed int64
}

// NewGame returns a new game of Ride the Bus
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if options.StartingBalance <= 0 {
		return nil, errors.New("starting balance must be > 0")
	}

	if options.DefaultBet <= 0 {
		return nil, errors.New("default bet must be > 0")
	}

	if options.DefaultBet > options.StartingBalance {
		return nil, errors.New("default bet cannot exceed the starting balance")
	}

	if err := options.Payouts.validate(); err != nil {
		return nil, err
	}

	d := deck.New()
	d.Shuffle(0)

	return &Game{
		options:    options,
		payouts:    options.Payouts,
		player:     NewPlayer(options.StartingBalance, options.DefaultBet),
		deck:       d,
		dealtCards: make([]*deck.Card, 0, maxCardsPerRound),
		stage:      StageStart,
		logger:     logger,
		logChan:    make(chan []*playable.LogMessage, 256),
	}, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Ride the Bus"
}

// Key returns a unique key
func (g *Game) Key() string {
	return "ride-the-bus"
}

// SeedWallet adopts a persisted balance and high score at process start.
// A saved balance of zero means the player went broke last session, so the
// game opens in the bankrupt stage.
func (g *Game) SeedWallet(balance, highScore int) error {
	if g.stage != StageStart {
		return fmt.Errorf("cannot seed the wallet from stage: %s", g.stage)
	}

	if balance < 0 || highScore < 0 {
		return errors.New("balance and high score cannot be negative")
	}

	g.player.Seed(balance, highScore)
	if balance == 0 {
		g.stage = StageBankrupt
	}

	return nil
}

// StartRound begins a new betting round.
// A round can only start before the first round, or after a previous round
// ended in a win, a loss, or bankruptcy.
func (g *Game) StartRound() error {
	switch g.stage {
	case StageStart, StageRoundWon, StageRoundOver, StageBankrupt:
	default:
		return fmt.Errorf("cannot start a round from stage: %s", g.stage)
	}

	if g.stage == StageBankrupt {
		g.player.ResetBankrupt()
		g.sendLogMessage(fmt.Sprintf("fresh start with ${%d}", g.player.Balance()), nil)
	}

	g.beginRound()
	return nil
}

// beginRound replaces the deck, clears the dealt cards, and moves to betting
func (g *Game) beginRound() {
	d := deck.New()
	d.Shuffle(g.seed)

	g.deck = d
	g.dealtCards = make([]*deck.Card, 0, maxCardsPerRound)
	g.player.ResetRound()
	g.stage = StageBetting
}

// PlaceBet stakes the bet for the round.
// A non-positive amount is rejected. A bet over the available balance is an
// immediate loss, not a rejection: the round ends with no deduction.
func (g *Game) PlaceBet(amount int) error {
	if g.stage != StageBetting {
		return fmt.Errorf("cannot place a bet from stage: %s", g.stage)
	}

	if err := g.player.PlaceBet(amount); err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			g.sendLogMessage(fmt.Sprintf("bet ${%d} over a balance of ${%d} and lost the round", amount, g.player.Balance()), nil)
			g.stage = StageRoundOver
			return nil
		}

		return err
	}

	g.sendLogMessage(fmt.Sprintf("bet ${%d}", amount), nil)
	g.stage = StageGuessColor
	return nil
}

// GuessColor is the first stage: red or black.
// The comparison is case-sensitive; the only valid tokens are "red" and "black".
func (g *Game) GuessColor(color deck.Color) (*GuessResult, error) {
	if g.stage != StageGuessColor {
		return nil, fmt.Errorf("cannot guess color from stage: %s", g.stage)
	}

	card, err := g.dealNextCard()
	if err != nil {
		return nil, err
	}

	correct := card.Color() == color
	g.sendLogMessage(fmt.Sprintf("guessed %s, card is %s", color, card.Color()), card)
	return g.resolveGuess(card, correct, StageGuessColor, StageGuessHigherLower), nil
}

// GuessHigherLower is the second stage: is the next card higher or lower
// than the previous one. Equal ranks always lose.
func (g *Game) GuessHigherLower(higher bool) (*GuessResult, error) {
	if g.stage != StageGuessHigherLower {
		return nil, fmt.Errorf("cannot guess higher/lower from stage: %s", g.stage)
	}

	previous := g.dealtCards[len(g.dealtCards)-1]

	card, err := g.dealNextCard()
	if err != nil {
		return nil, err
	}

	var correct bool
	if card.Rank != previous.Rank {
		if higher {
			correct = card.Rank > previous.Rank
		} else {
			correct = card.Rank < previous.Rank
		}
	}

	direction := "lower"
	if higher {
		direction = "higher"
	}

	g.sendLogMessage(fmt.Sprintf("guessed %s than %s, dealt %s", direction, previous, card), card)
	return g.resolveGuess(card, correct, StageGuessHigherLower, StageGuessInsideOutside), nil
}

// GuessInsideOutside is the third stage: is the next card strictly between
// the first two cards, or outside that range. A card that lands on either
// boundary counts as outside.
func (g *Game) GuessInsideOutside(inside bool) (*GuessResult, error) {
	if g.stage != StageGuessInsideOutside {
		return nil, fmt.Errorf("cannot guess inside/outside from stage: %s", g.stage)
	}

	min, max := g.dealtCards[0].Rank, g.dealtCards[1].Rank
	if min > max {
		min, max = max, min
	}

	card, err := g.dealNextCard()
	if err != nil {
		return nil, err
	}

	isInside := card.Rank > min && card.Rank < max
	correct := isInside == inside

	choice := "outside"
	if inside {
		choice = "inside"
	}

	g.sendLogMessage(fmt.Sprintf("guessed %s %d-%d, dealt %s", choice, min, max, card), card)
	return g.resolveGuess(card, correct, StageGuessInsideOutside, StageGuessSuit), nil
}

// GuessSuit is the final stage: the exact suit of the next card.
// The suit name is case-insensitive; an unrecognized name is rejected with
// no state change. A correct guess banks the winnings immediately.
func (g *Game) GuessSuit(name string) (*GuessResult, error) {
	if g.stage != StageGuessSuit {
		return nil, fmt.Errorf("cannot guess suit from stage: %s", g.stage)
	}

	suit, err := deck.ParseSuit(name)
	if err != nil {
		return nil, err
	}

	card, err := g.dealNextCard()
	if err != nil {
		return nil, err
	}

	correct := card.Suit == suit
	g.sendLogMessage(fmt.Sprintf("guessed %s, dealt %s", suit, card), card)
	return g.resolveGuess(card, correct, StageGuessSuit, StageRoundWon), nil
}

// CollectWinnings banks the pending winnings instead of attempting the next
// stage, and immediately begins a new betting round. Winnings can only be
// collected after at least one successful guess.
func (g *Game) CollectWinnings() error {
	switch g.stage {
	case StageGuessHigherLower, StageGuessInsideOutside, StageGuessSuit:
	default:
		return fmt.Errorf("cannot collect winnings from stage: %s", g.stage)
	}

	winnings := g.player.PendingWinnings()
	g.player.CashOut()
	g.sendLogMessage(fmt.Sprintf("collected ${%d}", winnings), nil)

	g.beginRound()
	return nil
}

// resolveGuess applies the outcome of a guess and advances the stage
func (g *Game) resolveGuess(card *deck.Card, correct bool, stage, nextStage Stage) *GuessResult {
	result := &GuessResult{
		Card:    card,
		Correct: correct,
		Stage:   stage,
	}

	if !correct {
		g.player.ResetRound()
		if g.player.Balance() == 0 {
			g.sendLogMessage("went bankrupt", nil)
			g.stage = StageBankrupt
		} else {
			g.stage = StageRoundOver
		}

		return result
	}

	multiplier := g.payouts.Multiplier(stage)
	g.player.RecordStageWin(multiplier)

	result.Multiplier = multiplier
	result.Winnings = g.player.PendingWinnings()

	if nextStage == StageRoundWon {
		g.sendLogMessage(fmt.Sprintf("rode the bus for ${%d}", result.Winnings), nil)
		g.player.CashOut()
	}

	g.stage = nextStage
	return result
}

// dealNextCard is the only point that touches the deck.
// A failed draw cannot happen with a fresh 52-card deck and at most four
// deals per round, but a bad deal still kills the round.
func (g *Game) dealNextCard() (*deck.Card, error) {
	card, err := g.deck.Draw()
	if err != nil {
		g.logger.WithError(err).Error("could not deal card")
		g.player.ResetRound()
		g.stage = StageRoundOver
		return nil, err
	}

	g.dealtCards = append(g.dealtCards, card)
	return card, nil
}

// Stage returns the current stage
func (g *Game) Stage() Stage {
	return g.stage
}

// DealtCards returns the cards dealt so far this round, in deal order
func (g *Game) DealtCards() []*deck.Card {
	cards := make([]*deck.Card, len(g.dealtCards))
	copy(cards, g.dealtCards)
	return cards
}

// CardsRevealed returns how many dealt cards should be shown face-up
func (g *Game) CardsRevealed() int {
	return len(g.dealtCards)
}

// Player returns the player's wallet
func (g *Game) Player() *Player {
	return g.player
}

// LogChan returns a channel that the game sends log messages to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// SetSeed fixes the shuffle seed for every subsequent round.
// This should only be used by tests.
func (g *Game) SetSeed(seed int64) {
	g.seed = seed
}

func (g *Game) sendLogMessage(message string, card *deck.Card) {
	msg := playable.SimpleLogMessage(message)
	if card != nil {
		msg.Cards = []*deck.Card{card}
	}

	select {
	case g.logChan <- []*playable.LogMessage{msg}:
	default:
		g.logger.Warn("log channel is full, dropping message")
	}
}
