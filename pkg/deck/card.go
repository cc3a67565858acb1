package deck

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits contains the four suits in build order
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// ParseSuit returns the suit for a case-insensitive suit name
func ParseSuit(s string) (Suit, error) {
	switch Suit(strings.ToLower(s)) {
	case Hearts:
		return Hearts, nil
	case Diamonds:
		return Diamonds, nil
	case Clubs:
		return Clubs, nil
	case Spades:
		return Spades, nil
	}

	return "", fmt.Errorf("invalid suit: %s", s)
}

// Color is the color of a card suit
type Color string

// color constants
const (
	Red   Color = "red"
	Black Color = "black"
)

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Color returns the color of the card
func (c *Card) Color() Color {
	if c.Suit == Hearts || c.Suit == Diamonds {
		return Red
	}

	return Black
}

// Name returns the long name of the card (i.e., "ace_of_spades")
// Clients use the name for display and asset lookup.
func (c *Card) Name() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "jack"
	case Queen:
		rank = "queen"
	case King:
		rank = "king"
	case Ace:
		rank = "ace"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	return fmt.Sprintf("%s_of_%s", rank, c.Suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

type cardJSON struct {
	Rank  int    `json:"rank"`
	Suit  Suit   `json:"suit"`
	Color Color  `json:"color"`
	Name  string `json:"name"`
}

// MarshalJSON includes the derived color and name so a renderer can display
// the card and look up its asset without knowing the rules
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{
		Rank:  c.Rank,
		Suit:  c.Suit,
		Color: c.Color(),
		Name:  c.Name(),
	})
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		panic(fmt.Sprintf("could not parse card: %s", s))
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return &Card{
		Rank: rank,
		Suit: suit,
	}
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
