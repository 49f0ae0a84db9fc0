package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Suit is one of the four card suits.
type Suit string

const (
	Spades   Suit = "S"
	Hearts   Suit = "H"
	Diamonds Suit = "D"
	Clubs    Suit = "C"
)

// Suits lists the suits in canonical order.
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// Index returns the canonical position of the suit, or -1 for an unknown suit.
func (s Suit) Index() int {
	for i, suit := range Suits {
		if suit == s {
			return i
		}
	}
	return -1
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s.Index() >= 0
}

// Rank is a card rank, 2 lowest and A highest.
type Rank string

const (
	Rank2     Rank = "2"
	Rank3     Rank = "3"
	Rank4     Rank = "4"
	Rank5     Rank = "5"
	Rank6     Rank = "6"
	Rank7     Rank = "7"
	Rank8     Rank = "8"
	Rank9     Rank = "9"
	Rank10    Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
	RankAce   Rank = "A"
)

// Ranks lists the ranks in ascending order.
var Ranks = [13]Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJack, RankQueen, RankKing, RankAce}

// Value returns the numeric rank value (2..14), or 0 for an unknown rank.
func (r Rank) Value() int {
	for i, rank := range Ranks {
		if rank == r {
			return i + 2
		}
	}
	return 0
}

const (
	// ValueJack is the lowest rank value counted as a high card.
	ValueJack = 11
	// ValueKing is the rank value of a king.
	ValueKing = 13
	// ValueAce is the rank value of an ace.
	ValueAce = 14
)

// HiddenCardID marks a redacted card in a player view.
const HiddenCardID = "hidden"

// Card is an immutable playing card. ID is "<suit>-<rank>".
type Card struct {
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
	ID   string `json:"id"`
}

// ErrInvalidCardID is returned when a card id cannot be parsed.
var ErrInvalidCardID = errors.New("invalid card id")

// NewCard builds the card for the given suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank, ID: string(suit) + "-" + string(rank)}
}

// HiddenCard returns the placeholder used for cards a viewer may not see.
func HiddenCard() Card {
	return Card{Suit: Spades, Rank: Rank2, ID: HiddenCardID}
}

// ParseCardID parses ids such as "S-A" or "H-10".
func ParseCardID(id string) (Card, error) {
	suit, rank, ok := strings.Cut(id, "-")
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardID, id)
	}
	c := NewCard(Suit(suit), Rank(rank))
	if !c.Suit.Valid() || c.Value() == 0 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardID, id)
	}
	return c, nil
}

// Value returns the rank value of the card.
func (c Card) Value() int {
	return c.Rank.Value()
}

// Hidden reports whether the card is a view placeholder.
func (c Card) Hidden() bool {
	return c.ID == HiddenCardID
}

// Index maps the card to 0..51 (suit-major, ascending rank).
func (c Card) Index() int {
	return c.Suit.Index()*13 + c.Value() - 2
}

// CardFromIndex is the inverse of Card.Index.
func CardFromIndex(i int) Card {
	return NewCard(Suits[i/13], Ranks[i%13])
}

func (c Card) String() string {
	return c.ID
}
