package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"
)

const (
	// DeckSize is the number of cards in a full deck.
	DeckSize = 52
	// HandSize is the number of cards dealt to each seat.
	HandSize = 16
	// KittySize is the number of cards set aside for the dealer.
	KittySize = 4
	// NumSeats is the fixed number of seats at the table.
	NumSeats = 3
)

// ErrInvalidDeckSize is returned when dealing from a deck that is not 52 cards.
var ErrInvalidDeckSize = errors.New("invalid deck size")

// RandomSource yields uniform floats in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewDeck returns the 52-card deck in canonical order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, NewCard(s, r))
		}
	}
	return deck
}

// ShuffleDeck returns a Fisher-Yates shuffled copy of the given deck.
// A nil source uses a time-seeded generator.
func ShuffleDeck(deck []Card, src RandomSource) []Card {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	out := make([]Card, len(deck))
	copy(out, deck)
	for i := len(out) - 1; i > 0; i-- {
		j := int(src.Float64() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Deal splits a shuffled deck round-robin into three 16-card hands and the 4-card kitty.
func Deal(deck []Card) ([NumSeats][]Card, []Card, error) {
	var hands [NumSeats][]Card
	if len(deck) != DeckSize {
		return hands, nil, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidDeckSize, len(deck), DeckSize)
	}
	for i := range hands {
		hands[i] = make([]Card, 0, HandSize)
	}
	dealt := NumSeats * HandSize
	for i := 0; i < dealt; i++ {
		hands[i%NumSeats] = append(hands[i%NumSeats], deck[i])
	}
	kitty := make([]Card, KittySize)
	copy(kitty, deck[dealt:])
	return hands, kitty, nil
}

// SortForDisplay returns a copy ordered trump first, then S,H,D,C, each suit by descending rank.
func SortForDisplay(hand []Card, trump *Suit) []Card {
	out := make([]Card, len(hand))
	copy(out, hand)
	order := func(s Suit) int {
		if trump != nil && s == *trump {
			return -1
		}
		return s.Index()
	}
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := order(out[i].Suit), order(out[j].Suit)
		if oi != oj {
			return oi < oj
		}
		return out[i].Value() > out[j].Value()
	})
	return out
}

// SeededSource is the mulberry32 generator used for reproducible deals.
type SeededSource struct {
	state uint32
}

// NewSeededSource returns a mulberry32 generator for the given seed.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{state: uint32(seed)}
}

// Float64 returns the next value in [0, 1).
func (s *SeededSource) Float64() float64 {
	s.state += 0x6d2b79f5
	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}
