package internal

import (
	"sort"

	"threefiveeight/internal/domain"
)

// SuitProfile summarizes one suit of a hand for scoring.
type SuitProfile struct {
	Suit domain.Suit
	// Cards holds the suit's cards, highest first.
	Cards     []domain.Card
	Len       int
	TopSeq    int
	HighCards int
	HasAce    bool
	HasKing   bool
	Strength  int
}

// Void reports whether the hand holds no card of the suit.
func (p SuitProfile) Void() bool {
	return p.Len == 0
}

// Highest returns the top card of the suit. ok is false for a void suit.
func (p SuitProfile) Highest() (domain.Card, bool) {
	if p.Len == 0 {
		return domain.Card{}, false
	}
	return p.Cards[0], true
}

// Lowest returns the bottom card of the suit. ok is false for a void suit.
func (p SuitProfile) Lowest() (domain.Card, bool) {
	if p.Len == 0 {
		return domain.Card{}, false
	}
	return p.Cards[p.Len-1], true
}

// HandProfile holds a SuitProfile per suit in canonical suit order.
type HandProfile [4]SuitProfile

// Of returns the profile of suit.
func (h HandProfile) Of(suit domain.Suit) SuitProfile {
	return h[suit.Index()]
}

// Voids counts the suits the hand is void in, skipping except.
func (h HandProfile) Voids(except domain.Suit) int {
	n := 0
	for _, p := range h {
		if p.Suit != except && p.Void() {
			n++
		}
	}
	return n
}

// ProfileSuit builds the profile for the cards of suit found in cards.
func ProfileSuit(cards []domain.Card, suit domain.Suit) SuitProfile {
	p := SuitProfile{Suit: suit, Cards: SortDesc(domain.SuitCards(cards, suit))}
	p.Len = len(p.Cards)
	p.TopSeq = TopSequence(p.Cards)
	for _, c := range p.Cards {
		v := c.Value()
		p.Strength += v
		if v >= domain.ValueJack {
			p.HighCards++
		}
		switch v {
		case domain.ValueAce:
			p.HasAce = true
		case domain.ValueKing:
			p.HasKing = true
		}
	}
	return p
}

// ProfileHand profiles every suit of hand.
func ProfileHand(hand []domain.Card) HandProfile {
	var h HandProfile
	for i, s := range domain.Suits {
		h[i] = ProfileSuit(hand, s)
	}
	return h
}

// TopSequence counts the unbroken run of ranks descending from the ace.
func TopSequence(cards []domain.Card) int {
	seq := 0
	expected := domain.ValueAce
	for _, c := range SortDesc(cards) {
		if c.Value() != expected {
			break
		}
		seq++
		expected--
	}
	return seq
}

// SortDesc returns a copy of cards ordered by rank, highest first.
func SortDesc(cards []domain.Card) []domain.Card {
	out := append([]domain.Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value() > out[j].Value() })
	return out
}

// SortAsc returns a copy of cards ordered by rank, lowest first.
func SortAsc(cards []domain.Card) []domain.Card {
	out := append([]domain.Card(nil), cards...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value() < out[j].Value() })
	return out
}
