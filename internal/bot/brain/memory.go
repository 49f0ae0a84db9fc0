package brain

import (
	"threefiveeight/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown   CardStatus = iota // Held by an opponent, or still in the kitty
	StatusMine                        // In the bot's hand
	StatusPlayed                      // On the table or in a completed trick
	StatusDiscarded                   // Put away by the bot as dealer
)

// GameMemory stores the bot's private view of one hand.
type GameMemory struct {
	// DeckStatus tracks all 52 cards by domain.Card.Index.
	DeckStatus [52]CardStatus
	// Opponents tracks void profiles by seat index.
	Opponents map[int]*OpponentProfile
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	return &GameMemory{
		Opponents: make(map[int]*OpponentProfile),
	}
}

// Reset clears the memory for a new hand.
func (m *GameMemory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnknown
	}
	m.Opponents = make(map[int]*OpponentProfile)
}

func (m *GameMemory) mark(cards []domain.Card, status CardStatus) {
	for _, c := range cards {
		if c.Hidden() || !c.Suit.Valid() {
			continue
		}
		m.DeckStatus[c.Index()] = status
	}
}

// MarkMine records the cards currently in the bot's hand.
func (m *GameMemory) MarkMine(cards []domain.Card) {
	m.mark(cards, StatusMine)
}

// MarkPlayed records cards that have been played on the table.
func (m *GameMemory) MarkPlayed(cards []domain.Card) {
	m.mark(cards, StatusPlayed)
}

// MarkDiscarded records the dealer's own discards.
func (m *GameMemory) MarkDiscarded(cards []domain.Card) {
	m.mark(cards, StatusDiscarded)
}

// UpdateHand marks hand as Mine and forgets cards that left it without being played.
func (m *GameMemory) UpdateHand(hand []domain.Card) {
	for i, status := range m.DeckStatus {
		if status == StatusMine {
			m.DeckStatus[i] = StatusUnknown
		}
	}
	m.MarkMine(hand)
}

// Profile returns the profile of seat, creating it on first use.
func (m *GameMemory) Profile(seat int) *OpponentProfile {
	p, ok := m.Opponents[seat]
	if !ok {
		p = NewOpponentProfile(seat)
		m.Opponents[seat] = p
	}
	return p
}

// RecordTrick logs the cards of a trick and infers voids for every seat other
// than self that did not follow the lead.
func (m *GameMemory) RecordTrick(cards []domain.PlayedCard, lead *domain.Suit, self int) {
	for _, pc := range cards {
		m.mark([]domain.Card{pc.Card}, StatusPlayed)
		if lead == nil || pc.Seat == self || pc.Card.Suit == *lead {
			continue
		}
		m.Profile(pc.Seat).MarkVoid(*lead)
	}
}

// IsKnown reports whether the card can no longer be in an opponent's hand.
func (m *GameMemory) IsKnown(c domain.Card) bool {
	return m.DeckStatus[c.Index()] != StatusUnknown
}

// IsPlayed returns true if the card is already out of the hand.
func (m *GameMemory) IsPlayed(c domain.Card) bool {
	return m.DeckStatus[c.Index()] == StatusPlayed
}

// Unknown lists the cards of suit not yet seen, lowest first.
func (m *GameMemory) Unknown(suit domain.Suit) []domain.Card {
	var out []domain.Card
	for _, r := range domain.Ranks {
		c := domain.NewCard(suit, r)
		if !m.IsKnown(c) {
			out = append(out, c)
		}
	}
	return out
}

// HigherUnknown counts the unseen cards of c's suit that outrank c.
func (m *GameMemory) HigherUnknown(c domain.Card) int {
	n := 0
	for _, u := range m.Unknown(c.Suit) {
		if u.Value() > c.Value() {
			n++
		}
	}
	return n
}

// IsMaster returns true if no unseen card of the suit can beat c.
func (m *GameMemory) IsMaster(c domain.Card) bool {
	return m.HigherUnknown(c) == 0
}
