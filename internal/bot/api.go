package bot

import (
	"errors"

	"threefiveeight/internal/domain"
)

// ErrNoMove is returned when a bot is asked to act with nothing legal to do.
var ErrNoMove = errors.New("bot has no legal move")

// Brain is the interface that all bot strategies must implement. Every method
// is a pure read of its arguments.
type Brain interface {
	ShouldReshuffle(hand []domain.Card, target int) bool
	PickCutter(hand []domain.Card) domain.Suit
	SelectDiscard(hand []domain.Card, trump domain.Suit) []domain.Card
	ExchangeGive(hand []domain.Card, count int) []domain.Card
	PlayCard(g *domain.GameState, seat int) (domain.Card, error)
}
