package bot

import (
	"fmt"

	botinternal "threefiveeight/internal/bot/internal"
	"threefiveeight/internal/domain"
)

// BasicBot plays the first legal card, gives its lowest cards and keeps every deal.
type BasicBot struct{}

func (b *BasicBot) ShouldReshuffle(hand []domain.Card, target int) bool { return false }

// PickCutter names the longest suit.
func (b *BasicBot) PickCutter(hand []domain.Card) domain.Suit {
	best := domain.Spades
	for _, s := range domain.Suits {
		if domain.CountSuit(hand, s) > domain.CountSuit(hand, best) {
			best = s
		}
	}
	return best
}

// SelectDiscard puts away the lowest non-trump cards.
func (b *BasicBot) SelectDiscard(hand []domain.Card, trump domain.Suit) []domain.Card {
	var nonTrump, trumps []domain.Card
	for _, c := range hand {
		if c.Suit == trump {
			trumps = append(trumps, c)
		} else {
			nonTrump = append(nonTrump, c)
		}
	}
	ordered := append(botinternal.SortAsc(nonTrump), botinternal.SortAsc(trumps)...)
	return ordered[:min(domain.KittySize, len(ordered))]
}

func (b *BasicBot) ExchangeGive(hand []domain.Card, count int) []domain.Card {
	sorted := botinternal.SortAsc(hand)
	return sorted[:max(0, min(count, len(sorted)))]
}

func (b *BasicBot) PlayCard(g *domain.GameState, seat int) (domain.Card, error) {
	legal := domain.LegalCards(g.Hands[seat], g.LeadSuit())
	if len(legal) == 0 {
		return domain.Card{}, fmt.Errorf("%w: seat %d holds no cards", ErrNoMove, seat)
	}
	return legal[0], nil
}

// ProBot plays the full heuristics under a tuning table.
type ProBot struct {
	Tuning botinternal.Tuning
}

func (b *ProBot) ShouldReshuffle(hand []domain.Card, target int) bool {
	return shouldReshuffle(hand, target, b.Tuning)
}

func (b *ProBot) PickCutter(hand []domain.Card) domain.Suit {
	return pickCutter(hand, b.Tuning)
}

func (b *ProBot) SelectDiscard(hand []domain.Card, trump domain.Suit) []domain.Card {
	return selectDiscard(hand, trump, b.Tuning)
}

func (b *ProBot) ExchangeGive(hand []domain.Card, count int) []domain.Card {
	return exchangeGive(hand, count, b.Tuning)
}

func (b *ProBot) PlayCard(g *domain.GameState, seat int) (domain.Card, error) {
	return playCard(g, seat, b.Tuning)
}
