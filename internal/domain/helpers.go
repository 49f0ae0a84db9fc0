package domain

// FindCard returns the card with the given id and whether it was found.
func FindCard(cards []Card, id string) (Card, bool) {
	for _, c := range cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// ContainsCard reports whether a card with the given id is present.
func ContainsCard(cards []Card, id string) bool {
	_, ok := FindCard(cards, id)
	return ok
}

// RemoveCard returns a copy of cards without the first card matching id.
func RemoveCard(cards []Card, id string) []Card {
	out := make([]Card, 0, len(cards))
	removed := false
	for _, c := range cards {
		if !removed && c.ID == id {
			removed = true
			continue
		}
		out = append(out, c)
	}
	return out
}

// RemoveCards removes every id in ids from cards.
func RemoveCards(cards []Card, ids []string) []Card {
	out := cards
	for _, id := range ids {
		out = RemoveCard(out, id)
	}
	return out
}

// CardIDs lists the ids of cards in order.
func CardIDs(cards []Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

// SuitCards returns the cards of one suit, preserving order.
func SuitCards(cards []Card, suit Suit) []Card {
	var out []Card
	for _, c := range cards {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

// CountSuit returns how many cards of suit are in cards.
func CountSuit(cards []Card, suit Suit) int {
	n := 0
	for _, c := range cards {
		if c.Suit == suit {
			n++
		}
	}
	return n
}

// AllCards lists every card the state currently accounts for: hands, kitty,
// dealer buffers, discards, the trick in progress and the trick history of the
// current hand. The dealt deck is not included.
func (g *GameState) AllCards() []Card {
	var out []Card
	for _, h := range g.Hands {
		out = append(out, h...)
	}
	out = append(out, g.Kitty...)
	out = append(out, g.DealerDiscarded...)
	out = append(out, g.DealerHiddenReturns...)
	out = append(out, g.DealerPendingReceived...)
	for _, pc := range g.TrickCards() {
		out = append(out, pc.Card)
	}
	for _, t := range g.TrickHistory {
		for _, pc := range t.Cards {
			out = append(out, pc.Card)
		}
	}
	return out
}
