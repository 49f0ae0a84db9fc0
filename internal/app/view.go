package app

import "threefiveeight/internal/domain"

// PlayerView returns a copy of state redacted for one seat. Other seats' hands,
// the kitty (unless the viewer deals), exchange transfers the viewer took no part
// in, the dealer's in-transit buffers and the dealt deck become hidden cards.
// Until trump is picked the dealer cannot see the cards sent to it.
func PlayerView(state *domain.GameState, seat int) *domain.GameState {
	v := state.Clone()
	for i := range v.Hands {
		if i != seat {
			v.Hands[i] = hideAll(v.Hands[i])
		}
	}
	if seat != v.DealerSeat {
		v.Kitty = hideAll(v.Kitty)
	}
	v.DealerHiddenReturns = hideAll(v.DealerHiddenReturns)
	v.DealerPendingReceived = hideAll(v.DealerPendingReceived)
	if seat != v.DealerSeat {
		v.DealerDiscarded = hideAll(v.DealerDiscarded)
		v.DealerReceivedKitty = hideAll(v.DealerReceivedKitty)
	}
	v.Deck = hideAll(v.Deck)
	v.Seed = 0
	if v.Exchange != nil {
		blind := seat == v.DealerSeat && v.Trump == nil
		hideTransfers(v.Exchange.Given, seat, blind)
		hideTransfers(v.Exchange.Returned, seat, blind)
	}
	return v
}

func hideAll(cards []domain.Card) []domain.Card {
	if cards == nil {
		return nil
	}
	out := make([]domain.Card, len(cards))
	for i := range out {
		out[i] = domain.HiddenCard()
	}
	return out
}

// hideTransfers redacts cards seat took no part in. A blind dealer also loses
// sight of the cards coming to it.
func hideTransfers(ts []domain.ExchangeTransfer, seat int, blind bool) {
	for i := range ts {
		involved := ts[i].FromSeat == seat || ts[i].ToSeat == seat
		if !involved || (blind && ts[i].ToSeat == seat) {
			ts[i].Card = domain.HiddenCard()
		}
	}
}
