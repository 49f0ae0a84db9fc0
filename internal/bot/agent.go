package bot

import (
	"fmt"

	"threefiveeight/internal/app"
	"threefiveeight/internal/domain"
)

// Agent represents an autonomous bot player.
type Agent struct {
	ID       string
	Name     string
	Strategy Brain
}

// NewAgent builds an agent playing at level.
func NewAgent(id, name string, level BotLevel) (*Agent, error) {
	b, err := NewBrain(level)
	if err != nil {
		return nil, err
	}
	return &Agent{ID: id, Name: name, Strategy: b}, nil
}

// Decide returns the action the agent takes at seat. ok is false when the seat
// has nothing to do in the current phase. The agent only reads the seat's view.
// In the reshuffle window the returned action is the agent's vote for its side.
func (a *Agent) Decide(state *domain.GameState, seat int) (app.Action, bool, error) {
	g := app.PlayerView(state, seat)
	hand := g.Hands[seat]
	dealer := seat == g.DealerSeat

	switch g.Phase {
	case domain.PhaseSetupDeal:
		if dealer {
			return app.ShuffleDeal{}, true, nil
		}

	case domain.PhaseReshuffleWindow:
		side := domain.SideFor(seat, g.DealerSeat)
		if !WindowOpen(g, side) {
			return nil, false, nil
		}
		if a.Strategy.ShouldReshuffle(hand, g.Targets[seat]) {
			return app.ReshuffleAccept{Side: side}, true, nil
		}
		return app.ReshuffleDecline{Side: side}, true, nil

	case domain.PhaseExchangeGive:
		ex := g.Exchange
		if g.CurrentPlayer != seat || ex == nil || ex.GiverIdx >= len(ex.Givings) {
			return nil, false, nil
		}
		gv := ex.Givings[ex.GiverIdx]
		given := 0
		for _, t := range ex.Given {
			if t.FromSeat == gv.FromSeat && t.ToSeat == gv.ToSeat {
				given++
			}
		}
		cards := a.Strategy.ExchangeGive(hand, gv.Count-given)
		if len(cards) == 0 {
			return nil, false, fmt.Errorf("%w: seat %d has nothing to give", ErrNoMove, seat)
		}
		return app.ExchangeGiveCard{FromSeat: seat, CardID: cards[0].ID}, true, nil

	case domain.PhaseExchangeReturn:
		if g.CurrentPlayer != seat {
			return nil, false, nil
		}
		_, received, ok := app.PendingReturn(g, seat)
		if !ok || len(hand) == 0 {
			return nil, false, fmt.Errorf("%w: seat %d owes no return", ErrNoMove, seat)
		}
		return app.ExchangeReturnCard{FromSeat: seat, CardID: ExchangeReturn(hand, received).ID}, true, nil

	case domain.PhaseCutterPick:
		if dealer {
			return app.PickCutter{Suit: a.Strategy.PickCutter(hand)}, true, nil
		}

	case domain.PhaseDealerDiscard:
		if !dealer {
			return nil, false, nil
		}
		if g.Trump == nil {
			return nil, false, fmt.Errorf("%w: no trump to discard against", ErrNoMove)
		}
		cards := a.Strategy.SelectDiscard(hand, *g.Trump)
		return app.DealerDiscard{CardIDs: domain.CardIDs(cards)}, true, nil

	case domain.PhaseTrickPlay:
		if g.CurrentPlayer != seat {
			return nil, false, nil
		}
		c, err := a.Strategy.PlayCard(g, seat)
		if err != nil {
			return nil, false, err
		}
		return app.PlayCard{Seat: seat, CardID: c.ID}, true, nil

	case domain.PhaseHandScoring:
		if dealer {
			return app.NextHand{}, true, nil
		}
	}
	return nil, false, nil
}

// WindowOpen reports whether side may still request a reshuffle.
func WindowOpen(g *domain.GameState, side domain.ReshuffleSide) bool {
	if side == domain.SideDealer {
		return g.ReshuffleWindowFor8 && !g.ReshuffleUsedBy8
	}
	return g.ReshuffleWindowFor35 && !g.ReshuffleUsedBy35
}
