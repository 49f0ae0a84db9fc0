package bot

import (
	"fmt"

	"threefiveeight/internal/app"
	"threefiveeight/internal/domain"
)

// Table drives a game where every seat is an agent.
type Table struct {
	Agents [domain.NumSeats]*Agent
}

// NewTable seats one agent of level per seat.
func NewTable(level BotLevel) (*Table, error) {
	var t Table
	for seat := range t.Agents {
		id := GetBotIdentity(seat)
		a, err := NewAgent(id.UserID, id.DisplayName, level)
		if err != nil {
			return nil, err
		}
		t.Agents[seat] = a
	}
	return &t, nil
}

// Next returns the action the table takes in g and the seat that chose it.
// The side-35 reshuffle is settled by a vote of both non-dealer seats and is
// reported for the first of them.
func (t *Table) Next(g *domain.GameState) (app.Action, int, error) {
	if g.Phase == domain.PhaseReshuffleWindow {
		return t.reshuffle(g)
	}
	for seat, a := range t.Agents {
		action, ok, err := a.Decide(g, seat)
		if err != nil {
			return nil, seat, fmt.Errorf("seat %d: %w", seat, err)
		}
		if ok {
			return action, seat, nil
		}
	}
	return nil, domain.NoSeat, fmt.Errorf("%w: no seat can act in phase %s", ErrNoMove, g.Phase)
}

func (t *Table) reshuffle(g *domain.GameState) (app.Action, int, error) {
	dealer := g.DealerSeat
	if WindowOpen(g, domain.SideDealer) {
		action, _, err := t.Agents[dealer].Decide(g, dealer)
		return action, dealer, err
	}
	if !WindowOpen(g, domain.SideOthers) {
		return nil, domain.NoSeat, fmt.Errorf("%w: reshuffle window without an open side", ErrNoMove)
	}
	vote := app.NewSideVote(dealer)
	first := domain.NoSeat
	for seat, a := range t.Agents {
		if seat == dealer {
			continue
		}
		if first == domain.NoSeat {
			first = seat
		}
		action, ok, err := a.Decide(g, seat)
		if err != nil {
			return nil, seat, err
		}
		vote.Cast(seat, ok && action.Kind() == app.ActionReshuffleAccept)
		if outcome, settled := vote.Outcome(); settled {
			return outcome, first, nil
		}
	}
	return nil, first, fmt.Errorf("%w: side-35 vote did not settle", ErrNoMove)
}
