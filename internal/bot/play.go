package bot

import (
	"fmt"

	"threefiveeight/internal/bot/brain"
	botinternal "threefiveeight/internal/bot/internal"
	"threefiveeight/internal/domain"
)

// PlayCard chooses the pro-level card for seat in a trick-play state or view.
func PlayCard(g *domain.GameState, seat int) (domain.Card, error) {
	return playCard(g, seat, DefaultTuning)
}

func playCard(g *domain.GameState, seat int, t botinternal.Tuning) (domain.Card, error) {
	if g.Phase != domain.PhaseTrickPlay {
		return domain.Card{}, fmt.Errorf("%w: phase %s", ErrNoMove, g.Phase)
	}
	legal := domain.LegalCards(g.Hands[seat], g.LeadSuit())
	if len(legal) == 0 {
		return domain.Card{}, fmt.Errorf("%w: seat %d holds no cards", ErrNoMove, seat)
	}
	if len(legal) == 1 {
		return legal[0], nil
	}

	in := brain.BuildIntel(g, seat)
	ctx := &PlayContext{
		Intel:  in,
		Legal:  legal,
		Tuning: t,
		Stage:  botinternal.DetectStage(in.Left, domain.TricksPerHand, t.EndgameWindow),
	}
	var c domain.Card
	if in.Lead == nil {
		c, _ = Run(ctx, LeadRules(ctx))
	} else {
		c = follow(ctx)
	}
	if !domain.ContainsCard(legal, c.ID) {
		c = lowest(legal)
	}
	return c, nil
}

func follow(ctx *PlayContext) domain.Card {
	lead := *ctx.Intel.Lead
	if domain.CountSuit(ctx.Legal, lead) > 0 {
		return followSuit(ctx, lead)
	}
	return discardOrCut(ctx, lead)
}

func followSuit(ctx *PlayContext, lead domain.Suit) domain.Card {
	in := ctx.Intel
	mine := botinternal.SortDesc(domain.SuitCards(ctx.Legal, lead))
	low := mine[len(mine)-1]

	if in.Over {
		return low
	}
	if in.Trump != nil && lead != *in.Trump && in.HighestTrumpPlayed() > 0 {
		return low
	}

	w, _ := in.CurrentWinner()
	var beaters []domain.Card
	for _, c := range mine {
		if c.Value() > w.Card.Value() {
			beaters = append(beaters, c)
		}
	}
	if len(beaters) == 0 || in.Needed == 0 {
		return low
	}
	cheapest := beaters[len(beaters)-1]

	switch {
	case in.IsLast():
		return cheapest
	case in.HigherUnknown(beaters[0]) == 0:
		return cheapest
	case beaters[0].Value() == domain.ValueAce:
		return beaters[0]
	}
	if third := in.ThirdSeat(); third != domain.NoSeat && in.OpponentVoid(third, lead) {
		return cheapest
	}
	return low
}

func discardOrCut(ctx *PlayContext, lead domain.Suit) domain.Card {
	in := ctx.Intel
	trumps := botinternal.SortAsc(ctx.Trumps())
	if in.Over || len(trumps) == 0 || in.Needed == 0 {
		return dump(ctx)
	}

	if top := in.HighestTrumpPlayed(); top > 0 {
		var over []domain.Card
		for _, c := range trumps {
			if c.Value() > top {
				over = append(over, c)
			}
		}
		switch {
		case len(over) == 0:
			return dump(ctx)
		case in.IsLast(), in.HigherUnknown(over[0]) == 0:
			return over[0]
		case in.Target == domain.TargetDealer && in.Needed >= 3:
			return over[0]
		}
		return dump(ctx)
	}

	if in.IsLast() {
		return trumps[0]
	}
	third := in.ThirdSeat()
	if third == domain.NoSeat || !in.OpponentVoid(third, lead) {
		return trumps[0]
	}
	switch {
	case in.HigherUnknown(trumps[0]) == 0:
		return trumps[0]
	case in.Target == domain.TargetDealer:
		return trumps[0]
	case in.Target == domain.TargetFirst && len(trumps) >= 3:
		return trumps[0]
	}
	return dump(ctx)
}

// dump discards toward a void, keeping guarded aces and kings.
func dump(ctx *PlayContext) domain.Card {
	in := ctx.Intel
	candidates := ctx.NonTrump()
	if len(candidates) == 0 {
		candidates = ctx.Legal
	}
	var best domain.Card
	bestScore := 0
	for i, c := range candidates {
		n := 0
		if !in.IsTrump(c) {
			n = domain.CountSuit(in.Hand, c.Suit)
		}
		score := botinternal.DumpScore(c, n, ctx.Tuning.Dump)
		if i == 0 || score < bestScore {
			best, bestScore = c, score
		}
	}
	return best
}
