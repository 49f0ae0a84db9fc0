package brain

import (
	"testing"

	"threefiveeight/internal/domain"
)

func trickState(t *testing.T) *domain.GameState {
	t.Helper()
	hearts := domain.Hearts
	spades := domain.Spades
	g := &domain.GameState{
		DealerSeat:  0,
		Targets:     domain.TargetsForDealer(0),
		Trump:       &hearts,
		TrickNumber: 2,
		Phase:       domain.PhaseTrickPlay,
		TrickHistory: []domain.TrickResult{{
			Number:   1,
			LeadSuit: domain.Clubs,
			Winner:   1,
			Cards: []domain.PlayedCard{
				{Seat: 1, Card: card(t, "C-A")},
				{Seat: 0, Card: card(t, "C-2")},
				{Seat: 2, Card: card(t, "D-3")},
			},
		}},
		CurrentTrick: &domain.Trick{
			Leader:   1,
			LeadSuit: &spades,
			Cards:    []domain.PlayedCard{{Seat: 1, Card: card(t, "S-Q")}},
		},
	}
	g.TricksTaken[1] = 1
	g.Hands[0] = []domain.Card{card(t, "S-K"), card(t, "S-3"), card(t, "H-A"), card(t, "H-9")}
	g.DealerDiscarded = []domain.Card{card(t, "S-A")}
	return g
}

func TestBuildIntel(t *testing.T) {
	in := BuildIntel(trickState(t), 0)

	if in.Target != 8 || in.Needed != 8 || in.Over {
		t.Fatalf("target %d needed %d over %v, want 8 8 false", in.Target, in.Needed, in.Over)
	}
	if in.Left != 15 {
		t.Fatalf("Left = %d, want 15", in.Left)
	}
	if !in.IsSecond() || in.IsLeading() || in.IsLast() {
		t.Fatalf("seat 0 is second to play")
	}
	if got := in.ThirdSeat(); got != 2 {
		t.Fatalf("ThirdSeat = %d, want 2", got)
	}
	if !in.OpponentVoid(2, domain.Clubs) || in.OpponentVoid(1, domain.Clubs) {
		t.Fatalf("only seat 2 is void in clubs")
	}
	if !in.AnyOpponentVoid(domain.Clubs) || in.AnyOpponentVoid(domain.Spades) {
		t.Fatalf("AnyOpponentVoid mismatch")
	}
	if p := in.Opponent(domain.TargetFirst); p == nil || p.Seat != 1 || p.Tricks != 1 {
		t.Fatalf("Opponent(5) = %+v, want seat 1 with one trick", p)
	}
}

func TestIntelMastersUseOwnDiscards(t *testing.T) {
	in := BuildIntel(trickState(t), 0)

	king := card(t, "S-K")
	if !in.IsMaster(king) {
		t.Fatalf("S-K is a master: S-A was discarded by this dealer")
	}
	if in.IsMaster(card(t, "H-9")) {
		t.Fatalf("H-9 is not a master")
	}
	if got := in.Masters(in.Hand); len(got) != 2 {
		t.Fatalf("Masters = %v, want S-K and H-A", got)
	}
	if got := in.UnknownTrumps(); got != 11 {
		t.Fatalf("UnknownTrumps = %d, want 11", got)
	}

	other := BuildIntel(trickState(t), 2)
	if other.IsMaster(card(t, "S-K")) {
		t.Fatalf("a non-dealer cannot know about the discarded ace")
	}
}

func TestCurrentWinner(t *testing.T) {
	g := trickState(t)
	in := BuildIntel(g, 0)
	w, ok := in.CurrentWinner()
	if !ok || w.Seat != 1 || w.Trump {
		t.Fatalf("CurrentWinner = %+v, want seat 1 without trump", w)
	}

	g.CurrentTrick.Cards = append(g.CurrentTrick.Cards, domain.PlayedCard{Seat: 2, Card: card(t, "H-2")})
	in = BuildIntel(g, 0)
	w, _ = in.CurrentWinner()
	if w.Seat != 2 || !w.Trump {
		t.Fatalf("CurrentWinner = %+v, want seat 2 with trump", w)
	}
	if in.HighestTrumpPlayed() != 2 {
		t.Fatalf("HighestTrumpPlayed = %d, want 2", in.HighestTrumpPlayed())
	}
	if !in.IsLast() || in.ThirdSeat() != domain.NoSeat {
		t.Fatalf("seat 0 plays last")
	}
}
