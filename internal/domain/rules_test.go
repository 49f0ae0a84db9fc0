package domain

import (
	"testing"
)

func mustCards(t *testing.T, ids ...string) []Card {
	t.Helper()
	out := make([]Card, 0, len(ids))
	for _, id := range ids {
		c, err := ParseCardID(id)
		if err != nil {
			t.Fatalf("ParseCardID(%q): %v", id, err)
		}
		out = append(out, c)
	}
	return out
}

func suitPtr(s Suit) *Suit { return &s }

func TestTargetsForDealer(t *testing.T) {
	for d := 0; d < NumSeats; d++ {
		targets := TargetsForDealer(d)
		if targets[d] != 8 {
			t.Fatalf("dealer %d target = %d, want 8", d, targets[d])
		}
		if targets[(d+1)%3] != 5 || targets[(d+2)%3] != 3 {
			t.Fatalf("dealer %d targets = %v, want 5 then 3 after dealer", d, targets)
		}
		if FirstTrickLeader(d) != (d+1)%3 {
			t.Fatalf("FirstTrickLeader(%d) = %d", d, FirstTrickLeader(d))
		}
	}
}

func TestSeatRotation(t *testing.T) {
	if got := NextDealer(2); got != 0 {
		t.Fatalf("NextDealer(2) = %d, want 0", got)
	}
	if got := NextPlayerClockwise(0); got != 2 {
		t.Fatalf("NextPlayerClockwise(0) = %d, want 2", got)
	}
	if got := NextPlayerClockwise(2); got != 1 {
		t.Fatalf("NextPlayerClockwise(2) = %d, want 1", got)
	}
	if SideFor(1, 1) != SideDealer || SideFor(0, 1) != SideOthers {
		t.Fatalf("SideFor classification wrong")
	}
}

func TestLegalCards(t *testing.T) {
	hand := mustCards(t, "S-A", "S-3", "H-K", "D-2")

	tests := []struct {
		name string
		lead *Suit
		want int
	}{
		{"leading", nil, 4},
		{"must follow spades", suitPtr(Spades), 2},
		{"void in clubs", suitPtr(Clubs), 4},
		{"single heart", suitPtr(Hearts), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LegalCards(hand, tt.lead)
			if len(got) != tt.want {
				t.Fatalf("LegalCards = %v, want %d cards", CardIDs(got), tt.want)
			}
		})
	}

	if IsLegalPlay(hand, "H-K", suitPtr(Spades)) {
		t.Fatalf("H-K should be illegal when spades are held")
	}
	if !IsLegalPlay(hand, "H-K", suitPtr(Clubs)) {
		t.Fatalf("H-K should be legal when void in clubs")
	}
	if IsLegalPlay(hand, "C-A", nil) {
		t.Fatalf("card not in hand must be illegal")
	}
}

func TestTrickWinner(t *testing.T) {
	play := func(ids ...string) []PlayedCard {
		cards := mustCards(t, ids...)
		out := make([]PlayedCard, len(cards))
		for i, c := range cards {
			out[i] = PlayedCard{Seat: i, Card: c}
		}
		return out
	}

	tests := []struct {
		name  string
		cards []PlayedCard
		lead  Suit
		trump *Suit
		want  int
	}{
		{"highest of lead", play("H-10", "H-K", "S-A"), Hearts, nil, 1},
		{"off-suit ace loses", play("H-2", "S-A", "H-3"), Hearts, suitPtr(Diamonds), 2},
		{"single trump wins", play("H-A", "D-2", "H-K"), Hearts, suitPtr(Diamonds), 1},
		{"highest trump wins", play("H-A", "D-2", "D-9"), Hearts, suitPtr(Diamonds), 2},
		{"trump led", play("D-5", "D-Q", "H-A"), Diamonds, suitPtr(Diamonds), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TrickWinner(tt.cards, tt.lead, tt.trump)
			if err != nil {
				t.Fatalf("TrickWinner: %v", err)
			}
			if got != tt.want {
				t.Fatalf("TrickWinner = %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := TrickWinner(play("H-2", "H-3"), Hearts, nil); err == nil {
		t.Fatalf("expected error for incomplete trick")
	}
}

func TestComputeExchangeGivings(t *testing.T) {
	t.Run("single giver single receiver", func(t *testing.T) {
		got := ComputeExchangeGivings([3]int{2, -2, 0}, TargetsForDealer(1))
		if len(got) != 1 || got[0] != (ExchangeGiving{FromSeat: 0, ToSeat: 1, Count: 2}) {
			t.Fatalf("givings = %+v", got)
		}
	})

	t.Run("one giver two receivers", func(t *testing.T) {
		got := ComputeExchangeGivings([3]int{3, -1, -2}, TargetsForDealer(0))
		want := []ExchangeGiving{{0, 1, 1}, {0, 2, 2}}
		if len(got) != len(want) {
			t.Fatalf("givings = %+v, want %+v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("givings[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("two givers ordered by new target", func(t *testing.T) {
		// Dealer 2: targets are seat0=5, seat1=3, seat2=8.
		got := ComputeExchangeGivings([3]int{1, 2, -3}, TargetsForDealer(2))
		if len(got) != 2 {
			t.Fatalf("givings = %+v", got)
		}
		if got[0].FromSeat != 0 || got[0].Count != 1 || got[1].FromSeat != 1 || got[1].Count != 2 {
			t.Fatalf("givings = %+v", got)
		}
	})

	t.Run("all zero", func(t *testing.T) {
		if got := ComputeExchangeGivings([3]int{0, 0, 0}, TargetsForDealer(0)); len(got) != 0 {
			t.Fatalf("givings = %+v, want none", got)
		}
	})
}

func TestRequiredReturnCard(t *testing.T) {
	hand := mustCards(t, "H-K", "H-9", "H-A", "S-4")
	received := mustCards(t, "H-10")[0]
	if got := RequiredReturnCard(hand, received); got.ID != "H-A" {
		t.Fatalf("RequiredReturnCard = %s, want H-A", got.ID)
	}

	low := mustCards(t, "S-5")[0]
	if got := RequiredReturnCard(hand, low); got.ID != "S-5" {
		t.Fatalf("RequiredReturnCard = %s, want bounce S-5", got.ID)
	}
}

func TestReturnCardFor(t *testing.T) {
	// S-3 then S-K arrive with no other spades in hand. S-K goes back for S-3,
	// so the bounce for S-K is gone and the spade left is S-3.
	hand := mustCards(t, "H-9", "D-J", "C-4")
	hand = append(hand, mustCards(t, "S-3", "S-K")...)
	first, second := hand[3], hand[4]

	ret := ReturnCardFor(hand, first)
	if ret.ID != "S-K" {
		t.Fatalf("ReturnCardFor(S-3) = %s, want S-K", ret.ID)
	}
	hand = RemoveCard(hand, ret.ID)

	if req := RequiredReturnCard(hand, second); ContainsCard(hand, req.ID) {
		t.Fatalf("RequiredReturnCard(S-K) = %s still in hand", req.ID)
	}
	if got := ReturnCardFor(hand, second); got.ID != "S-3" {
		t.Fatalf("ReturnCardFor(S-K) = %s, want S-3", got.ID)
	}

	// No card of the suit left: the highest held card goes back.
	rest := mustCards(t, "H-9", "D-J", "C-4")
	if got := ReturnCardFor(rest, second); got.ID != "D-J" {
		t.Fatalf("ReturnCardFor(S-K) without spades = %s, want D-J", got.ID)
	}

	// Required card still held: no fallback.
	if got := ReturnCardFor(mustCards(t, "S-A", "S-2"), first); got.ID != "S-A" {
		t.Fatalf("ReturnCardFor(S-3) = %s, want S-A", got.ID)
	}
}

func TestCheckVictory(t *testing.T) {
	tests := []struct {
		scores [3]int
		want   []int
	}{
		{[3]int{9, 0, -9}, nil},
		{[3]int{10, 0, -10}, []int{0}},
		{[3]int{11, 12, -23}, []int{1}},
		{[3]int{12, 12, -24}, []int{0, 1}},
	}
	for _, tt := range tests {
		got := CheckVictory(tt.scores, 10)
		if len(got) != len(tt.want) {
			t.Fatalf("CheckVictory(%v) = %v, want %v", tt.scores, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("CheckVictory(%v) = %v, want %v", tt.scores, got, tt.want)
			}
		}
	}
}

func TestApplyTieBreak(t *testing.T) {
	tricks := make([]TrickResult, 0, TricksPerHand)
	for n := 1; n <= TricksPerHand; n++ {
		winner := 0
		if n == 15 {
			winner = 1
		}
		if n == 16 {
			winner = 2
		}
		tricks = append(tricks, TrickResult{Number: n, Winner: winner})
	}

	seat, reason := ApplyTieBreak([]int{1}, [3]int{}, tricks)
	if seat != 1 || reason != "highest score" {
		t.Fatalf("single = (%d, %q)", seat, reason)
	}

	seat, reason = ApplyTieBreak([]int{0, 1}, [3]int{1, 3, -4}, tricks)
	if seat != 1 || reason != "largest gain in last hand (+3)" {
		t.Fatalf("delta = (%d, %q)", seat, reason)
	}

	seat, reason = ApplyTieBreak([]int{0, 1, 2}, [3]int{0, 0, 0}, tricks)
	if seat != 2 || reason != "took the last trick of the last hand" {
		t.Fatalf("three-way = (%d, %q)", seat, reason)
	}

	seat, reason = ApplyTieBreak([]int{0, 1}, [3]int{2, 2, -4}, tricks)
	if seat != 1 || reason != "took the latest trick (trick 15) of the last hand" {
		t.Fatalf("latest = (%d, %q)", seat, reason)
	}
}

func TestHandDelta(t *testing.T) {
	if HandDelta(10, 8) != 2 || HandDelta(1, 3) != -2 {
		t.Fatalf("HandDelta wrong")
	}
}
