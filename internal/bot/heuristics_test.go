package bot

import (
	"sort"
	"testing"

	"threefiveeight/internal/domain"
)

func cards(t *testing.T, ids ...string) []domain.Card {
	t.Helper()
	out := make([]domain.Card, 0, len(ids))
	for _, id := range ids {
		c, err := domain.ParseCardID(id)
		if err != nil {
			t.Fatalf("ParseCardID(%q): %v", id, err)
		}
		out = append(out, c)
	}
	return out
}

func sameIDs(t *testing.T, got []domain.Card, want ...string) {
	t.Helper()
	ids := domain.CardIDs(got)
	sort.Strings(ids)
	sort.Strings(want)
	if len(ids) != len(want) {
		t.Fatalf("cards = %v, want %v", ids, want)
	}
	for i := range ids {
		if ids[i] != want[i] {
			t.Fatalf("cards = %v, want %v", ids, want)
		}
	}
}

func TestPickCutter(t *testing.T) {
	hand := cards(t,
		"D-A", "D-K", "D-Q", "D-9", "D-6", "D-3",
		"S-K", "S-7", "S-4",
		"H-J", "H-8", "H-5", "H-2",
		"C-10", "C-6", "C-3",
	)
	if got := PickCutter(hand); got != domain.Diamonds {
		t.Fatalf("PickCutter = %s, want D", got)
	}
	if got := PickCutter(cards(t, "C-2")); got != domain.Clubs {
		t.Fatalf("PickCutter = %s, want the only held suit C", got)
	}
}

func TestSelectDiscardVoidsWeakSuit(t *testing.T) {
	hand := cards(t,
		"S-A", "S-K", "S-Q", "S-J", "S-10",
		"H-3", "H-5",
		"D-A", "D-K", "D-Q", "D-4",
		"C-A", "C-9", "C-7", "C-6", "C-2",
	)
	got := SelectDiscard(hand, domain.Spades)
	sameIDs(t, got, "H-3", "H-5", "C-2", "D-4")
}

func TestSelectDiscardFallsBackToTrump(t *testing.T) {
	var hand []domain.Card
	for _, r := range domain.Ranks {
		hand = append(hand, domain.NewCard(domain.Spades, r))
	}
	hand = append(hand, cards(t, "H-2", "D-2", "C-2")...)

	got := SelectDiscard(hand, domain.Spades)
	sameIDs(t, got, "H-2", "D-2", "C-2", "S-2")
}

func TestSelectDiscardKeepsGuardedHonours(t *testing.T) {
	hand := cards(t,
		"S-9", "S-8", "S-7", "S-6", "S-5",
		"H-K", "H-4", "H-3",
		"D-A", "D-10", "D-9", "D-8",
		"C-K", "C-J", "C-10", "C-9",
	)
	for _, c := range SelectDiscard(hand, domain.Spades) {
		if c.ID == "D-A" || c.ID == "C-K" {
			t.Fatalf("discarded %s from a long suit", c.ID)
		}
		if c.Suit == domain.Spades {
			t.Fatalf("discarded trump %s with non-trump cards left", c.ID)
		}
	}
}

func TestExchangeGive(t *testing.T) {
	hand := cards(t, "H-A", "H-K", "H-2", "D-3", "D-4", "D-5", "D-6", "C-Q")
	sameIDs(t, ExchangeGive(hand, 2), "H-2", "D-3")

	if got := ExchangeGive(hand, 20); len(got) != len(hand) {
		t.Fatalf("ExchangeGive over hand size = %d cards, want %d", len(got), len(hand))
	}
	if got := ExchangeGive(hand, 0); len(got) != 0 {
		t.Fatalf("ExchangeGive(0) = %v, want none", got)
	}
}

func TestExchangeReturn(t *testing.T) {
	hand := cards(t, "S-K", "S-5", "H-A")
	received := cards(t, "S-3")[0]
	if got := ExchangeReturn(hand, received); got.ID != "S-K" {
		t.Fatalf("ExchangeReturn = %s, want S-K", got.ID)
	}
}

func TestShouldReshuffle(t *testing.T) {
	weak := cards(t,
		"S-2", "S-3", "S-4", "S-5",
		"H-2", "H-3", "H-4", "H-5",
		"D-2", "D-3", "D-4", "D-5",
		"C-2", "C-3", "C-4", "C-5",
	)
	strong := cards(t,
		"S-A", "S-K", "S-Q", "S-J", "S-10", "S-9",
		"H-A", "H-K", "H-Q",
		"D-A", "D-K",
		"C-A", "C-K", "C-2", "C-3", "C-4",
	)
	for _, target := range []int{domain.TargetDealer, domain.TargetFirst, domain.TargetSecond} {
		if !ShouldReshuffle(weak, target) {
			t.Fatalf("ShouldReshuffle(weak, %d) = false, want true", target)
		}
		if ShouldReshuffle(strong, target) {
			t.Fatalf("ShouldReshuffle(strong, %d) = true, want false", target)
		}
	}
	if ShouldReshuffle(nil, domain.TargetDealer) {
		t.Fatalf("an empty hand never votes")
	}
}

func TestNewBrain(t *testing.T) {
	for _, level := range []BotLevel{BotLevelBasic, BotLevelPro} {
		if _, err := NewBrain(level); err != nil {
			t.Fatalf("NewBrain(%s): %v", level, err)
		}
	}
	if _, err := NewBrain(BotLevel(9)); err == nil {
		t.Fatalf("NewBrain(9) should fail")
	}

	tests := map[string]BotLevel{"basic": BotLevelBasic, "PRO": BotLevelPro, "": BotLevelPro, " hard ": BotLevelPro}
	for in, want := range tests {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("godlike"); err == nil {
		t.Fatalf("ParseLevel(godlike) should fail")
	}
}
