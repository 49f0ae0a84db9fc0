package domain

import (
	"errors"
	"testing"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("len(deck) = %d, want %d", len(deck), DeckSize)
	}
	seen := map[string]bool{}
	for i, c := range deck {
		if seen[c.ID] {
			t.Fatalf("duplicate card %s", c.ID)
		}
		seen[c.ID] = true
		if c.Index() != i {
			t.Fatalf("%s index = %d, want %d", c.ID, c.Index(), i)
		}
		if CardFromIndex(i) != c {
			t.Fatalf("CardFromIndex(%d) = %v, want %v", i, CardFromIndex(i), c)
		}
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := ShuffleDeck(NewDeck(), NewSeededSource(42))
	b := ShuffleDeck(NewDeck(), NewSeededSource(42))
	c := ShuffleDeck(NewDeck(), NewSeededSource(99))

	same, differ := true, false
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
		if a[i] != c[i] {
			differ = true
		}
	}
	if !same {
		t.Fatalf("same seed produced different orders")
	}
	if !differ {
		t.Fatalf("different seeds produced the same order")
	}
}

func TestShuffleDoesNotMutateInput(t *testing.T) {
	deck := NewDeck()
	_ = ShuffleDeck(deck, NewSeededSource(7))
	for i, c := range deck {
		if c.Index() != i {
			t.Fatalf("input deck modified at %d", i)
		}
	}
}

func TestSeededSourceRange(t *testing.T) {
	src := NewSeededSource(1)
	for i := 0; i < 1000; i++ {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, out of [0,1)", v)
		}
	}
}

func TestDeal(t *testing.T) {
	deck := ShuffleDeck(NewDeck(), NewSeededSource(1))
	hands, kitty, err := Deal(deck)
	if err != nil {
		t.Fatalf("Deal: %v", err)
	}
	for i, h := range hands {
		if len(h) != HandSize {
			t.Fatalf("hand %d has %d cards", i, len(h))
		}
	}
	if len(kitty) != KittySize {
		t.Fatalf("kitty has %d cards", len(kitty))
	}
	if hands[1][0] != deck[1] || hands[2][15] != deck[47] || kitty[0] != deck[48] {
		t.Fatalf("round-robin order not respected")
	}

	seen := map[string]bool{}
	all := append(append(append(append([]Card{}, hands[0]...), hands[1]...), hands[2]...), kitty...)
	for _, c := range all {
		seen[c.ID] = true
	}
	if len(seen) != DeckSize {
		t.Fatalf("dealt %d distinct cards, want %d", len(seen), DeckSize)
	}
}

func TestDealInvalidSize(t *testing.T) {
	for _, n := range []int{0, 10, 51} {
		if _, _, err := Deal(NewDeck()[:n]); !errors.Is(err, ErrInvalidDeckSize) {
			t.Fatalf("Deal(%d cards) err = %v, want ErrInvalidDeckSize", n, err)
		}
	}
}

func TestSortForDisplay(t *testing.T) {
	hand := []Card{
		NewCard(Hearts, Rank3), NewCard(Spades, RankAce), NewCard(Hearts, RankKing),
		NewCard(Spades, Rank2), NewCard(Diamonds, Rank10),
	}
	got := CardIDs(SortForDisplay(hand, nil))
	want := []string{"S-A", "S-2", "H-K", "H-3", "D-10"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SortForDisplay = %v, want %v", got, want)
		}
	}

	trump := Diamonds
	if first := SortForDisplay(hand, &trump)[0]; first.Suit != Diamonds {
		t.Fatalf("trump not first: %s", first.ID)
	}
}

func TestParseCardID(t *testing.T) {
	c, err := ParseCardID("H-10")
	if err != nil || c.Suit != Hearts || c.Value() != 10 {
		t.Fatalf("ParseCardID(H-10) = %v, %v", c, err)
	}
	for _, bad := range []string{"", "X-2", "H-1", "H10", HiddenCardID} {
		if _, err := ParseCardID(bad); !errors.Is(err, ErrInvalidCardID) {
			t.Fatalf("ParseCardID(%q) err = %v", bad, err)
		}
	}
}
