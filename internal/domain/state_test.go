package domain

import "testing"

func TestCloneIsDeep(t *testing.T) {
	trump := Hearts
	lead := Spades
	winner := 1
	g := &GameState{
		Hands:        [NumSeats][]Card{{NewCard(Spades, RankAce)}, {NewCard(Hearts, Rank2)}, nil},
		Kitty:        []Card{NewCard(Clubs, Rank5)},
		Trump:        &trump,
		Exchange:     &ExchangeInfo{Givings: []ExchangeGiving{{0, 1, 1}}},
		CurrentTrick: &Trick{Leader: 0, LeadSuit: &lead, Cards: []PlayedCard{{Seat: 0, Card: NewCard(Spades, Rank9)}}},
		TrickHistory: []TrickResult{{Number: 1, Cards: []PlayedCard{{Seat: 2}}}},
		Winner:       &winner,
		HandHistory:  []HandRecord{{HandNumber: 1, Tricks: []TrickResult{{Number: 1}}}},
	}

	c := g.Clone()
	c.Hands[0][0] = NewCard(Clubs, Rank2)
	c.Kitty[0] = NewCard(Clubs, Rank3)
	*c.Trump = Clubs
	c.Exchange.Givings[0].Count = 5
	*c.CurrentTrick.LeadSuit = Diamonds
	c.CurrentTrick.Cards[0].Seat = 2
	c.TrickHistory[0].Cards[0].Seat = 0
	*c.Winner = 2
	c.HandHistory[0].Tricks[0].Number = 9

	if g.Hands[0][0].ID != "S-A" || g.Kitty[0].ID != "C-5" {
		t.Fatalf("card slices shared after Clone")
	}
	if *g.Trump != Hearts || *g.CurrentTrick.LeadSuit != Spades || *g.Winner != 1 {
		t.Fatalf("pointers shared after Clone")
	}
	if g.Exchange.Givings[0].Count != 1 || g.CurrentTrick.Cards[0].Seat != 0 {
		t.Fatalf("nested slices shared after Clone")
	}
	if g.TrickHistory[0].Cards[0].Seat != 2 || g.HandHistory[0].Tricks[0].Number != 1 {
		t.Fatalf("history shared after Clone")
	}
}

func TestRemoveCard(t *testing.T) {
	hand := []Card{NewCard(Spades, RankAce), NewCard(Hearts, Rank2), NewCard(Clubs, Rank9)}
	out := RemoveCard(hand, "H-2")
	if len(out) != 2 || ContainsCard(out, "H-2") {
		t.Fatalf("RemoveCard = %v", CardIDs(out))
	}
	if len(hand) != 3 {
		t.Fatalf("RemoveCard mutated input")
	}
	if got := RemoveCards(hand, []string{"S-A", "C-9"}); len(got) != 1 || got[0].ID != "H-2" {
		t.Fatalf("RemoveCards = %v", CardIDs(got))
	}
	if CountSuit(hand, Spades) != 1 || len(SuitCards(hand, Clubs)) != 1 {
		t.Fatalf("suit helpers wrong")
	}
}
