package domain

import (
	"fmt"
	"sort"
)

const (
	// TricksPerHand is the number of tricks played in every hand.
	TricksPerHand = 16
	// DefaultVictoryTarget is the cumulative score that ends the game.
	DefaultVictoryTarget = 10

	TargetDealer = 8
	TargetFirst  = 5
	TargetSecond = 3
)

// TargetsForDealer returns the per-seat targets: 8 for the dealer, 5 for the
// next seat and 3 for the remaining one.
func TargetsForDealer(dealer int) [NumSeats]int {
	var t [NumSeats]int
	t[dealer] = TargetDealer
	t[(dealer+1)%NumSeats] = TargetFirst
	t[(dealer+2)%NumSeats] = TargetSecond
	return t
}

// FirstTrickLeader is the seat holding target 5. It opens the first trick.
func FirstTrickLeader(dealer int) int {
	return (dealer + 1) % NumSeats
}

// NextDealer rotates the deal one seat.
func NextDealer(seat int) int {
	return (seat + 1) % NumSeats
}

// NextPlayerClockwise returns the seat that plays after seat.
func NextPlayerClockwise(seat int) int {
	return (seat + 2) % NumSeats
}

// SideFor classifies a seat for the reshuffle vote.
func SideFor(seat, dealer int) ReshuffleSide {
	if seat == dealer {
		return SideDealer
	}
	return SideOthers
}

// LegalCards filters a hand by the follow-suit rule. A nil lead suit means the
// seat is leading and any card is legal.
func LegalCards(hand []Card, lead *Suit) []Card {
	if lead == nil {
		return hand
	}
	var same []Card
	for _, c := range hand {
		if c.Suit == *lead {
			same = append(same, c)
		}
	}
	if len(same) > 0 {
		return same
	}
	return hand
}

// IsLegalPlay reports whether cardID is in the hand and allowed by LegalCards.
func IsLegalPlay(hand []Card, cardID string, lead *Suit) bool {
	for _, c := range LegalCards(hand, lead) {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// TrickWinner returns the seat that wins a complete trick: the highest trump if
// any trump was played, otherwise the highest card of the lead suit.
func TrickWinner(cards []PlayedCard, lead Suit, trump *Suit) (int, error) {
	if len(cards) != NumSeats {
		return NoSeat, fmt.Errorf("trick has %d cards, want %d", len(cards), NumSeats)
	}
	best := -1
	bestTrump := false
	for i, pc := range cards {
		isTrump := trump != nil && pc.Card.Suit == *trump
		switch {
		case isTrump && !bestTrump:
			best, bestTrump = i, true
		case isTrump == bestTrump && (isTrump || pc.Card.Suit == lead):
			if best < 0 || pc.Card.Value() > cards[best].Card.Value() {
				best = i
			}
		}
	}
	if best < 0 {
		return NoSeat, fmt.Errorf("no card of lead suit %s on trick", lead)
	}
	return cards[best].Seat, nil
}

// ComputeExchangeGivings schedules the exchange from the previous hand's deltas.
// Givers are visited by descending new target, receivers in seat order.
func ComputeExchangeGivings(prevDeltas, newTargets [NumSeats]int) []ExchangeGiving {
	type entry struct{ seat, remaining int }
	var givers, receivers []*entry
	for seat, d := range prevDeltas {
		switch {
		case d > 0:
			givers = append(givers, &entry{seat, d})
		case d < 0:
			receivers = append(receivers, &entry{seat, -d})
		}
	}
	sort.SliceStable(givers, func(i, j int) bool {
		return newTargets[givers[i].seat] > newTargets[givers[j].seat]
	})

	var out []ExchangeGiving
	for _, g := range givers {
		for _, r := range receivers {
			if g.remaining <= 0 || r.remaining <= 0 {
				continue
			}
			n := min(g.remaining, r.remaining)
			out = append(out, ExchangeGiving{FromSeat: g.seat, ToSeat: r.seat, Count: n})
			g.remaining -= n
			r.remaining -= n
		}
	}
	return out
}

// RequiredReturnCard is the highest card of the received card's suit that
// outranks it, or the received card itself when none does.
func RequiredReturnCard(hand []Card, received Card) Card {
	out := received
	for _, c := range hand {
		if c.Suit == received.Suit && c.Value() > out.Value() {
			out = c
		}
	}
	return out
}

// ReturnCardFor resolves the card a receiver must hand back for received. It is
// RequiredReturnCard unless that card already left the hand as the return for an
// earlier card; then it is the highest held card of the suit, or else the highest
// held card.
func ReturnCardFor(hand []Card, received Card) Card {
	req := RequiredReturnCard(hand, received)
	if ContainsCard(hand, req.ID) || len(hand) == 0 {
		return req
	}
	pool := SuitCards(hand, received.Suit)
	if len(pool) == 0 {
		pool = hand
	}
	best := pool[0]
	for _, c := range pool[1:] {
		if c.Value() > best.Value() {
			best = c
		}
	}
	return best
}

// HandDelta is tricks taken minus target.
func HandDelta(tricksTaken, target int) int {
	return tricksTaken - target
}

// CheckVictory returns the seats at or above the victory target that share the
// highest score. It is empty when nobody qualifies.
func CheckVictory(scores [NumSeats]int, victoryTarget int) []int {
	best := 0
	var seats []int
	for seat, s := range scores {
		if s < victoryTarget {
			continue
		}
		switch {
		case len(seats) == 0 || s > best:
			best = s
			seats = []int{seat}
		case s == best:
			seats = append(seats, seat)
		}
	}
	return seats
}

// ApplyTieBreak resolves a set of tied seats into one winner with a reason.
// lastHandTricks are the completed tricks of the hand that ended the game.
func ApplyTieBreak(tied []int, lastHandDeltas [NumSeats]int, lastHandTricks []TrickResult) (int, string) {
	if len(tied) == 1 {
		return tied[0], "highest score"
	}

	maxDelta := lastHandDeltas[tied[0]]
	for _, s := range tied[1:] {
		maxDelta = max(maxDelta, lastHandDeltas[s])
	}
	var best []int
	for _, s := range tied {
		if lastHandDeltas[s] == maxDelta {
			best = append(best, s)
		}
	}
	if len(best) == 1 {
		return best[0], fmt.Sprintf("largest gain in last hand (%+d)", maxDelta)
	}

	tricks := append([]TrickResult(nil), lastHandTricks...)
	sort.SliceStable(tricks, func(i, j int) bool { return tricks[i].Number > tricks[j].Number })
	if len(best) == NumSeats && len(tricks) > 0 && containsSeat(best, tricks[0].Winner) {
		return tricks[0].Winner, "took the last trick of the last hand"
	}
	for _, t := range tricks {
		if containsSeat(best, t.Winner) {
			return t.Winner, fmt.Sprintf("took the latest trick (trick %d) of the last hand", t.Number)
		}
	}
	return best[0], "tie break"
}

func containsSeat(seats []int, seat int) bool {
	for _, s := range seats {
		if s == seat {
			return true
		}
	}
	return false
}
