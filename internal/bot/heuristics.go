package bot

import (
	"math"
	"sort"

	botinternal "threefiveeight/internal/bot/internal"
	"threefiveeight/internal/domain"
)

// PickCutter chooses the trump suit for a dealer's hand.
func PickCutter(hand []domain.Card) domain.Suit {
	return pickCutter(hand, DefaultTuning)
}

// SelectDiscard chooses the four cards a dealer puts away after taking the kitty.
func SelectDiscard(hand []domain.Card, trump domain.Suit) []domain.Card {
	return selectDiscard(hand, trump, DefaultTuning)
}

// ExchangeGive chooses count cards to hand over, cheapest to lose first.
func ExchangeGive(hand []domain.Card, count int) []domain.Card {
	return exchangeGive(hand, count, DefaultTuning)
}

// ExchangeReturn is the card the rules force back for received.
func ExchangeReturn(hand []domain.Card, received domain.Card) domain.Card {
	return domain.ReturnCardFor(hand, received)
}

// ShouldReshuffle votes for a redeal when the hand looks too weak for target.
func ShouldReshuffle(hand []domain.Card, target int) bool {
	return shouldReshuffle(hand, target, DefaultTuning)
}

func pickCutter(hand []domain.Card, t botinternal.Tuning) domain.Suit {
	h := botinternal.ProfileHand(hand)
	best := domain.Spades
	bestScore := math.MinInt
	for _, s := range domain.Suits {
		if h.Of(s).Void() {
			continue
		}
		if score := botinternal.CutterScore(h, s, t.Cutter); score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

func selectDiscard(hand []domain.Card, trump domain.Suit, t botinternal.Tuning) []domain.Card {
	want := min(domain.KittySize, len(hand))
	var nonTrump, trumps []domain.Card
	for _, c := range hand {
		if c.Suit == trump {
			trumps = append(trumps, c)
		} else {
			nonTrump = append(nonTrump, c)
		}
	}

	type suitKeep struct {
		profile botinternal.SuitProfile
		keep    float64
	}
	var analysis []suitKeep
	for _, s := range domain.Suits {
		if s == trump {
			continue
		}
		p := botinternal.ProfileSuit(nonTrump, s)
		analysis = append(analysis, suitKeep{p, botinternal.KeepScore(p, t.Discard)})
	}
	sort.SliceStable(analysis, func(i, j int) bool { return analysis[i].keep < analysis[j].keep })

	out := make([]domain.Card, 0, want)
	picked := make(map[string]bool)
	take := func(c domain.Card) {
		out = append(out, c)
		picked[c.ID] = true
	}
	remaining := func(cards []domain.Card) []domain.Card {
		var rest []domain.Card
		for _, c := range cards {
			if !picked[c.ID] {
				rest = append(rest, c)
			}
		}
		return botinternal.SortAsc(rest)
	}

	// Void whole weak suits that fit the budget.
	for _, a := range analysis {
		if len(out) >= want {
			break
		}
		if a.profile.Len > 0 && a.profile.Len <= want-len(out) && a.keep < t.Discard.VoidBelow {
			for _, c := range a.profile.Cards {
				take(c)
			}
		}
	}

	// Lowest non-trump cards, keeping aces and kings of suits still three long.
	for _, c := range remaining(nonTrump) {
		if len(out) >= want {
			break
		}
		if c.Value() >= domain.ValueKing && len(domain.SuitCards(remaining(nonTrump), c.Suit)) >= 3 {
			continue
		}
		take(c)
	}
	for _, c := range remaining(nonTrump) {
		if len(out) >= want {
			break
		}
		take(c)
	}
	for _, c := range remaining(trumps) {
		if len(out) >= want {
			break
		}
		take(c)
	}
	return out
}

func exchangeGive(hand []domain.Card, count int, t botinternal.Tuning) []domain.Card {
	type scored struct {
		card  domain.Card
		score int
	}
	all := make([]scored, 0, len(hand))
	for _, c := range hand {
		all = append(all, scored{c, botinternal.GiveScore(c, domain.CountSuit(hand, c.Suit), t.Give)})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].score < all[j].score })

	n := max(0, min(count, len(all)))
	out := make([]domain.Card, 0, n)
	for _, s := range all[:n] {
		out = append(out, s.card)
	}
	return out
}

func shouldReshuffle(hand []domain.Card, target int, t botinternal.Tuning) bool {
	if len(hand) == 0 {
		return false
	}
	est := botinternal.EstimateTricks(botinternal.ProfileHand(hand), t.Reshuffle)
	return est < float64(target)*t.Reshuffle.AcceptRatio
}
