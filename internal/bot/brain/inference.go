package brain

import (
	"sort"

	"threefiveeight/internal/domain"
)

// Intel is the per-decision snapshot a bot plays from. It only reads what the
// seat may see: its own hand, the table and the public counters.
type Intel struct {
	Seat    int
	Target  int
	Tricks  int
	Needed  int
	Left    int
	Over    bool
	Surplus int

	Trump      *domain.Suit
	Lead       *domain.Suit
	Hand       []domain.Card
	TrickCards []domain.PlayedCard

	Memory *GameMemory
}

// BuildIntel reads the snapshot for seat from a game state or a player view.
func BuildIntel(g *domain.GameState, seat int) *Intel {
	in := &Intel{
		Seat:       seat,
		Target:     g.Targets[seat],
		Tricks:     g.TricksTaken[seat],
		Left:       domain.TricksPerHand - (g.TrickNumber - 1),
		Trump:      g.Trump,
		Lead:       g.LeadSuit(),
		Hand:       g.Hands[seat],
		TrickCards: g.TrickCards(),
		Memory:     NewMemory(),
	}
	in.Needed = max(0, in.Target-in.Tricks)
	in.Over = in.Tricks >= in.Target
	in.Surplus = in.Tricks - in.Target

	m := in.Memory
	m.MarkMine(in.Hand)
	if seat == g.DealerSeat {
		m.MarkDiscarded(g.DealerDiscarded)
	}
	for _, t := range g.TrickHistory {
		lead := t.LeadSuit
		m.RecordTrick(t.Cards, &lead, seat)
	}
	m.RecordTrick(in.TrickCards, in.Lead, seat)
	for s := 0; s < domain.NumSeats; s++ {
		if s == seat {
			continue
		}
		p := m.Profile(s)
		p.Target = g.Targets[s]
		p.Tricks = g.TricksTaken[s]
	}
	return in
}

// Opponents returns the two opposing profiles in seat order.
func (in *Intel) Opponents() []*OpponentProfile {
	out := make([]*OpponentProfile, 0, domain.NumSeats-1)
	for s, p := range in.Memory.Opponents {
		if s != in.Seat {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seat < out[j].Seat })
	return out
}

// Opponent returns the profile of the opponent holding target, or nil.
func (in *Intel) Opponent(target int) *OpponentProfile {
	for _, p := range in.Opponents() {
		if p.Target == target {
			return p
		}
	}
	return nil
}

func (in *Intel) IsLeading() bool { return len(in.TrickCards) == 0 }
func (in *Intel) IsSecond() bool  { return len(in.TrickCards) == 1 }
func (in *Intel) IsLast() bool    { return len(in.TrickCards) == domain.NumSeats-1 }

// ThirdSeat is the seat still to act after this one, or NoSeat when the bot
// plays last.
func (in *Intel) ThirdSeat() int {
	for s := 0; s < domain.NumSeats; s++ {
		if s == in.Seat {
			continue
		}
		played := false
		for _, pc := range in.TrickCards {
			if pc.Seat == s {
				played = true
				break
			}
		}
		if !played {
			return s
		}
	}
	return domain.NoSeat
}

// IsTrump reports whether c belongs to the trump suit.
func (in *Intel) IsTrump(c domain.Card) bool {
	return in.Trump != nil && c.Suit == *in.Trump
}

// IsMaster reports whether no unseen card can beat c within its suit.
func (in *Intel) IsMaster(c domain.Card) bool {
	return in.Memory.IsMaster(c)
}

// HigherUnknown counts unseen cards of c's suit above c.
func (in *Intel) HigherUnknown(c domain.Card) int {
	return in.Memory.HigherUnknown(c)
}

// UnknownCount is the number of unseen cards of suit.
func (in *Intel) UnknownCount(suit domain.Suit) int {
	return len(in.Memory.Unknown(suit))
}

// UnknownTrumps counts the trumps still out with the opponents or the kitty.
func (in *Intel) UnknownTrumps() int {
	if in.Trump == nil {
		return 0
	}
	return in.UnknownCount(*in.Trump)
}

// Masters filters cards down to guaranteed winners of their suit.
func (in *Intel) Masters(cards []domain.Card) []domain.Card {
	var out []domain.Card
	for _, c := range cards {
		if in.IsMaster(c) {
			out = append(out, c)
		}
	}
	return out
}

// OpponentVoid reports whether seat is known to be void in suit.
func (in *Intel) OpponentVoid(seat int, suit domain.Suit) bool {
	p, ok := in.Memory.Opponents[seat]
	return ok && p.IsVoid(suit)
}

// AnyOpponentVoid reports whether any opponent is known to be void in suit.
func (in *Intel) AnyOpponentVoid(suit domain.Suit) bool {
	for _, p := range in.Opponents() {
		if p.IsVoid(suit) {
			return true
		}
	}
	return false
}

// Winning describes the card currently taking the trick.
type Winning struct {
	Seat  int
	Card  domain.Card
	Trump bool
}

// CurrentWinner returns the card taking the trick in progress. ok is false
// when the bot is leading.
func (in *Intel) CurrentWinner() (Winning, bool) {
	if len(in.TrickCards) == 0 || in.Lead == nil {
		return Winning{}, false
	}
	var w Winning
	found := false
	for _, pc := range in.TrickCards {
		trump := in.IsTrump(pc.Card)
		if !trump && pc.Card.Suit != *in.Lead {
			continue
		}
		switch {
		case !found, trump && !w.Trump:
			w = Winning{Seat: pc.Seat, Card: pc.Card, Trump: trump}
			found = true
		case trump == w.Trump && pc.Card.Value() > w.Card.Value():
			w = Winning{Seat: pc.Seat, Card: pc.Card, Trump: trump}
		}
	}
	return w, found
}

// HighestTrumpPlayed returns the best trump value on the trick, or 0.
func (in *Intel) HighestTrumpPlayed() int {
	best := 0
	for _, pc := range in.TrickCards {
		if in.IsTrump(pc.Card) {
			best = max(best, pc.Card.Value())
		}
	}
	return best
}
