package internal

import "threefiveeight/internal/domain"

// CutterWeights score a suit as the trump candidate.
type CutterWeights struct {
	Length      int
	TopSeq      int
	HighCard    int
	Ace         int
	AceKing     int
	Run5        int
	Run6        int
	Run7        int
	OtherTopSeq int
	Void        int
}

// DiscardWeights score how much a non-trump suit is worth keeping.
type DiscardWeights struct {
	TopSeq   float64
	AceKing  float64
	Ace      float64
	HighCard float64
	Long     float64
	Guarded  float64
	// ShortWeak scales the keep score of a short suit without high cards.
	ShortWeak float64
	// VoidBelow is the keep score under which a whole suit may be discarded.
	VoidBelow float64
}

// GiveWeights score a card for the exchange. Lower scores are given first.
type GiveWeights struct {
	Rank      int
	HighCard  int
	Ace       int
	ShortSuit int
	SuitLen   int
}

// DumpWeights score a discard when a seat cannot or will not win a trick.
type DumpWeights struct {
	SuitLen int
	Void    int
	Protect int
}

// LeadWeights score lead candidates.
type LeadWeights struct {
	LoseHigherOut int
	LoseRank      int
	ScoutLen      int
	ScoutAlmost   int
	ScoutMaster   int
	ScoutKnown    int
	ScoutSafe     int
	ScoutMin      int
	DangerRank    int
	DangerLen     int
}

// ReshuffleWeights drive the trick estimate behind the reshuffle vote.
type ReshuffleWeights struct {
	HighCard   float64
	Length     float64
	LengthFrom int
	// AcceptRatio is the share of the target the estimate must reach to keep a hand.
	AcceptRatio float64
}

// Tuning gathers every weight a bot level plays with.
type Tuning struct {
	Cutter    CutterWeights
	Discard   DiscardWeights
	Give      GiveWeights
	Dump      DumpWeights
	Lead      LeadWeights
	Reshuffle ReshuffleWeights
	// EndgameWindow is the number of closing tricks played by counting masters.
	EndgameWindow int
	// OpeningLead replaces Lead on the first trick, before any card is seen.
	OpeningLead LeadWeights
}

// CutterScore rates suit as trump for the hand profiled by h. A void suit
// scores zero.
func CutterScore(h HandProfile, suit domain.Suit, w CutterWeights) int {
	p := h.Of(suit)
	if p.Void() {
		return 0
	}
	score := p.Len*w.Length + p.TopSeq*w.TopSeq + p.HighCards*w.HighCard + p.Strength
	if p.HasAce {
		score += w.Ace
		if p.HasKing {
			score += w.AceKing
		}
	}
	if p.Len >= 5 {
		score += w.Run5
	}
	if p.Len >= 6 {
		score += w.Run6
	}
	if p.Len >= 7 {
		score += w.Run7
	}
	for _, other := range h {
		if other.Suit != suit {
			score += other.TopSeq * w.OtherTopSeq
		}
	}
	score += h.Voids(suit) * w.Void
	return score
}

// KeepScore rates how valuable a non-trump suit is to hold on to.
func KeepScore(p SuitProfile, w DiscardWeights) float64 {
	score := float64(p.TopSeq) * w.TopSeq
	switch {
	case p.HasAce && p.HasKing:
		score += w.AceKing
	case p.HasAce:
		score += w.Ace
	}
	score += float64(p.HighCards) * w.HighCard
	if p.Len >= 4 {
		score += w.Long
	}
	if p.Len >= 3 && p.HighCards >= 2 {
		score += w.Guarded
	}
	score += float64(p.Strength)
	if p.Len <= 2 && p.HighCards == 0 {
		score *= w.ShortWeak
	}
	return score
}

// GiveScore rates a card for the exchange given the length of its suit.
func GiveScore(c domain.Card, suitLen int, w GiveWeights) int {
	v := c.Value()
	score := v * w.Rank
	if v >= domain.ValueKing {
		score += w.HighCard
	}
	if v >= domain.ValueAce {
		score += w.Ace
	}
	if suitLen <= 2 {
		score -= w.ShortSuit
	}
	return score + suitLen*w.SuitLen
}

// DumpScore rates a discard. suitLen counts the non-trump cards of the suit.
func DumpScore(c domain.Card, suitLen int, w DumpWeights) int {
	v := c.Value()
	score := suitLen*w.SuitLen + v
	if suitLen == 1 {
		score -= w.Void
	}
	if v >= domain.ValueKing && suitLen >= 2 {
		score += w.Protect
	}
	return score
}

// LeadFor returns the lead weights for stage. The middle and the endgame
// share Lead.
func (t Tuning) LeadFor(stage Stage) LeadWeights {
	switch stage {
	case StageOpening:
		return t.OpeningLead
	default:
		return t.Lead
	}
}

// LoseScore rates a lead meant to lose the trick.
func LoseScore(c domain.Card, higherOut int, w LeadWeights) int {
	return higherOut*w.LoseHigherOut - c.Value()*w.LoseRank
}

// ScoutScore rates a suit for a low scouting lead. unknown counts the suit's
// cards not yet seen.
func ScoutScore(length, higherOut int, highest domain.Card, unknown int, safe bool, w LeadWeights) int {
	score := length * w.ScoutLen
	if higherOut == 1 && highest.Value() >= domain.ValueKing-1 {
		score += w.ScoutAlmost
	}
	if higherOut == 0 {
		score += w.ScoutMaster
	}
	score += (len(domain.Ranks) - unknown) * w.ScoutKnown
	if safe {
		score += w.ScoutSafe
	}
	return score
}

// DangerScore rates how likely a high card in a short suit is to win a trick
// its holder does not want.
func DangerScore(c domain.Card, suitLen int, w LeadWeights) int {
	return c.Value()*w.DangerRank - suitLen*w.DangerLen
}

// EstimateTricks is a rough count of the tricks a hand can take before trump
// is known.
func EstimateTricks(h HandProfile, w ReshuffleWeights) float64 {
	est := 0.0
	for _, p := range h {
		est += float64(p.TopSeq)
		if extra := p.HighCards - p.TopSeq; extra > 0 {
			est += float64(extra) * w.HighCard
		}
		if extra := p.Len - w.LengthFrom; extra > 0 {
			est += float64(extra) * w.Length
		}
	}
	return est
}
