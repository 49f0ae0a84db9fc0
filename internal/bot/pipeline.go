package bot

import (
	"threefiveeight/internal/bot/brain"
	botinternal "threefiveeight/internal/bot/internal"
	"threefiveeight/internal/domain"
)

// PlayContext holds the state for one card selection pipeline.
type PlayContext struct {
	Intel  *brain.Intel
	Legal  []domain.Card
	Tuning botinternal.Tuning
	Stage  botinternal.Stage
}

// Lead returns the lead weights for the current stage.
func (ctx *PlayContext) Lead() botinternal.LeadWeights {
	return ctx.Tuning.LeadFor(ctx.Stage)
}

// NonTrump returns the legal cards outside the trump suit.
func (ctx *PlayContext) NonTrump() []domain.Card {
	var out []domain.Card
	for _, c := range ctx.Legal {
		if !ctx.Intel.IsTrump(c) {
			out = append(out, c)
		}
	}
	return out
}

// Trumps returns the legal trump cards, highest first.
func (ctx *PlayContext) Trumps() []domain.Card {
	var out []domain.Card
	for _, c := range ctx.Legal {
		if ctx.Intel.IsTrump(c) {
			out = append(out, c)
		}
	}
	return botinternal.SortDesc(out)
}

// PlayRule represents a logic unit that may settle the card to play. A rule
// that returns false hands the decision to the next one.
type PlayRule interface {
	Name() string
	Apply(ctx *PlayContext) (domain.Card, bool)
}

type ruleFunc struct {
	name string
	fn   func(ctx *PlayContext) (domain.Card, bool)
}

func (r ruleFunc) Name() string { return r.name }

func (r ruleFunc) Apply(ctx *PlayContext) (domain.Card, bool) { return r.fn(ctx) }

func rule(name string, fn func(ctx *PlayContext) (domain.Card, bool)) PlayRule {
	return ruleFunc{name: name, fn: fn}
}

// Run applies rules in order and returns the first card proposed together with
// the rule that chose it. Without a proposal it falls back to the lowest legal card.
func Run(ctx *PlayContext, rules []PlayRule) (domain.Card, string) {
	for _, r := range rules {
		if c, ok := r.Apply(ctx); ok && domain.ContainsCard(ctx.Legal, c.ID) {
			return c, r.Name()
		}
	}
	return lowest(ctx.Legal), "Lowest"
}

var (
	captainRules = []PlayRule{
		rule("CashMasters", cashMasters),
		rule("TrumpMasters", trumpMasters),
		rule("DrawTrumps", drawTrumps),
		rule("Scout", scout),
		rule("DrawCutters", drawCutters),
		rule("LowestFromLongest", lowestFromLongest),
	}
	balancerRules = []PlayRule{
		rule("CashMasters", cashMasters),
		rule("DisruptDealer", disruptDealer),
		rule("Scout", scout),
		rule("TrumpMasters", trumpMasters),
		rule("LowestFromLongest", lowestFromLongest),
	}
	sergeantRules = []PlayRule{
		rule("CashNeededMasters", whenNeeding(cashMasters)),
		rule("NeededTrumpMasters", whenNeeding(trumpMasters)),
		rule("ShedDanger", shedDanger),
		rule("LowestFromShortest", lowestFromShortest),
	}
	endgameRules = []PlayRule{
		rule("CashWinners", cashWinners),
		rule("FlushPromotion", flushPromotion),
		rule("ClearTrumps", clearTrumps),
		rule("AnyMaster", anyMaster),
		rule("LowestNonTrump", lowestNonTrump),
	}
	loseRules = []PlayRule{
		rule("LeadToLose", leadToLose),
	}
)

// LeadRules picks the pipeline for a seat about to lead.
func LeadRules(ctx *PlayContext) []PlayRule {
	in := ctx.Intel
	switch {
	case in.Over:
		return loseRules
	case ctx.Stage == botinternal.StageEndgame && in.Needed > 0:
		return endgameRules
	case in.Target == domain.TargetDealer:
		return captainRules
	case in.Target == domain.TargetFirst:
		return balancerRules
	default:
		return sergeantRules
	}
}

func whenNeeding(fn func(ctx *PlayContext) (domain.Card, bool)) func(ctx *PlayContext) (domain.Card, bool) {
	return func(ctx *PlayContext) (domain.Card, bool) {
		if ctx.Intel.Needed == 0 {
			return domain.Card{}, false
		}
		return fn(ctx)
	}
}

func cashMasters(ctx *PlayContext) (domain.Card, bool) {
	return bestMaster(ctx.Intel.Masters(ctx.NonTrump()))
}

func trumpMasters(ctx *PlayContext) (domain.Card, bool) {
	masters := ctx.Intel.Masters(ctx.Trumps())
	if len(masters) == 0 {
		return domain.Card{}, false
	}
	return masters[0], true
}

func drawTrumps(ctx *PlayContext) (domain.Card, bool) {
	trumps := ctx.Trumps()
	if len(trumps) < 4 {
		return domain.Card{}, false
	}
	return trumps[0], true
}

// scout leads low from the suit closest to producing winners.
func scout(ctx *PlayContext) (domain.Card, bool) {
	in := ctx.Intel
	nonTrump := ctx.NonTrump()
	var best domain.Card
	bestScore := -1
	for _, s := range domain.Suits {
		if in.Trump != nil && s == *in.Trump {
			continue
		}
		mine := botinternal.SortDesc(domain.SuitCards(nonTrump, s))
		if len(mine) < 2 {
			continue
		}
		score := botinternal.ScoutScore(len(mine), in.HigherUnknown(mine[0]), mine[0],
			in.UnknownCount(s), !in.AnyOpponentVoid(s), ctx.Lead())
		if score > bestScore {
			best, bestScore = mine[len(mine)-1], score
		}
	}
	return best, bestScore > ctx.Lead().ScoutMin
}

func drawCutters(ctx *PlayContext) (domain.Card, bool) {
	in := ctx.Intel
	for _, opp := range in.Opponents() {
		if opp.Needed() == 0 {
			continue
		}
		if c, ok := lowestInVoid(ctx, opp.Seat); ok {
			return c, true
		}
	}
	return domain.Card{}, false
}

// disruptDealer forces a dealer close to target to spend trumps.
func disruptDealer(ctx *PlayContext) (domain.Card, bool) {
	dealer := ctx.Intel.Opponent(domain.TargetDealer)
	if dealer == nil || dealer.Tricks < 5 || dealer.Needed() > 3 {
		return domain.Card{}, false
	}
	return lowestInVoid(ctx, dealer.Seat)
}

func lowestInVoid(ctx *PlayContext, seat int) (domain.Card, bool) {
	in := ctx.Intel
	nonTrump := ctx.NonTrump()
	for _, s := range domain.Suits {
		if in.Trump != nil && s == *in.Trump {
			continue
		}
		if !in.OpponentVoid(seat, s) {
			continue
		}
		if mine := domain.SuitCards(nonTrump, s); len(mine) > 0 {
			return lowest(mine), true
		}
	}
	return domain.Card{}, false
}

// shedDanger leads a high card from a short suit before it wins a trick by force.
func shedDanger(ctx *PlayContext) (domain.Card, bool) {
	in := ctx.Intel
	var best domain.Card
	found := false
	bestScore := 0
	for _, c := range ctx.NonTrump() {
		if c.Value() < domain.ValueJack {
			continue
		}
		n := domain.CountSuit(in.Hand, c.Suit)
		if n > 2 || in.HigherUnknown(c) == 0 {
			continue
		}
		if score := botinternal.DangerScore(c, n, ctx.Lead()); !found || score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}

func lowestFromLongest(ctx *PlayContext) (domain.Card, bool) {
	return lowestBySuitLength(ctx.NonTrump(), func(n, best int) bool { return n > best })
}

func lowestFromShortest(ctx *PlayContext) (domain.Card, bool) {
	return lowestBySuitLength(ctx.NonTrump(), func(n, best int) bool { return n < best })
}

// lowestBySuitLength returns the lowest card among the suits whose length
// wins under better.
func lowestBySuitLength(cards []domain.Card, better func(n, best int) bool) (domain.Card, bool) {
	if len(cards) == 0 {
		return domain.Card{}, false
	}
	bestLen := -1
	var pool []domain.Card
	for _, s := range domain.Suits {
		mine := domain.SuitCards(cards, s)
		n := len(mine)
		switch {
		case n == 0:
		case bestLen < 0 || better(n, bestLen):
			bestLen, pool = n, mine
		case n == bestLen:
			pool = append(pool, mine...)
		}
	}
	return lowest(pool), true
}

// cashWinners plays masters once they alone cover what is still needed.
func cashWinners(ctx *PlayContext) (domain.Card, bool) {
	masters := ctx.Intel.Masters(ctx.Legal)
	if len(masters) == 0 || len(masters) < ctx.Intel.Needed {
		return domain.Card{}, false
	}
	return bestMaster(masters)
}

// flushPromotion leads low in a suit where a single unseen card stands above
// the seat's best.
func flushPromotion(ctx *PlayContext) (domain.Card, bool) {
	in := ctx.Intel
	nonTrump := ctx.NonTrump()
	for _, s := range domain.Suits {
		if in.Trump != nil && s == *in.Trump {
			continue
		}
		mine := botinternal.SortDesc(domain.SuitCards(nonTrump, s))
		if len(mine) >= 2 && in.HigherUnknown(mine[0]) == 1 {
			return mine[len(mine)-1], true
		}
	}
	return domain.Card{}, false
}

func clearTrumps(ctx *PlayContext) (domain.Card, bool) {
	trumps := ctx.Trumps()
	out := ctx.Intel.UnknownTrumps()
	if len(trumps) == 0 || out == 0 || out > len(trumps) {
		return domain.Card{}, false
	}
	return trumps[0], true
}

func anyMaster(ctx *PlayContext) (domain.Card, bool) {
	masters := ctx.Intel.Masters(ctx.Legal)
	if len(masters) == 0 {
		return domain.Card{}, false
	}
	return masters[0], true
}

func lowestNonTrump(ctx *PlayContext) (domain.Card, bool) {
	if cards := ctx.NonTrump(); len(cards) > 0 {
		return lowest(cards), true
	}
	return domain.Card{}, false
}

// leadToLose favors low cards in suits with many unseen higher cards.
func leadToLose(ctx *PlayContext) (domain.Card, bool) {
	var best domain.Card
	found := false
	bestScore := 0
	for _, c := range ctx.NonTrump() {
		score := botinternal.LoseScore(c, ctx.Intel.HigherUnknown(c), ctx.Lead())
		if !found || score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}

// bestMaster leads the highest master of the suit holding the most masters.
func bestMaster(masters []domain.Card) (domain.Card, bool) {
	var best domain.Card
	bestCount := 0
	for _, s := range domain.Suits {
		mine := domain.SuitCards(masters, s)
		if len(mine) > bestCount {
			bestCount = len(mine)
			best = botinternal.SortDesc(mine)[0]
		}
	}
	return best, bestCount > 0
}

func lowest(cards []domain.Card) domain.Card {
	if len(cards) == 0 {
		return domain.Card{}
	}
	return botinternal.SortAsc(cards)[0]
}
