package app

import (
	"errors"
	"fmt"

	"threefiveeight/internal/domain"
)

// PlayerInfo identifies a participant when creating a game.
type PlayerInfo struct {
	ID   string
	Name string
}

// GameOptions configures CreateGame. A nil Dealer is derived from Seed.
type GameOptions struct {
	GameID        string
	Mode          domain.Mode
	Players       []PlayerInfo
	VictoryTarget int
	Dealer        *int
	Seed          int64
}

// dealSalt spreads consecutive deal counts across the seed space.
const dealSalt = 0x9e3779b9

// CreateGame builds the initial state awaiting the first deal.
func CreateGame(opts GameOptions) (*domain.GameState, error) {
	if len(opts.Players) != domain.NumSeats {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayers, len(opts.Players))
	}
	dealer := 0
	if opts.Dealer != nil {
		if *opts.Dealer < 0 || *opts.Dealer >= domain.NumSeats {
			return nil, fmt.Errorf("%w: dealer seat %d", ErrInvalidPlayers, *opts.Dealer)
		}
		dealer = *opts.Dealer
	} else {
		dealer = int(domain.NewSeededSource(opts.Seed).Float64() * domain.NumSeats)
	}
	target := opts.VictoryTarget
	if target <= 0 {
		target = domain.DefaultVictoryTarget
	}
	mode := opts.Mode
	if mode == "" {
		mode = domain.ModeLocal
	}

	g := &domain.GameState{
		GameID:        opts.GameID,
		Mode:          mode,
		VictoryTarget: target,
		DealerSeat:    dealer,
		Seed:          opts.Seed,
		Targets:       domain.TargetsForDealer(dealer),
		Phase:         domain.PhaseSetupDeal,
		CurrentPlayer: dealer,
	}
	for i, p := range opts.Players {
		g.Players[i] = domain.Player{ID: p.ID, Name: p.Name, Seat: i}
	}
	return g, nil
}

// ApplyAction validates and applies one action. The input state is never modified;
// on error the returned state is nil.
func ApplyAction(state *domain.GameState, action Action) (*domain.GameState, error) {
	if state == nil {
		return nil, errors.New("nil game state")
	}
	act, ok := deref(action)
	if !ok {
		return nil, reject(ErrUnknownAction, "", "nil %T action", action)
	}
	g := state.Clone()
	var err error
	switch a := act.(type) {
	case ShuffleDeal:
		err = applyDeal(g)
	case ReshuffleAccept:
		err = applyReshuffle(g, a.Side, true)
	case ReshuffleDecline:
		err = applyReshuffle(g, a.Side, false)
	case ExchangeGiveCard:
		err = applyExchangeGive(g, a)
	case ExchangeReturnCard:
		err = applyExchangeReturn(g, a)
	case PickCutter:
		err = applyPickCutter(g, a)
	case DealerDiscard:
		err = applyDealerDiscard(g, a)
	case PlayCard:
		err = applyPlayCard(g, a)
	case NextHand:
		err = applyNextHand(g)
	default:
		err = reject(ErrUnknownAction, act.Kind(), "%T", action)
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func requirePhase(g *domain.GameState, kind ActionKind, want domain.Phase) error {
	if g.Phase != want {
		return reject(ErrWrongPhase, kind, "phase is %s, want %s", g.Phase, want)
	}
	return nil
}

// redeal shuffles and deals from a source derived from the game seed.
func redeal(g *domain.GameState) error {
	src := domain.NewSeededSource(g.Seed + int64(g.DealCount)*dealSalt)
	g.DealCount++
	deck := domain.ShuffleDeck(domain.NewDeck(), src)
	hands, kitty, err := domain.Deal(deck)
	if err != nil {
		return err
	}
	g.Deck = deck
	for i := range hands {
		hands[i] = domain.SortForDisplay(hands[i], nil)
	}
	g.Hands = hands
	g.Kitty = kitty
	return nil
}

func resetHand(g *domain.GameState) {
	g.Deck = nil
	g.Kitty = nil
	g.Hands = [domain.NumSeats][]domain.Card{}
	g.DealerDiscarded = nil
	g.DealerReceivedKitty = nil
	g.DealerHiddenReturns = nil
	g.DealerPendingReceived = nil
	g.Trump = nil
	g.Exchange = nil
	g.CurrentTrick = nil
	g.TrickNumber = 0
	g.TrickHistory = nil
	g.TricksTaken = [domain.NumSeats]int{}
}

func applyDeal(g *domain.GameState) error {
	if err := requirePhase(g, ActionShuffleDeal, domain.PhaseSetupDeal); err != nil {
		return err
	}
	resetHand(g)
	if err := redeal(g); err != nil {
		return err
	}
	g.HandNumber++
	g.Targets = domain.TargetsForDealer(g.DealerSeat)
	if g.HandNumber > 1 {
		if givings := domain.ComputeExchangeGivings(g.LastHandDelta, g.Targets); len(givings) > 0 {
			g.Exchange = &domain.ExchangeInfo{Givings: givings, SubPhase: domain.SubPhaseGiving}
		}
	}
	g.ReshuffleUsedBy8, g.ReshuffleUsedBy35 = false, false
	g.ReshuffleWindowFor8, g.ReshuffleWindowFor35 = true, true
	g.Phase = domain.PhaseReshuffleWindow
	g.CurrentPlayer = g.DealerSeat
	return nil
}

func applyReshuffle(g *domain.GameState, side domain.ReshuffleSide, accept bool) error {
	kind := ActionReshuffleDecline
	if accept {
		kind = ActionReshuffleAccept
	}
	if err := requirePhase(g, kind, domain.PhaseReshuffleWindow); err != nil {
		return err
	}

	var window, used, otherWindow *bool
	var otherUsed bool
	switch side {
	case domain.SideDealer:
		window, used = &g.ReshuffleWindowFor8, &g.ReshuffleUsedBy8
		otherWindow, otherUsed = &g.ReshuffleWindowFor35, g.ReshuffleUsedBy35
	case domain.SideOthers:
		window, used = &g.ReshuffleWindowFor35, &g.ReshuffleUsedBy35
		otherWindow, otherUsed = &g.ReshuffleWindowFor8, g.ReshuffleUsedBy8
	default:
		return reject(ErrRuleViolation, kind, "unknown side %q", side)
	}
	if *used {
		return reject(ErrRuleViolation, kind, "side %s already reshuffled this hand", side)
	}
	if !*window {
		return reject(ErrWrongActor, kind, "no open reshuffle window for side %s", side)
	}

	*window = false
	if accept {
		if err := redeal(g); err != nil {
			return err
		}
		*used = true
		*otherWindow = !otherUsed
	}

	if !g.ReshuffleWindowFor8 && !g.ReshuffleWindowFor35 {
		if g.Exchange != nil && len(g.Exchange.Givings) > 0 {
			g.Phase = domain.PhaseExchangeGive
			g.CurrentPlayer = g.Exchange.Givings[0].FromSeat
		} else {
			g.Phase = domain.PhaseCutterPick
			g.CurrentPlayer = g.DealerSeat
		}
	}
	return nil
}

func countTransfers(ts []domain.ExchangeTransfer, from, to int) int {
	n := 0
	for _, t := range ts {
		if t.FromSeat == from && t.ToSeat == to {
			n++
		}
	}
	return n
}

func applyExchangeGive(g *domain.GameState, a ExchangeGiveCard) error {
	kind := ActionExchangeGiveCard
	if err := requirePhase(g, kind, domain.PhaseExchangeGive); err != nil {
		return err
	}
	ex := g.Exchange
	if ex == nil || ex.GiverIdx >= len(ex.Givings) {
		return reject(ErrWrongPhase, kind, "no pending giving")
	}
	giving := ex.Givings[ex.GiverIdx]
	if a.FromSeat != giving.FromSeat {
		return reject(ErrWrongActor, kind, "seat %d gives, got seat %d", giving.FromSeat, a.FromSeat)
	}
	card, ok := domain.FindCard(g.Hands[a.FromSeat], a.CardID)
	if !ok {
		return reject(ErrUnknownCard, kind, "seat %d does not hold %s", a.FromSeat, a.CardID)
	}

	g.Hands[a.FromSeat] = domain.RemoveCard(g.Hands[a.FromSeat], a.CardID)
	if giving.ToSeat == g.DealerSeat {
		g.DealerPendingReceived = append(g.DealerPendingReceived, card)
	} else {
		g.Hands[giving.ToSeat] = append(g.Hands[giving.ToSeat], card)
	}
	ex.Given = append(ex.Given, domain.ExchangeTransfer{FromSeat: giving.FromSeat, ToSeat: giving.ToSeat, Card: card})

	if countTransfers(ex.Given, giving.FromSeat, giving.ToSeat) < giving.Count {
		g.CurrentPlayer = giving.FromSeat
		return nil
	}
	ex.GiverIdx++
	if ex.GiverIdx < len(ex.Givings) {
		g.CurrentPlayer = ex.Givings[ex.GiverIdx].FromSeat
		return nil
	}

	for _, gv := range ex.Givings {
		if gv.ToSeat != g.DealerSeat {
			ex.SubPhase = domain.SubPhaseReturning
			g.Phase = domain.PhaseExchangeReturn
			g.CurrentPlayer = gv.ToSeat
			return nil
		}
	}
	g.Phase = domain.PhaseCutterPick
	g.CurrentPlayer = g.DealerSeat
	return nil
}

// PendingReturn finds the oldest received card seat still owes a return for,
// together with the seat that gave it.
func PendingReturn(g *domain.GameState, seat int) (int, domain.Card, bool) {
	ex := g.Exchange
	if ex == nil {
		return domain.NoSeat, domain.Card{}, false
	}
	for _, gv := range ex.Givings {
		if gv.ToSeat != seat {
			continue
		}
		done := countTransfers(ex.Returned, seat, gv.FromSeat)
		if done >= countTransfers(ex.Given, gv.FromSeat, seat) {
			continue
		}
		var received []domain.Card
		for _, t := range ex.Given {
			if t.FromSeat == gv.FromSeat && t.ToSeat == seat {
				received = append(received, t.Card)
			}
		}
		return gv.FromSeat, received[done], true
	}
	return domain.NoSeat, domain.Card{}, false
}

func applyExchangeReturn(g *domain.GameState, a ExchangeReturnCard) error {
	kind := ActionExchangeReturnCard
	if err := requirePhase(g, kind, domain.PhaseExchangeReturn); err != nil {
		return err
	}
	ex := g.Exchange
	if ex == nil {
		return reject(ErrWrongPhase, kind, "no exchange in progress")
	}
	if a.FromSeat != g.CurrentPlayer {
		return reject(ErrWrongActor, kind, "seat %d returns, got seat %d", g.CurrentPlayer, a.FromSeat)
	}

	giver, receivedCard, ok := PendingReturn(g, a.FromSeat)
	if !ok {
		return reject(ErrWrongActor, kind, "seat %d owes no return", a.FromSeat)
	}

	hand := g.Hands[a.FromSeat]
	card, ok := domain.FindCard(hand, a.CardID)
	if !ok {
		return reject(ErrUnknownCard, kind, "seat %d does not hold %s", a.FromSeat, a.CardID)
	}
	required := domain.ReturnCardFor(hand, receivedCard)
	if card.ID != required.ID {
		return reject(ErrRuleViolation, kind, "must return %s, got %s", required.ID, card.ID)
	}

	g.Hands[a.FromSeat] = domain.RemoveCard(hand, card.ID)
	switch {
	case giver == g.DealerSeat && g.Trump == nil:
		g.DealerHiddenReturns = append(g.DealerHiddenReturns, card)
	case giver == g.DealerSeat:
		g.Hands[giver] = domain.SortForDisplay(append(g.Hands[giver], card), g.Trump)
	default:
		g.Hands[giver] = append(g.Hands[giver], card)
	}
	ex.Returned = append(ex.Returned, domain.ExchangeTransfer{FromSeat: a.FromSeat, ToSeat: giver, Card: card})

	deferred := 0
	if g.Trump == nil {
		for _, gv := range ex.Givings {
			if gv.ToSeat == g.DealerSeat {
				deferred += countTransfers(ex.Given, gv.FromSeat, g.DealerSeat) - countTransfers(ex.Returned, g.DealerSeat, gv.FromSeat)
			}
		}
	}
	if len(ex.Returned)+deferred >= len(ex.Given) {
		if g.Trump != nil {
			g.Phase = domain.PhaseDealerDiscard
		} else {
			g.Phase = domain.PhaseCutterPick
		}
		g.CurrentPlayer = g.DealerSeat
		return nil
	}

	for _, gv := range ex.Givings {
		if g.Trump == nil && gv.ToSeat == g.DealerSeat {
			continue
		}
		if countTransfers(ex.Returned, gv.ToSeat, gv.FromSeat) < countTransfers(ex.Given, gv.FromSeat, gv.ToSeat) {
			g.CurrentPlayer = gv.ToSeat
			return nil
		}
	}
	g.CurrentPlayer = a.FromSeat
	return nil
}

func applyPickCutter(g *domain.GameState, a PickCutter) error {
	kind := ActionPickCutter
	if err := requirePhase(g, kind, domain.PhaseCutterPick); err != nil {
		return err
	}
	if !a.Suit.Valid() {
		return reject(ErrRuleViolation, kind, "unknown suit %q", a.Suit)
	}
	trump := a.Suit
	g.Trump = &trump

	d := g.DealerSeat
	pending := len(g.DealerPendingReceived) > 0
	hand := append(append(g.Hands[d], g.DealerHiddenReturns...), g.DealerPendingReceived...)
	g.Hands[d] = domain.SortForDisplay(hand, g.Trump)
	g.DealerHiddenReturns = nil
	g.DealerPendingReceived = nil

	if pending {
		if g.Exchange != nil {
			g.Exchange.SubPhase = domain.SubPhaseReturning
		}
		g.Phase = domain.PhaseExchangeReturn
	} else {
		g.Phase = domain.PhaseDealerDiscard
	}
	g.CurrentPlayer = d
	return nil
}

func applyDealerDiscard(g *domain.GameState, a DealerDiscard) error {
	kind := ActionDealerDiscard
	if err := requirePhase(g, kind, domain.PhaseDealerDiscard); err != nil {
		return err
	}
	if len(a.CardIDs) != domain.KittySize {
		return reject(ErrRuleViolation, kind, "must discard exactly %d cards, got %d", domain.KittySize, len(a.CardIDs))
	}
	d := g.DealerSeat
	hand := g.Hands[d]
	discarded := make([]domain.Card, 0, domain.KittySize)
	for _, id := range a.CardIDs {
		c, ok := domain.FindCard(hand, id)
		if !ok {
			return reject(ErrUnknownCard, kind, "dealer does not hold %s", id)
		}
		hand = domain.RemoveCard(hand, id)
		discarded = append(discarded, c)
	}

	kitty := g.Kitty
	g.Hands[d] = domain.SortForDisplay(append(hand, kitty...), g.Trump)
	g.DealerDiscarded = discarded
	g.DealerReceivedKitty = kitty
	g.Kitty = nil

	leader := domain.FirstTrickLeader(d)
	g.Phase = domain.PhaseTrickPlay
	g.TrickNumber = 1
	g.CurrentTrick = &domain.Trick{Leader: leader}
	g.CurrentPlayer = leader
	return nil
}

func applyPlayCard(g *domain.GameState, a PlayCard) error {
	kind := ActionPlayCard
	if err := requirePhase(g, kind, domain.PhaseTrickPlay); err != nil {
		return err
	}
	if a.Seat != g.CurrentPlayer {
		return reject(ErrWrongActor, kind, "seat %d to play, got seat %d", g.CurrentPlayer, a.Seat)
	}
	if g.CurrentTrick == nil {
		g.CurrentTrick = &domain.Trick{Leader: a.Seat}
	}
	hand := g.Hands[a.Seat]
	card, ok := domain.FindCard(hand, a.CardID)
	if !ok {
		return reject(ErrUnknownCard, kind, "seat %d does not hold %s", a.Seat, a.CardID)
	}
	trick := g.CurrentTrick
	if !domain.IsLegalPlay(hand, a.CardID, trick.LeadSuit) {
		return reject(ErrRuleViolation, kind, "must follow %s", *trick.LeadSuit)
	}

	g.Hands[a.Seat] = domain.RemoveCard(hand, a.CardID)
	if trick.LeadSuit == nil {
		lead := card.Suit
		trick.LeadSuit = &lead
	}
	trick.Cards = append(trick.Cards, domain.PlayedCard{Seat: a.Seat, Card: card})

	if len(trick.Cards) < domain.NumSeats {
		g.CurrentPlayer = domain.NextPlayerClockwise(a.Seat)
		return nil
	}

	winner, err := domain.TrickWinner(trick.Cards, *trick.LeadSuit, g.Trump)
	if err != nil {
		return err
	}
	g.TrickHistory = append(g.TrickHistory, domain.TrickResult{
		Number:   g.TrickNumber,
		Cards:    trick.Cards,
		LeadSuit: *trick.LeadSuit,
		Winner:   winner,
	})
	g.TricksTaken[winner]++

	if g.TrickNumber < domain.TricksPerHand {
		g.TrickNumber++
		g.CurrentTrick = &domain.Trick{Leader: winner}
		g.CurrentPlayer = winner
		return nil
	}

	scoreHand(g)
	return nil
}

func scoreHand(g *domain.GameState) {
	var deltas [domain.NumSeats]int
	for seat := range deltas {
		deltas[seat] = domain.HandDelta(g.TricksTaken[seat], g.Targets[seat])
		g.ScoreTotal[seat] += deltas[seat]
	}
	g.LastHandDelta = deltas
	g.CurrentTrick = nil

	var trump domain.Suit
	if g.Trump != nil {
		trump = *g.Trump
	}
	g.HandHistory = append(g.HandHistory, domain.HandRecord{
		HandNumber:  g.HandNumber,
		DealerSeat:  g.DealerSeat,
		Trump:       trump,
		TricksTaken: g.TricksTaken,
		Targets:     g.Targets,
		Deltas:      deltas,
		Tricks:      append([]domain.TrickResult(nil), g.TrickHistory...),
	})

	g.CurrentPlayer = domain.NoSeat
	if tied := domain.CheckVictory(g.ScoreTotal, g.VictoryTarget); len(tied) > 0 {
		seat, reason := domain.ApplyTieBreak(tied, deltas, g.TrickHistory)
		g.Winner = &seat
		g.WinnerReason = reason
		g.Phase = domain.PhaseGameOver
		return
	}
	g.Phase = domain.PhaseHandScoring
}

func applyNextHand(g *domain.GameState) error {
	if err := requirePhase(g, ActionNextHand, domain.PhaseHandScoring); err != nil {
		return err
	}
	g.DealerSeat = domain.NextDealer(g.DealerSeat)
	g.Targets = domain.TargetsForDealer(g.DealerSeat)
	resetHand(g)
	g.ReshuffleWindowFor8, g.ReshuffleWindowFor35 = false, false
	g.Phase = domain.PhaseSetupDeal
	g.CurrentPlayer = g.DealerSeat
	return nil
}
