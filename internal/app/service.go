package app

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"threefiveeight/internal/domain"
)

// Service wraps the reducer with game creation randomness and event derivation.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// CreateGame fills a missing game id, dealer and seed before creating the game.
func (s *Service) CreateGame(opts GameOptions) (*domain.GameState, error) {
	if opts.GameID == "" {
		opts.GameID = uuid.NewString()
	}
	if opts.Dealer == nil {
		d := s.rng.Intn(domain.NumSeats)
		opts.Dealer = &d
	}
	if opts.Seed == 0 {
		opts.Seed = s.rng.Int63()
	}
	return CreateGame(opts)
}

// Apply runs the reducer and describes the transition as events.
func (s *Service) Apply(state *domain.GameState, action Action) (*domain.GameState, []Event, error) {
	next, err := ApplyAction(state, action)
	if err != nil {
		return nil, nil, err
	}
	act, _ := deref(action)
	return next, deriveEvents(state, next, act), nil
}

func deriveEvents(prev, next *domain.GameState, action Action) []Event {
	var events []Event
	switch a := action.(type) {
	case ShuffleDeal:
		events = append(events, dealtEvents(next, false)...)
	case ReshuffleAccept:
		events = append(events, Event{Kind: EventReshuffleResolved, Payload: ReshuffleResolvedPayload{Side: a.Side, Accepted: true, Phase: next.Phase}})
		events = append(events, dealtEvents(next, true)...)
	case ReshuffleDecline:
		events = append(events, Event{Kind: EventReshuffleResolved, Payload: ReshuffleResolvedPayload{Side: a.Side, Phase: next.Phase}})
	case ExchangeGiveCard:
		t := next.Exchange.Given[len(next.Exchange.Given)-1]
		events = append(events, exchangeEvents(EventExchangeGiven, t, next)...)
	case ExchangeReturnCard:
		t := next.Exchange.Returned[len(next.Exchange.Returned)-1]
		events = append(events, exchangeEvents(EventExchangeReturned, t, next)...)
	case PickCutter:
		events = append(events, Event{Kind: EventCutterPicked, Payload: CutterPickedPayload{DealerSeat: next.DealerSeat, Suit: a.Suit}})
		if len(prev.DealerHiddenReturns)+len(prev.DealerPendingReceived) > 0 {
			events = append(events, Event{
				Kind:       EventHandDealt,
				Payload:    HandDealtPayload{HandNumber: next.HandNumber, Seat: next.DealerSeat, Target: next.Targets[next.DealerSeat], Hand: next.Hands[next.DealerSeat]},
				Recipients: []int{next.DealerSeat},
			})
		}
	case DealerDiscard:
		events = append(events, Event{Kind: EventDealerDiscarded, Payload: DealerDiscardedPayload{DealerSeat: next.DealerSeat}})
	case PlayCard:
		events = append(events, playEvents(prev, next, a)...)
	case NextHand:
		events = append(events, Event{Kind: EventNextHand, Payload: NextHandPayload{DealerSeat: next.DealerSeat, Targets: next.Targets}})
	}
	return events
}

func dealtEvents(g *domain.GameState, redeal bool) []Event {
	events := make([]Event, 0, domain.NumSeats)
	for seat, hand := range g.Hands {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				HandNumber: g.HandNumber,
				Seat:       seat,
				Target:     g.Targets[seat],
				Hand:       hand,
				Redeal:     redeal,
			},
			Recipients: []int{seat},
		})
	}
	return events
}

// exchangeEvents shows the card to the seats that may see it. The dealer does
// not see exchange cards until the cutter is picked.
func exchangeEvents(kind EventKind, t domain.ExchangeTransfer, g *domain.GameState) []Event {
	card := t.Card
	seeing := []int{t.FromSeat}
	var blind []int
	if t.ToSeat == g.DealerSeat && g.Trump == nil {
		blind = append(blind, t.ToSeat)
	} else {
		seeing = append(seeing, t.ToSeat)
	}
	blind = append(blind, domain.NumSeats-t.FromSeat-t.ToSeat)
	return []Event{
		{Kind: kind, Payload: ExchangeCardPayload{FromSeat: t.FromSeat, ToSeat: t.ToSeat, Card: &card}, Recipients: seeing},
		{Kind: kind, Payload: ExchangeCardPayload{FromSeat: t.FromSeat, ToSeat: t.ToSeat}, Recipients: blind},
	}
}

func playEvents(prev, next *domain.GameState, a PlayCard) []Event {
	card, _ := domain.FindCard(prev.Hands[a.Seat], a.CardID)
	events := []Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Seat: a.Seat, Card: card, TrickNum: prev.TrickNumber, NextPlayer: next.CurrentPlayer},
	}}
	if len(next.TrickHistory) > len(prev.TrickHistory) {
		events = append(events, Event{
			Kind:    EventTrickCompleted,
			Payload: TrickCompletedPayload{Trick: next.TrickHistory[len(next.TrickHistory)-1], TricksTaken: next.TricksTaken},
		})
	}
	if len(next.HandHistory) > len(prev.HandHistory) {
		events = append(events, Event{
			Kind:    EventHandScored,
			Payload: HandScoredPayload{Record: next.HandHistory[len(next.HandHistory)-1], ScoreTotal: next.ScoreTotal},
		})
	}
	if next.Phase == domain.PhaseGameOver && next.Winner != nil {
		events = append(events, Event{
			Kind:    EventGameOver,
			Payload: GameOverPayload{Winner: *next.Winner, Reason: next.WinnerReason, ScoreTotal: next.ScoreTotal},
		})
	}
	return events
}
