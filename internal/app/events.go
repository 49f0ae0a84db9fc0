package app

import "threefiveeight/internal/domain"

// EventKind identifies emitted game events for host dispatch.
type EventKind string

const (
	EventHandDealt         EventKind = "hand_dealt"
	EventReshuffleResolved EventKind = "reshuffle_resolved"
	EventExchangeGiven     EventKind = "exchange_card_given"
	EventExchangeReturned  EventKind = "exchange_card_returned"
	EventCutterPicked      EventKind = "cutter_picked"
	EventDealerDiscarded   EventKind = "dealer_discarded"
	EventCardPlayed        EventKind = "card_played"
	EventTrickCompleted    EventKind = "trick_completed"
	EventHandScored        EventKind = "hand_scored"
	EventGameOver          EventKind = "game_over"
	EventNextHand          EventKind = "next_hand"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seats; empty means broadcast
}

type HandDealtPayload struct {
	HandNumber int           `json:"hand_number"`
	Seat       int           `json:"seat"`
	Target     int           `json:"target"`
	Hand       []domain.Card `json:"hand"`
	Redeal     bool          `json:"redeal"`
}

type ReshuffleResolvedPayload struct {
	Side     domain.ReshuffleSide `json:"side"`
	Accepted bool                 `json:"accepted"`
	Phase    domain.Phase         `json:"phase"`
}

// ExchangeCardPayload carries a card only to the two seats involved.
type ExchangeCardPayload struct {
	FromSeat int          `json:"from_seat"`
	ToSeat   int          `json:"to_seat"`
	Card     *domain.Card `json:"card,omitempty"`
}

type CutterPickedPayload struct {
	DealerSeat int         `json:"dealer_seat"`
	Suit       domain.Suit `json:"suit"`
}

type DealerDiscardedPayload struct {
	DealerSeat int `json:"dealer_seat"`
}

type CardPlayedPayload struct {
	Seat       int         `json:"seat"`
	Card       domain.Card `json:"card"`
	TrickNum   int         `json:"trick_number"`
	NextPlayer int         `json:"next_player"`
}

type TrickCompletedPayload struct {
	Trick       domain.TrickResult   `json:"trick"`
	TricksTaken [domain.NumSeats]int `json:"tricks_taken"`
}

type HandScoredPayload struct {
	Record     domain.HandRecord    `json:"record"`
	ScoreTotal [domain.NumSeats]int `json:"score_total"`
}

type GameOverPayload struct {
	Winner     int                  `json:"winner"`
	Reason     string               `json:"reason"`
	ScoreTotal [domain.NumSeats]int `json:"score_total"`
}

type NextHandPayload struct {
	DealerSeat int                  `json:"dealer_seat"`
	Targets    [domain.NumSeats]int `json:"targets"`
}
