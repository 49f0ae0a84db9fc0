package app

import (
	"encoding/json"
	"fmt"
	"reflect"

	"threefiveeight/internal/domain"
)

// ActionKind is the wire name of an action.
type ActionKind string

const (
	ActionShuffleDeal        ActionKind = "SHUFFLE_DEAL"
	ActionReshuffleAccept    ActionKind = "RESHUFFLE_ACCEPT"
	ActionReshuffleDecline   ActionKind = "RESHUFFLE_DECLINE"
	ActionExchangeGiveCard   ActionKind = "EXCHANGE_GIVE_CARD"
	ActionExchangeReturnCard ActionKind = "EXCHANGE_RETURN_CARD"
	ActionPickCutter         ActionKind = "PICK_CUTTER"
	ActionDealerDiscard      ActionKind = "DEALER_DISCARD_4"
	ActionPlayCard           ActionKind = "PLAY_CARD"
	ActionNextHand           ActionKind = "NEXT_HAND"
)

// Action is one player or dealer intent applied by the engine.
type Action interface {
	Kind() ActionKind
}

// ShuffleDeal shuffles and deals a new hand.
type ShuffleDeal struct{}

// ReshuffleAccept asks for a re-deal on behalf of a side.
type ReshuffleAccept struct {
	Side domain.ReshuffleSide `json:"side"`
}

// ReshuffleDecline closes a side's reshuffle window.
type ReshuffleDecline struct {
	Side domain.ReshuffleSide `json:"side"`
}

// ExchangeGiveCard gives one card to the scheduled receiver.
type ExchangeGiveCard struct {
	FromSeat int    `json:"from_seat"`
	CardID   string `json:"card_id"`
}

// ExchangeReturnCard returns the mandated card to a giver.
type ExchangeReturnCard struct {
	FromSeat int    `json:"from_seat"`
	CardID   string `json:"card_id"`
}

// PickCutter names the trump suit.
type PickCutter struct {
	Suit domain.Suit `json:"suit"`
}

// DealerDiscard sets 4 cards aside and takes the kitty.
type DealerDiscard struct {
	CardIDs []string `json:"card_ids"`
}

// PlayCard plays one card to the current trick.
type PlayCard struct {
	Seat   int    `json:"seat"`
	CardID string `json:"card_id"`
}

// NextHand rotates the dealer and waits for the next deal.
type NextHand struct{}

func (ShuffleDeal) Kind() ActionKind        { return ActionShuffleDeal }
func (ReshuffleAccept) Kind() ActionKind    { return ActionReshuffleAccept }
func (ReshuffleDecline) Kind() ActionKind   { return ActionReshuffleDecline }
func (ExchangeGiveCard) Kind() ActionKind   { return ActionExchangeGiveCard }
func (ExchangeReturnCard) Kind() ActionKind { return ActionExchangeReturnCard }
func (PickCutter) Kind() ActionKind         { return ActionPickCutter }
func (DealerDiscard) Kind() ActionKind      { return ActionDealerDiscard }
func (PlayCard) Kind() ActionKind           { return ActionPlayCard }
func (NextHand) Kind() ActionKind           { return ActionNextHand }

// Envelope is the JSON wire form of an action.
type Envelope struct {
	Type    ActionKind      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// DecodeAction builds the concrete action named by kind from its JSON payload.
func DecodeAction(kind ActionKind, payload json.RawMessage) (Action, error) {
	var a Action
	switch kind {
	case ActionShuffleDeal:
		return ShuffleDeal{}, nil
	case ActionNextHand:
		return NextHand{}, nil
	case ActionReshuffleAccept:
		a = &ReshuffleAccept{}
	case ActionReshuffleDecline:
		a = &ReshuffleDecline{}
	case ActionExchangeGiveCard:
		a = &ExchangeGiveCard{}
	case ActionExchangeReturnCard:
		a = &ExchangeReturnCard{}
	case ActionPickCutter:
		a = &PickCutter{}
	case ActionDealerDiscard:
		a = &DealerDiscard{}
	case ActionPlayCard:
		a = &PlayCard{}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, kind)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: %s requires a payload", ErrUnknownAction, kind)
	}
	if err := json.Unmarshal(payload, a); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", kind, err)
	}
	v, _ := deref(a)
	return v, nil
}

// EncodeAction is the inverse of DecodeAction.
func EncodeAction(a Action) (Envelope, error) {
	a, ok := deref(a)
	if !ok {
		return Envelope{}, fmt.Errorf("%w: nil action", ErrUnknownAction)
	}
	env := Envelope{Type: a.Kind()}
	switch a.(type) {
	case ShuffleDeal, NextHand:
		return env, nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return Envelope{}, err
	}
	env.Payload = b
	return env, nil
}

// deref turns a pointer action into its value form. It reports false for a
// nil action or a nil pointer.
func deref(a Action) (Action, bool) {
	if a == nil {
		return nil, false
	}
	rv := reflect.ValueOf(a)
	if rv.Kind() != reflect.Pointer {
		return a, true
	}
	if rv.IsNil() {
		return nil, false
	}
	v, ok := rv.Elem().Interface().(Action)
	return v, ok
}
