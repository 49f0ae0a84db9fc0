package nakama

import (
	"encoding/json"
	"errors"

	"threefiveeight/internal/app"
	"threefiveeight/internal/domain"
)

// SeatInfo describes one seat in the OpSeats snapshot.
type SeatInfo struct {
	Seat        int    `json:"seat"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	IsBot       bool   `json:"is_bot"`
	IsOwner     bool   `json:"is_owner"`
	Connected   bool   `json:"connected"`
}

// SeatsSnapshot is sent on OpSeats whenever the seating changes.
type SeatsSnapshot struct {
	Seats     []SeatInfo `json:"seats"`
	OwnerSeat int        `json:"owner_seat"`
	Phase     string     `json:"phase"`
	Tick      int64      `json:"tick"`
}

// StateViewMessage carries one seat's redacted game state on OpStateView.
type StateViewMessage struct {
	Seat  int               `json:"seat"`
	State *domain.GameState `json:"state"`
}

// EventMessage wraps an engine event for OpGameEvent.
type EventMessage struct {
	Kind    app.EventKind `json:"kind"`
	Payload any           `json:"payload,omitempty"`
}

// ErrorMessage is sent privately on OpError.
type ErrorMessage struct {
	Code    int    `json:"code"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message"`
}

// VoteRequest is the OpReshuffleVote payload.
type VoteRequest struct {
	Accept bool `json:"accept"`
}

// VoteStatus reports the side-35 vote on OpVoteStatus.
type VoteStatus struct {
	Votes    map[int]bool `json:"votes"`
	Settled  bool         `json:"settled"`
	Accepted bool         `json:"accepted"`
}

// decodeEnvelope parses an OpAction payload into an engine action.
func decodeEnvelope(data []byte) (app.Action, error) {
	var env app.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return app.DecodeAction(env.Type, env.Payload)
}

// errorReason maps engine rejections to stable machine-readable reasons.
func errorReason(err error) string {
	switch {
	case errors.Is(err, app.ErrWrongPhase):
		return "wrong_phase"
	case errors.Is(err, app.ErrWrongActor):
		return "wrong_actor"
	case errors.Is(err, app.ErrUnknownCard):
		return "unknown_card"
	case errors.Is(err, app.ErrRuleViolation):
		return "rule_violation"
	case errors.Is(err, app.ErrUnknownAction):
		return "unknown_action"
	default:
		return ""
	}
}

// actingSeat returns the seat an action is taken for, or NoSeat for the
// side-35 reshuffle, which is decided by vote.
func actingSeat(g *domain.GameState, a app.Action) int {
	switch v := a.(type) {
	case app.ExchangeGiveCard:
		return v.FromSeat
	case app.ExchangeReturnCard:
		return v.FromSeat
	case app.PlayCard:
		return v.Seat
	case app.ReshuffleAccept:
		if v.Side == domain.SideOthers {
			return domain.NoSeat
		}
	case app.ReshuffleDecline:
		if v.Side == domain.SideOthers {
			return domain.NoSeat
		}
	}
	return g.DealerSeat
}
