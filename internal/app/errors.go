package app

import (
	"errors"
	"fmt"
)

var (
	ErrWrongPhase     = errors.New("action not allowed in current phase")
	ErrWrongActor     = errors.New("not this seat's turn")
	ErrUnknownCard    = errors.New("card not held by actor")
	ErrRuleViolation  = errors.New("rule violation")
	ErrInvalidPlayers = errors.New("exactly 3 players required")
	ErrUnknownAction  = errors.New("unknown action")
)

// ActionError is a rejected action. Unwrap yields one of the sentinel errors above.
type ActionError struct {
	Kind   error
	Action ActionKind
	Msg    string
}

func (e *ActionError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %v", e.Action, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %s", e.Action, e.Kind, e.Msg)
}

func (e *ActionError) Unwrap() error { return e.Kind }

func reject(kind error, action ActionKind, format string, args ...any) error {
	return &ActionError{Kind: kind, Action: action, Msg: fmt.Sprintf(format, args...)}
}
