package brain

import (
	"threefiveeight/internal/domain"
)

// OpponentProfile tracks what a seat has revealed during the hand.
type OpponentProfile struct {
	Seat   int
	Target int
	Tricks int
	// Voids marks suits the seat failed to follow, by suit index.
	Voids [4]bool
}

// NewOpponentProfile initializes a profile for a specific seat.
func NewOpponentProfile(seat int) *OpponentProfile {
	return &OpponentProfile{Seat: seat}
}

// MarkVoid notes that the seat holds no card of suit.
func (p *OpponentProfile) MarkVoid(suit domain.Suit) {
	if i := suit.Index(); i >= 0 {
		p.Voids[i] = true
	}
}

// IsVoid reports whether the seat is known to hold no card of suit.
func (p *OpponentProfile) IsVoid(suit domain.Suit) bool {
	i := suit.Index()
	return i >= 0 && p.Voids[i]
}

// Needed is the number of tricks the seat still needs to reach its target.
func (p *OpponentProfile) Needed() int {
	return max(0, p.Target-p.Tricks)
}

// Over reports whether the seat has reached its target.
func (p *OpponentProfile) Over() bool {
	return p.Tricks >= p.Target
}
