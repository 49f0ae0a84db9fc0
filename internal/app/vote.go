package app

import "threefiveeight/internal/domain"

// SideVote collects the two non-dealer votes behind a side-35 reshuffle. A
// single decline settles the vote; an accept needs both seats.
type SideVote struct {
	Dealer int
	votes  map[int]bool
}

// NewSideVote starts an empty vote for the hand dealt by dealer.
func NewSideVote(dealer int) *SideVote {
	return &SideVote{Dealer: dealer, votes: make(map[int]bool)}
}

// Cast records the vote of seat. The dealer does not vote on side 35.
func (v *SideVote) Cast(seat int, accept bool) bool {
	if seat == v.Dealer || seat < 0 || seat >= domain.NumSeats {
		return false
	}
	v.votes[seat] = accept
	return true
}

// Voted reports whether seat already voted.
func (v *SideVote) Voted(seat int) bool {
	_, ok := v.votes[seat]
	return ok
}

// Votes returns a copy of the votes cast so far.
func (v *SideVote) Votes() map[int]bool {
	out := make(map[int]bool, len(v.votes))
	for s, a := range v.votes {
		out[s] = a
	}
	return out
}

// Outcome returns the side-35 action once the vote is settled.
func (v *SideVote) Outcome() (Action, bool) {
	accepts := 0
	for _, a := range v.votes {
		if !a {
			return ReshuffleDecline{Side: domain.SideOthers}, true
		}
		accepts++
	}
	if accepts == domain.NumSeats-1 {
		return ReshuffleAccept{Side: domain.SideOthers}, true
	}
	return nil, false
}

// Reset clears the votes, e.g. after a redeal reopened the window.
func (v *SideVote) Reset(dealer int) {
	v.Dealer = dealer
	v.votes = make(map[int]bool)
}
