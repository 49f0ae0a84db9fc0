package internal

// Stage describes how far a hand has progressed for play decisions.
type Stage int

const (
	// StageOpening is the first trick of the hand.
	StageOpening Stage = iota
	// StageMiddle covers every trick outside the opening and the endgame window.
	StageMiddle
	// StageEndgame covers the last window tricks of the hand.
	StageEndgame
)

func (s Stage) String() string {
	switch s {
	case StageOpening:
		return "opening"
	case StageEndgame:
		return "endgame"
	default:
		return "middle"
	}
}

// DetectStage classifies a hand from the number of tricks still to play,
// counting the current one.
func DetectStage(tricksLeft, tricksPerHand, window int) Stage {
	switch {
	case tricksLeft <= window:
		return StageEndgame
	case tricksLeft >= tricksPerHand:
		return StageOpening
	default:
		return StageMiddle
	}
}
