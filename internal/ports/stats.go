package ports

import "context"

// PlayerStats is the per-user record of finished games.
type PlayerStats struct {
	Games      int `json:"games"`
	Wins       int `json:"wins"`
	Hands      int `json:"hands"`
	TotalScore int `json:"total_score"`
	BestScore  int `json:"best_score"`
}

// GameOutcome is one seat's result at the end of a game.
type GameOutcome struct {
	UserID string
	Won    bool
	Score  int
	Hands  int
}

// Apply folds one outcome into s.
func (s PlayerStats) Apply(o GameOutcome) PlayerStats {
	if s.Games == 0 || o.Score > s.BestScore {
		s.BestScore = o.Score
	}
	s.Games++
	if o.Won {
		s.Wins++
	}
	s.Hands += o.Hands
	s.TotalScore += o.Score
	return s
}

// StatsPort stores player statistics.
type StatsPort interface {
	// InitStats creates an empty record. created is false when one already exists.
	InitStats(ctx context.Context, userID string) (created bool, err error)

	// GetStats returns the record of userID, zero if none was written yet.
	GetStats(ctx context.Context, userID string) (PlayerStats, error)

	// RecordGame folds the outcomes of a finished game into each user's record.
	RecordGame(ctx context.Context, outcomes []GameOutcome) error
}
