package ports

import "context"

// ResultsPort publishes game wins, e.g. to a leaderboard.
type ResultsPort interface {
	// RecordWin adds one win for userID. metadata is stored next to the record.
	RecordWin(ctx context.Context, userID, username string, metadata map[string]interface{}) error
}
