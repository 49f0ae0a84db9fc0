package nakama

import (
	"context"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"

	"threefiveeight/internal/ports"
)

// LeaderboardWriter is the subset of runtime.NakamaModule used to publish wins.
type LeaderboardWriter interface {
	LeaderboardRecordWrite(ctx context.Context, id, ownerID, username string, score, subscore int64, metadata map[string]interface{}, overrideOperator *int) (*api.LeaderboardRecord, error)
}

// NakamaLeaderboardAdapter implements ports.ResultsPort on the wins leaderboard.
type NakamaLeaderboardAdapter struct {
	lb LeaderboardWriter
	id string
}

// NewNakamaLeaderboardAdapter creates an adapter writing to leaderboard id.
func NewNakamaLeaderboardAdapter(lb LeaderboardWriter, id string) *NakamaLeaderboardAdapter {
	return &NakamaLeaderboardAdapter{lb: lb, id: id}
}

// RecordWin increments the win count of userID. The leaderboard is created
// with the incr operator, so each record write adds one.
func (a *NakamaLeaderboardAdapter) RecordWin(ctx context.Context, userID, username string, metadata map[string]interface{}) error {
	if userID == "" {
		return fmt.Errorf("userID is required")
	}
	if _, err := a.lb.LeaderboardRecordWrite(ctx, a.id, userID, username, 1, 0, metadata, nil); err != nil {
		return fmt.Errorf("failed to record win for user %s: %w", userID, err)
	}
	return nil
}

// createWinsLeaderboard creates the authoritative wins leaderboard if missing.
func createWinsLeaderboard(ctx context.Context, nk runtime.NakamaModule) error {
	metadata := map[string]interface{}{"game": LabelGame}
	return nk.LeaderboardCreate(ctx, LeaderboardWins, true, "desc", "incr", "", metadata, true)
}

var _ ports.ResultsPort = (*NakamaLeaderboardAdapter)(nil)
