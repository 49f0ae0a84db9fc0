package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients when requesting a lobby-capable match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// MatchFinder is the subset of runtime.NakamaModule quick match needs.
type MatchFinder interface {
	MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize, maxSize *int, query string) ([]*api.Match, error)
	MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error)
}

// quickMatchQuery finds lobbies of this game that still have a free seat.
var quickMatchQuery = fmt.Sprintf("+label.%s:%s +label.%s:%s +label.%s:>=1",
	MatchLabelKey_Game, LabelGame, MatchLabelKey_Phase, PhaseLobby, MatchLabelKey_OpenSeats)

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return quickMatch(ctx, logger, nk)
}

func quickMatch(ctx context.Context, logger runtime.Logger, finder MatchFinder) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	minSize := 1
	maxSize := 2 // a third player fills the table
	matches, err := finder.MatchList(ctx, 10, true, "", &minSize, &maxSize, quickMatchQuery)
	if err != nil {
		logger.Error("QuickMatch [User:%s]: Failed to list matches: %v", userID, err)
		return "", err
	}

	resp := QuickMatchResponse{}
	if len(matches) > 0 {
		resp.MatchID = matches[0].MatchId
		logger.Info("QuickMatch [User:%s]: Found existing match %s", userID, resp.MatchID)
	} else {
		// Seat and owner assignment happen in MatchJoin.
		resp.MatchID, err = finder.MatchCreate(ctx, MatchName358, map[string]interface{}{})
		if err != nil {
			logger.Error("QuickMatch [User:%s]: Failed to create match: %v", userID, err)
			return "", err
		}
		resp.IsNew = true
		logger.Info("QuickMatch [User:%s]: Created new match %s", userID, resp.MatchID)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
