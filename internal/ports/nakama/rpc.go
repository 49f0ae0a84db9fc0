package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/heroiclabs/nakama-common/runtime"

	"threefiveeight/internal/ports"
)

var errNoSession = runtime.NewError("no user session", 16) // UNAUTHENTICATED

// PlayerStatsRequest optionally names another user to look up.
type PlayerStatsRequest struct {
	UserID string `json:"user_id"`
}

// PlayerStatsResponse is returned by the player_stats RPC.
type PlayerStatsResponse struct {
	UserID string `json:"user_id"`
	ports.PlayerStats
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcPlayerStats, rpcPlayerStats)
}

func rpcPlayerStats(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	return playerStats(ctx, logger, NewNakamaStatsAdapter(nk), payload)
}

func playerStats(ctx context.Context, logger runtime.Logger, stats ports.StatsPort, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if payload != "" {
		var req PlayerStatsRequest
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return "", runtime.NewError("invalid payload", 3) // INVALID_ARGUMENT
		}
		if req.UserID != "" {
			userID = req.UserID
		}
	}
	if userID == "" {
		return "", errNoSession
	}

	record, err := stats.GetStats(ctx, userID)
	if err != nil {
		logger.Error("PlayerStats [User:%s]: %v", userID, err)
		return "", errors.New("failed to load player stats")
	}
	b, err := json.Marshal(PlayerStatsResponse{UserID: userID, PlayerStats: record})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
