package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"

	"threefiveeight/internal/ports"
)

const (
	statsCollection = "player_stats"
	statsKey        = "v1"
	// statsWriteAttempts bounds the optimistic read-modify-write retries.
	statsWriteAttempts = 3
)

// StatsStorage is the subset of runtime.NakamaModule the stats adapter needs.
type StatsStorage interface {
	StorageRead(ctx context.Context, reads []*runtime.StorageRead) ([]*api.StorageObject, error)
	StorageWrite(ctx context.Context, writes []*runtime.StorageWrite) ([]*api.StorageObjectAck, error)
}

// NakamaStatsAdapter keeps player statistics in Nakama storage, one object per user.
type NakamaStatsAdapter struct {
	store StatsStorage
}

// NewNakamaStatsAdapter creates a new stats adapter.
func NewNakamaStatsAdapter(store StatsStorage) *NakamaStatsAdapter {
	return &NakamaStatsAdapter{store: store}
}

// InitStats writes an empty record unless one exists.
func (a *NakamaStatsAdapter) InitStats(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, fmt.Errorf("userID is required")
	}
	err := a.write(ctx, userID, ports.PlayerStats{}, "*")
	if err != nil {
		if errors.Is(err, runtime.ErrStorageRejectedVersion) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create player stats: %w", err)
	}
	return true, nil
}

// GetStats reads the record of userID.
func (a *NakamaStatsAdapter) GetStats(ctx context.Context, userID string) (ports.PlayerStats, error) {
	stats, _, err := a.read(ctx, userID)
	return stats, err
}

// RecordGame updates each user's record with a version-checked write.
func (a *NakamaStatsAdapter) RecordGame(ctx context.Context, outcomes []ports.GameOutcome) error {
	for _, o := range outcomes {
		if err := a.recordOne(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func (a *NakamaStatsAdapter) recordOne(ctx context.Context, o ports.GameOutcome) error {
	var err error
	for attempt := 0; attempt < statsWriteAttempts; attempt++ {
		var (
			stats   ports.PlayerStats
			version string
		)
		stats, version, err = a.read(ctx, o.UserID)
		if err != nil {
			return err
		}
		if version == "" {
			version = "*"
		}
		err = a.write(ctx, o.UserID, stats.Apply(o), version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, runtime.ErrStorageRejectedVersion) {
			break
		}
	}
	return fmt.Errorf("failed to record game for user %s: %w", o.UserID, err)
}

func (a *NakamaStatsAdapter) read(ctx context.Context, userID string) (ports.PlayerStats, string, error) {
	objects, err := a.store.StorageRead(ctx, []*runtime.StorageRead{
		{Collection: statsCollection, Key: statsKey, UserID: userID},
	})
	if err != nil {
		return ports.PlayerStats{}, "", fmt.Errorf("failed to read player stats: %w", err)
	}
	if len(objects) == 0 {
		return ports.PlayerStats{}, "", nil
	}
	var stats ports.PlayerStats
	if err := json.Unmarshal([]byte(objects[0].GetValue()), &stats); err != nil {
		return ports.PlayerStats{}, "", fmt.Errorf("failed to unmarshal player stats: %w", err)
	}
	return stats, objects[0].GetVersion(), nil
}

func (a *NakamaStatsAdapter) write(ctx context.Context, userID string, stats ports.PlayerStats, version string) error {
	value, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal player stats: %w", err)
	}
	_, err = a.store.StorageWrite(ctx, []*runtime.StorageWrite{
		{
			Collection:      statsCollection,
			Key:             statsKey,
			UserID:          userID,
			Value:           string(value),
			Version:         version,
			PermissionRead:  runtime.STORAGE_PERMISSION_PUBLIC_READ,
			PermissionWrite: runtime.STORAGE_PERMISSION_NO_WRITE,
		},
	})
	return err
}

var _ ports.StatsPort = (*NakamaStatsAdapter)(nil)
