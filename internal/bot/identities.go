package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"
)

// BotIdentity is one entry of the bot account pool.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Level       string `json:"level"` // "basic" or "pro"
}

// fallbackPrefix starts the user ids generated while the pool is empty.
const fallbackPrefix = "bot-"

var (
	identityMu    sync.RWMutex
	botIdentities []BotIdentity
	readyBots     []BotIdentity
	botsByID      map[string]BotIdentity
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// LoadIdentities loads the bot profiles from the given path once.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		var pool []BotIdentity
		if err := json.Unmarshal(data, &pool); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal bot identities: %w", err)
			return
		}
		SetIdentities(pool)
	})
	return loadErr
}

// SetIdentities replaces the pool. Entries without a user id are kept for
// provisioning but cannot be looked up yet.
func SetIdentities(pool []BotIdentity) {
	identityMu.Lock()
	defer identityMu.Unlock()
	botIdentities = append([]BotIdentity(nil), pool...)
	botsByID = make(map[string]BotIdentity)
	readyBots = nil
	for _, identity := range botIdentities {
		if identity.UserID != "" {
			botsByID[identity.UserID] = identity
			readyBots = append(readyBots, identity)
		}
	}
}

// ProvisionBots ensures that bot accounts exist in the Nakama database and carry
// the is_bot metadata.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) {
	provisionOnce.Do(func() {
		identityMu.Lock()
		pool := append([]BotIdentity(nil), botIdentities...)
		identityMu.Unlock()

		for i := range pool {
			identity := &pool[i]
			if identity.DeviceID == "" {
				continue
			}
			userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
			if err != nil {
				logger.Error("ProvisionBots: failed to authenticate bot %s: %v", identity.Username, err)
				continue
			}
			identity.UserID = userID
			identity.Username = username

			metadata := map[string]interface{}{
				"is_bot": true,
				"level":  identity.Level,
			}
			if err := nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
				logger.Warn("ProvisionBots: failed to update bot account %s: %v", userID, err)
			}
			logger.Info("ProvisionBots: bot %s (%s) is ready, level %s", identity.DisplayName, userID, identity.Level)
		}
		SetIdentities(pool)
	})
}

// GetBotIdentity returns the provisioned identity at index (mod pool size), or
// a generated one when no pooled bot has a user id yet.
func GetBotIdentity(index int) BotIdentity {
	identityMu.RLock()
	defer identityMu.RUnlock()
	if len(readyBots) == 0 {
		return BotIdentity{
			UserID:      fmt.Sprintf("%s%d", fallbackPrefix, index),
			Username:    fmt.Sprintf("bot%d", index),
			DisplayName: fmt.Sprintf("AI Player %d", index+1),
		}
	}
	return readyBots[index%len(readyBots)]
}

// IsBot reports whether the given user ID belongs to the bot pool, or is a
// generated bot id while no pooled bot is provisioned.
func IsBot(userID string) bool {
	identityMu.RLock()
	defer identityMu.RUnlock()
	if len(readyBots) == 0 {
		return strings.HasPrefix(userID, fallbackPrefix)
	}
	_, ok := botsByID[userID]
	return ok
}

// GetBotDisplayName returns the display name for a bot ID, falling back to its
// username, or an empty string if the ID is not a bot.
func GetBotDisplayName(userID string) string {
	identityMu.RLock()
	defer identityMu.RUnlock()
	identity, ok := botsByID[userID]
	if !ok {
		return ""
	}
	if identity.DisplayName != "" {
		return identity.DisplayName
	}
	return identity.Username
}

// LevelOf returns the configured level of a pooled bot, or fallback.
func LevelOf(identity BotIdentity, fallback BotLevel) BotLevel {
	if identity.Level == "" {
		return fallback
	}
	level, err := ParseLevel(identity.Level)
	if err != nil {
		return fallback
	}
	return level
}
