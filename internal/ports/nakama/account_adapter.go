package nakama

import (
	"context"

	"threefiveeight/internal/ports"
)

// AccountUpdater is the subset of runtime.NakamaModule used to edit profiles.
type AccountUpdater interface {
	AccountUpdateId(ctx context.Context, userID, username string, metadata map[string]interface{}, displayName, timezone, location, langTag, avatarUrl string) error
}

// NakamaAccountAdapter implements ports.AccountPort using Nakama's account API.
type NakamaAccountAdapter struct {
	accounts AccountUpdater
}

// NewNakamaAccountAdapter creates a new account adapter.
func NewNakamaAccountAdapter(accounts AccountUpdater) *NakamaAccountAdapter {
	return &NakamaAccountAdapter{accounts: accounts}
}

// UpdateProfile writes the profile fields. Nakama keeps fields passed empty.
func (a *NakamaAccountAdapter) UpdateProfile(ctx context.Context, userID, username, displayName string, metadata map[string]interface{}) error {
	return a.accounts.AccountUpdateId(ctx, userID, username, metadata, displayName, "", "", "", "")
}

var _ ports.AccountPort = (*NakamaAccountAdapter)(nil)
