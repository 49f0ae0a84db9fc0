package ports

import "context"

// AccountPort defines the interface for updating account profiles.
type AccountPort interface {
	// UpdateProfile sets the username, display name and metadata of userID.
	// Empty strings leave the field unchanged on the Nakama side.
	UpdateProfile(ctx context.Context, userID, username, displayName string, metadata map[string]interface{}) error
}
