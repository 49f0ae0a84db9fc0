// Command nakama is built as a Nakama Go plugin (-buildmode=plugin).
package main

import (
	"context"
	"database/sql"

	"github.com/heroiclabs/nakama-common/runtime"

	"threefiveeight/internal/ports/nakama"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// InitModule proxies Nakama initialization to the nakama adapter package.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	logger.WithField("version", version).Info("Loading 3-5-8 plugin.")
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}
