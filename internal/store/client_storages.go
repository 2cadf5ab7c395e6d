package store

import (
	"context"
	"fmt"

	"github.com/voxai-app/voxai/internal/config"
	"github.com/voxai-app/voxai/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// passed around the client runtime. Currently it holds only the session
// repository.
type ClientStorages struct {
	// SessionRepository is the SQLite-backed store for the persisted
	// session (token + user projection).
	SessionRepository SessionRepository
}

// NewClientStorages opens the local SQLite database at cfg.DB.DSN
// (creating the file if needed), runs pending schema migrations, and wires
// a fresh [SessionRepository].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, logger),
	}, nil
}
