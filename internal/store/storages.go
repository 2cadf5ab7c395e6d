package store

import (
	"context"
	"fmt"

	"github.com/voxai-app/voxai/internal/config"
	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/migrations"
)

// Storages groups all server-side repositories into a single value that is
// passed to the service layer.
type Storages struct {
	UserRepository   UserRepository
	SchemeRepository SchemeRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// wires up the repositories.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		SchemeRepository: NewSchemeRepository(db, log),
	}, nil
}
