package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/models"
)

// ErrLocalSessionNotFound is returned by [SessionRepository.Get] when no
// session is persisted locally.
var ErrLocalSessionNotFound = errors.New("local session not found")

const (
	saveSession = `INSERT INTO session (id, token, user_json)
    VALUES (1, $1, $2)
    ON CONFLICT (id) DO UPDATE SET token = excluded.token, user_json = excluded.user_json, saved_at = CURRENT_TIMESTAMP;`

	getSession = `SELECT token, user_json FROM session WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The session table carries at most one row (id = 1);
// the upsert keeps Save idempotent and atomic.
type sessionRepository struct {
	logger *logger.Logger
	db     *ClientDB
}

func NewSessionRepository(db *ClientDB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Save persists token and the user projection together. A single upsert
// statement replaces both values, so there is no window in which only one
// of them is visible.
func (r *sessionRepository) Save(ctx context.Context, token string, user models.UserInfo) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user projection: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, saveSession, token, string(userJSON)); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Save").Msg("error: saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) Get(ctx context.Context) (string, models.UserInfo, error) {
	var token, userJSON string

	row := r.db.QueryRowContext(ctx, getSession)
	if err := row.Scan(&token, &userJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.UserInfo{}, ErrLocalSessionNotFound
		}
		r.logger.Err(err).Str("func", "*sessionRepository.Get").Msg("error: scanning session")
		return "", models.UserInfo{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	var user models.UserInfo
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		// A corrupt projection makes the whole session unusable.
		return "", models.UserInfo{}, fmt.Errorf("unmarshal user projection: %w", err)
	}

	return token, user, nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Clear").Msg("error: clearing session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
