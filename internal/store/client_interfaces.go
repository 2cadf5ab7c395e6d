package store

import (
	"context"

	"github.com/voxai-app/voxai/models"
)

// SessionRepository persists the client's single session: the raw token
// string and the cached public user projection.
//
// Implementations must treat the pair as one unit — Save writes both in a
// single transaction and Clear removes both, so a reader can never observe
// a token without its projection or vice versa.
type SessionRepository interface {
	// Save stores the token and user projection, replacing any previous
	// session.
	Save(ctx context.Context, token string, user models.UserInfo) error

	// Get returns the persisted session, or ErrLocalSessionNotFound if
	// none is stored.
	Get(ctx context.Context) (string, models.UserInfo, error)

	// Clear removes the persisted session. Clearing an empty store is
	// not an error.
	Clear(ctx context.Context) error
}
