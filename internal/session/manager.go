// Package session owns the client-side session: the persisted token and
// user projection, the Anonymous/Authenticated state machine, and the
// teardown triggered when the server rejects a token.
//
// The [Manager] is the single owner of session state. Components that need
// to react to transitions (screen routing, status bars) subscribe to it
// instead of sharing mutable globals.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/voxai-app/voxai/internal/adapter"
	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/store"
	"github.com/voxai-app/voxai/internal/utils"
	"github.com/voxai-app/voxai/models"
)

// State is the client session state. There are exactly two states and four
// transitions: login and startup restoration lead to Authenticated; logout,
// startup expiry and server rejection lead back to Anonymous.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Manager owns the active session and its persisted copy. All mutations go
// through it; subscribers are notified after every state transition.
type Manager struct {
	sessionRepository store.SessionRepository
	serverAdapter     adapter.ServerAdapter
	logger            *logger.Logger

	mu          sync.RWMutex
	state       State
	user        models.UserInfo
	subscribers []func(State)
}

func NewManager(sessionRepository store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *Manager {
	m := &Manager{
		sessionRepository: sessionRepository,
		serverAdapter:     serverAdapter,
		logger:            logger,
	}

	// any 401 observed by the transport tears the session down, no matter
	// which request triggered it
	serverAdapter.OnUnauthorized(m.handleUnauthorized)

	return m
}

// Subscribe registers fn to be called after every state transition. The
// callback runs outside the manager's lock and may call back into it.
func (m *Manager) Subscribe(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// State returns the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentUser returns the active user projection and whether the session is
// authenticated.
func (m *Manager) CurrentUser() (models.UserInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user, m.state == Authenticated
}

// Initialize restores the session from local storage. It runs once at
// startup, before any screen is shown, and never contacts the server: the
// token's embedded expiry is decoded locally.
//
// A missing session leaves the manager Anonymous. An expired or undecodable
// token clears the persisted pair and leaves the manager Anonymous. A live
// token restores the cached user projection and moves to Authenticated.
func (m *Manager) Initialize(ctx context.Context) error {
	token, user, err := m.sessionRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			m.logger.Debug().Msg("no persisted session, starting anonymous")
			return nil
		}
		return fmt.Errorf("reading persisted session: %w", err)
	}

	expiry, err := utils.ParseTokenExpiry(token)
	if err != nil || time.Now().After(expiry) {
		m.logger.Info().Msg("persisted token expired, clearing session")
		if clearErr := m.sessionRepository.Clear(ctx); clearErr != nil {
			return fmt.Errorf("clearing expired session: %w", clearErr)
		}
		return nil
	}

	m.serverAdapter.SetToken(token)
	m.transition(Authenticated, user)

	m.logger.Info().Str("email", user.Email).Msg("session restored from local storage")
	return nil
}

// Login authenticates against the server and, on success, persists the
// token and user projection together and makes the user the active session.
// On failure no persisted or active state changes.
func (m *Manager) Login(ctx context.Context, email string, secret string) error {
	resp, err := m.serverAdapter.Login(ctx, email, secret)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := m.sessionRepository.Save(ctx, resp.Token, resp.User); err != nil {
		// a session that cannot be persisted would silently vanish on the
		// next startup; fail the login instead
		m.serverAdapter.SetToken("")
		return fmt.Errorf("persisting session: %w", err)
	}

	m.transition(Authenticated, resp.User)
	return nil
}

// Register creates an account on the server. Registration never yields a
// token; the caller logs in separately afterwards.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := m.serverAdapter.Register(ctx, req); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// Logout clears the persisted and active session. Purely local, no network
// call.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.sessionRepository.Clear(ctx); err != nil {
		return fmt.Errorf("clearing persisted session: %w", err)
	}

	m.serverAdapter.SetToken("")
	m.transition(Anonymous, models.UserInfo{})
	return nil
}

// handleUnauthorized is invoked by the transport whenever the server
// rejects a token. The adapter has already dropped its copy; here the
// persisted pair and the active session are cleared too.
func (m *Manager) handleUnauthorized() {
	if err := m.sessionRepository.Clear(context.Background()); err != nil {
		m.logger.Err(err).Msg("clearing session after server rejection")
	}

	m.transition(Anonymous, models.UserInfo{})
}

// transition swaps the active state and notifies subscribers outside the
// lock.
func (m *Manager) transition(state State, user models.UserInfo) {
	m.mu.Lock()
	m.state = state
	m.user = user
	subscribers := make([]func(State), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	m.logger.Debug().Str("state", state.String()).Msg("session state changed")

	for _, fn := range subscribers {
		fn(state)
	}
}
