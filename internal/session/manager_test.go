package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/store"
	"github.com/voxai-app/voxai/internal/utils"
	"github.com/voxai-app/voxai/models"
)

// fakeSessionRepository is an in-memory store.SessionRepository.
type fakeSessionRepository struct {
	token    string
	user     models.UserInfo
	hasValue bool

	saveErr  error
	clearErr error
}

func (r *fakeSessionRepository) Save(_ context.Context, token string, user models.UserInfo) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.token, r.user, r.hasValue = token, user, true
	return nil
}

func (r *fakeSessionRepository) Get(_ context.Context) (string, models.UserInfo, error) {
	if !r.hasValue {
		return "", models.UserInfo{}, store.ErrLocalSessionNotFound
	}
	return r.token, r.user, nil
}

func (r *fakeSessionRepository) Clear(_ context.Context) error {
	if r.clearErr != nil {
		return r.clearErr
	}
	r.token, r.user, r.hasValue = "", models.UserInfo{}, false
	return nil
}

// fakeServerAdapter implements adapter.ServerAdapter with call counters so
// tests can assert that startup restoration makes no network calls.
type fakeServerAdapter struct {
	token          string
	onUnauthorized func()

	loginFn      func(ctx context.Context, email, secret string) (models.LoginResponse, error)
	registerFn   func(ctx context.Context, req models.RegisterRequest) error
	networkCalls int
}

func (a *fakeServerAdapter) SetToken(token string) { a.token = token }
func (a *fakeServerAdapter) Token() string         { return a.token }
func (a *fakeServerAdapter) OnUnauthorized(fn func()) {
	a.onUnauthorized = fn
}

func (a *fakeServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	a.networkCalls++
	if a.registerFn != nil {
		return a.registerFn(ctx, req)
	}
	return nil
}

func (a *fakeServerAdapter) Login(ctx context.Context, email, secret string) (models.LoginResponse, error) {
	a.networkCalls++
	if a.loginFn != nil {
		return a.loginFn(ctx, email, secret)
	}
	return models.LoginResponse{}, nil
}

func (a *fakeServerAdapter) ListSchemes(_ context.Context, _ models.SchemeFilter) ([]models.Scheme, error) {
	a.networkCalls++
	return nil, nil
}

func (a *fakeServerAdapter) GetScheme(_ context.Context, _ int64) (models.Scheme, error) {
	a.networkCalls++
	return models.Scheme{}, nil
}

func (a *fakeServerAdapter) CreateScheme(_ context.Context, scheme models.Scheme) (models.Scheme, error) {
	a.networkCalls++
	return scheme, nil
}

func (a *fakeServerAdapter) UpdateScheme(_ context.Context, scheme models.Scheme) (models.Scheme, error) {
	a.networkCalls++
	return scheme, nil
}

func (a *fakeServerAdapter) DeleteScheme(_ context.Context, _ int64) error {
	a.networkCalls++
	return nil
}

func (a *fakeServerAdapter) Chat(_ context.Context, _ string) (string, error) {
	a.networkCalls++
	return "", nil
}

var testUser = models.UserInfo{UserID: "user-1", Name: "Alice", Email: "a@x.com"}

func signedToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("voxai-test", testUser.UserID, ttl, "test-key")
	require.NoError(t, err)
	return token.SignedString
}

func newTestManager(repo *fakeSessionRepository, srv *fakeServerAdapter) *Manager {
	return NewManager(repo, srv, logger.Nop())
}

func TestManager_Initialize_NoPersistedSession(t *testing.T) {
	srv := &fakeServerAdapter{}
	m := newTestManager(&fakeSessionRepository{}, srv)

	require.NoError(t, m.Initialize(context.Background()))

	assert.Equal(t, Anonymous, m.State())
	assert.Zero(t, srv.networkCalls)
}

func TestManager_Initialize_RestoresLiveSession(t *testing.T) {
	repo := &fakeSessionRepository{}
	require.NoError(t, repo.Save(context.Background(), signedToken(t, time.Hour), testUser))

	srv := &fakeServerAdapter{}
	m := newTestManager(repo, srv)

	require.NoError(t, m.Initialize(context.Background()))

	assert.Equal(t, Authenticated, m.State())
	user, ok := m.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, testUser, user)
	assert.Equal(t, repo.token, srv.Token())

	// restoration is purely local
	assert.Zero(t, srv.networkCalls)
}

func TestManager_Initialize_ExpiredTokenClearsStorage(t *testing.T) {
	repo := &fakeSessionRepository{}
	require.NoError(t, repo.Save(context.Background(), signedToken(t, -time.Minute), testUser))

	m := newTestManager(repo, &fakeServerAdapter{})

	require.NoError(t, m.Initialize(context.Background()))

	assert.Equal(t, Anonymous, m.State())
	assert.False(t, repo.hasValue)
}

func TestManager_Initialize_UndecodableTokenClearsStorage(t *testing.T) {
	repo := &fakeSessionRepository{}
	require.NoError(t, repo.Save(context.Background(), "not-a-token", testUser))

	m := newTestManager(repo, &fakeServerAdapter{})

	require.NoError(t, m.Initialize(context.Background()))

	assert.Equal(t, Anonymous, m.State())
	assert.False(t, repo.hasValue)
}

func TestManager_Login_PersistsTokenAndProjectionTogether(t *testing.T) {
	repo := &fakeSessionRepository{}
	srv := &fakeServerAdapter{
		loginFn: func(_ context.Context, email, _ string) (models.LoginResponse, error) {
			return models.LoginResponse{Token: "fresh.token", User: testUser}, nil
		},
	}
	m := newTestManager(repo, srv)

	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))

	assert.Equal(t, Authenticated, m.State())
	assert.True(t, repo.hasValue)
	assert.Equal(t, "fresh.token", repo.token)
	assert.Equal(t, testUser, repo.user)
}

func TestManager_Login_FailureChangesNothing(t *testing.T) {
	repo := &fakeSessionRepository{}
	srv := &fakeServerAdapter{
		loginFn: func(_ context.Context, _, _ string) (models.LoginResponse, error) {
			return models.LoginResponse{}, errors.New("invalid credentials")
		},
	}
	m := newTestManager(repo, srv)

	err := m.Login(context.Background(), "a@x.com", "wrong")

	assert.Error(t, err)
	assert.Equal(t, Anonymous, m.State())
	assert.False(t, repo.hasValue)
}

func TestManager_Login_PersistFailureFailsLogin(t *testing.T) {
	repo := &fakeSessionRepository{saveErr: errors.New("disk full")}
	srv := &fakeServerAdapter{
		loginFn: func(_ context.Context, _, _ string) (models.LoginResponse, error) {
			return models.LoginResponse{Token: "fresh.token", User: testUser}, nil
		},
	}
	m := newTestManager(repo, srv)

	err := m.Login(context.Background(), "a@x.com", "secret1")

	assert.Error(t, err)
	assert.Equal(t, Anonymous, m.State())
	assert.Empty(t, srv.Token())
}

func TestManager_Logout_ClearsEverythingLocally(t *testing.T) {
	repo := &fakeSessionRepository{}
	srv := &fakeServerAdapter{
		loginFn: func(_ context.Context, _, _ string) (models.LoginResponse, error) {
			return models.LoginResponse{Token: "fresh.token", User: testUser}, nil
		},
	}
	m := newTestManager(repo, srv)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))
	networkCallsAfterLogin := srv.networkCalls

	require.NoError(t, m.Logout(context.Background()))

	assert.Equal(t, Anonymous, m.State())
	assert.False(t, repo.hasValue)
	assert.Empty(t, srv.Token())
	assert.Equal(t, networkCallsAfterLogin, srv.networkCalls)
}

func TestManager_ServerRejectionTearsDownSession(t *testing.T) {
	repo := &fakeSessionRepository{}
	srv := &fakeServerAdapter{
		loginFn: func(_ context.Context, _, _ string) (models.LoginResponse, error) {
			return models.LoginResponse{Token: "fresh.token", User: testUser}, nil
		},
	}
	m := newTestManager(repo, srv)
	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))
	require.NotNil(t, srv.onUnauthorized)

	// simulate the transport observing a 401 on any request
	srv.onUnauthorized()

	assert.Equal(t, Anonymous, m.State())
	assert.False(t, repo.hasValue)

	// a fresh manager over the same storage starts anonymous
	m2 := newTestManager(repo, &fakeServerAdapter{})
	require.NoError(t, m2.Initialize(context.Background()))
	assert.Equal(t, Anonymous, m2.State())
}

func TestManager_SubscribersObserveTransitions(t *testing.T) {
	repo := &fakeSessionRepository{}
	srv := &fakeServerAdapter{
		loginFn: func(_ context.Context, _, _ string) (models.LoginResponse, error) {
			return models.LoginResponse{Token: "fresh.token", User: testUser}, nil
		},
	}
	m := newTestManager(repo, srv)

	var observed []State
	m.Subscribe(func(s State) { observed = append(observed, s) })

	require.NoError(t, m.Login(context.Background(), "a@x.com", "secret1"))
	require.NoError(t, m.Logout(context.Background()))

	assert.Equal(t, []State{Authenticated, Anonymous}, observed)
}
