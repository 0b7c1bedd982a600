package session

import (
	"context"
	"errors"
	"sync"

	"github.com/nmorozova/lovebird/internal/client/api"
	"github.com/nmorozova/lovebird/internal/client/models"
	"github.com/nmorozova/lovebird/internal/client/repositories/credentials"
	"github.com/nmorozova/lovebird/internal/logging"
)

// ErrNotAuthenticated is returned by operations that require an established
// session.
var ErrNotAuthenticated = errors.New("not authenticated")

// RegisterResult is the caller-facing outcome of a registration attempt.
// When the server rejected individual fields, FieldErrors maps form field
// names to messages so the screen can highlight them.
type RegisterResult struct {
	OK          bool
	Message     string
	FieldErrors map[string]string
}

// Manager drives the session state machine.
//
// It is the single writer of the credential store's two keys and of the API
// binding's Authorization header. Top-level operations (Bootstrap, Login,
// Register, Logout, UpdateProfile) are serialized; within an operation the
// ordering is always persist token, then in-memory token, then header, then
// the hydration call.
type Manager struct {
	api   api.Client
	creds credentials.Repository
	log   logging.Logger

	opMu sync.Mutex

	mu   sync.Mutex
	snap Snapshot
	subs []chan Snapshot

	bootstrapOnce sync.Once
}

// NewManager creates a Manager in the Bootstrapping state. Call Bootstrap
// before presenting any screen.
func NewManager(apiClient api.Client, creds credentials.Repository, log logging.Logger) *Manager {
	return &Manager{
		api:   apiClient,
		creds: creds,
		log:   log.With("component", "session"),
		snap:  Snapshot{State: StateBootstrapping},
	}
}

// Snapshot returns the current session view.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap.clone()
}

// Subscribe returns a channel receiving a snapshot on every state change,
// starting with the current one, and a cancel function releasing the
// subscription. Slow consumers may miss intermediate snapshots; the latest
// state is always re-observable via Snapshot.
func (m *Manager) Subscribe() (<-chan Snapshot, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan Snapshot, 8)
	ch <- m.snap.clone()
	m.subs = append(m.subs, ch)

	cancel := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subs {
			if sub == ch {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)
				close(ch)
				return
			}
		}
	}
	return ch, cancel
}

// update applies fn to the snapshot under lock and publishes the result.
func (m *Manager) update(fn func(s *Snapshot)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.snap)
	for _, sub := range m.subs {
		select {
		case sub <- m.snap.clone():
		default:
		}
	}
}

// Bootstrap runs the one-time startup check: it reads the persisted tokens
// and either re-establishes the session (refresh first, lone access token as
// fallback) or lands in Unauthenticated. It runs at most once per process;
// later calls are no-ops.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.bootstrapOnce.Do(func() { m.bootstrap(ctx) })
}

func (m *Manager) bootstrap(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.update(func(s *Snapshot) { *s = Snapshot{State: StateBootstrapping} })

	// A storage read error is indistinguishable from "no token found".
	refreshToken, err := m.creds.Get(ctx, credentials.KeyRefreshToken)
	if err != nil {
		m.log.Warn(ctx, "reading refresh token failed, treating as absent", "err", err)
		refreshToken = ""
	}
	accessToken, err := m.creds.Get(ctx, credentials.KeyAccessToken)
	if err != nil {
		m.log.Warn(ctx, "reading access token failed, treating as absent", "err", err)
		accessToken = ""
	}

	switch {
	case refreshToken != "":
		newAccess, err := m.api.Refresh(ctx, refreshToken)
		if err != nil {
			m.log.Info(ctx, "token refresh rejected", "err", err)
			m.teardown(ctx)
			return
		}
		if m.establish(ctx, newAccess) {
			m.log.Info(ctx, "session restored via refresh token")
		}

	case accessToken != "":
		// A lone access token is unverified; the profile fetch decides.
		if m.establish(ctx, accessToken) {
			m.log.Info(ctx, "session restored via stored access token")
		}

	default:
		m.api.SetAuthHeader("")
		m.update(func(s *Snapshot) { *s = Snapshot{State: StateUnauthenticated} })
		m.log.Info(ctx, "no stored tokens")
	}
}

// Login authenticates with the given credentials, persists the issued token
// pair and hydrates the profile. It never panics or returns an error: the
// outcome is a boolean so the calling screen picks its own message. Any
// failure leaves the session fully torn down.
func (m *Manager) Login(ctx context.Context, username, password string) bool {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.update(func(s *Snapshot) { s.State = StateAuthenticating })

	pair, err := m.api.Login(ctx, username, password)
	if err != nil {
		m.log.Info(ctx, "login rejected", "err", err)
		m.teardown(ctx)
		return false
	}

	if err := m.creds.Set(ctx, credentials.KeyRefreshToken, pair.RefreshToken); err != nil {
		m.log.Error(ctx, "persisting refresh token failed", "err", err)
		m.teardown(ctx)
		return false
	}

	if !m.establish(ctx, pair.AccessToken) {
		return false
	}
	m.log.Info(ctx, "login successful", "user", username)
	return true
}

// Register creates an account and, on success, establishes the session the
// same way Login does. Server-side field validation errors are preserved in
// the result; everything else collapses to a generic failure.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) RegisterResult {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.update(func(s *Snapshot) { s.State = StateAuthenticating })

	pair, err := m.api.Register(ctx, req)
	if err != nil {
		m.log.Info(ctx, "registration rejected", "err", err)
		m.teardown(ctx)
		return registerFailure(err)
	}

	if err := m.creds.Set(ctx, credentials.KeyRefreshToken, pair.RefreshToken); err != nil {
		m.log.Error(ctx, "persisting refresh token failed", "err", err)
		m.teardown(ctx)
		return RegisterResult{Message: "registration failed"}
	}

	if !m.establish(ctx, pair.AccessToken) {
		return RegisterResult{Message: "registration failed"}
	}
	m.log.Info(ctx, "registration successful", "user", req.Username)
	return RegisterResult{OK: true}
}

func registerFailure(err error) RegisterResult {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		res := RegisterResult{
			Message:     apiErr.Message,
			FieldErrors: apiErr.FieldErrors(),
		}
		if res.Message == "" {
			res.Message = "registration failed"
		}
		return res
	}
	// Transport and storage errors are never surfaced verbatim.
	return RegisterResult{Message: "registration failed"}
}

// Logout tears the session down: memory, header and both persisted tokens.
// Calling it while already logged out is a harmless no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	m.teardown(ctx)
}

// UpdateProfile applies a partial profile change on the server and, on
// success, replaces the in-session profile. Failures are returned to the
// caller and do not change the authentication state.
func (m *Manager) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.UserProfile, error) {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	if !m.Snapshot().Authenticated() {
		return nil, ErrNotAuthenticated
	}

	profile, err := m.api.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}
	m.update(func(s *Snapshot) { s.Profile = profile })
	return profile, nil
}

// establish finishes token acquisition: persist the access token, set it in
// memory, mirror it on the Authorization header, then hydrate the profile.
// Any failure tears the whole session down; a token that cannot fetch the
// user's own profile is never treated as valid.
func (m *Manager) establish(ctx context.Context, accessToken string) bool {
	if err := m.creds.Set(ctx, credentials.KeyAccessToken, accessToken); err != nil {
		m.log.Error(ctx, "persisting access token failed", "err", err)
		m.teardown(ctx)
		return false
	}

	m.update(func(s *Snapshot) { s.AccessToken = accessToken })
	m.api.SetAuthHeader(accessToken)

	profile, err := m.api.FetchProfile(ctx)
	if err != nil {
		m.log.Warn(ctx, "profile hydration failed", "err", err)
		m.teardown(ctx)
		return false
	}

	m.update(func(s *Snapshot) {
		s.State = StateAuthenticated
		s.Profile = profile
	})
	return true
}

// teardown resets everything, best-effort: in-memory token and profile, the
// Authorization header, then both persisted tokens. Storage errors are
// logged and do not stop the remaining steps. The end state is always
// Unauthenticated.
func (m *Manager) teardown(ctx context.Context) {
	m.update(func(s *Snapshot) {
		s.State = StateTearingDown
		s.AccessToken = ""
		s.Profile = nil
	})

	m.api.SetAuthHeader("")

	if err := m.creds.Remove(ctx, credentials.KeyAccessToken); err != nil {
		m.log.Warn(ctx, "removing access token failed", "err", err)
	}
	if err := m.creds.Remove(ctx, credentials.KeyRefreshToken); err != nil {
		m.log.Warn(ctx, "removing refresh token failed", "err", err)
	}

	m.update(func(s *Snapshot) { s.State = StateUnauthenticated })
}
