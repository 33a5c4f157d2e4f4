// ABOUTME: Session manager owning authentication state for the process
// ABOUTME: Single writer of the credential store and the client bearer token

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/UtkarshAditya/BuildBuddy/internal/client"
)

// State is the session manager's authentication state
type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

// String returns the state name for logging
func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// MinPasswordLen is enforced client-side before registration
const MinPasswordLen = 8

// Manager owns who is logged in. All credential writes funnel through it.
type Manager struct {
	client *client.Client
	store  *CredentialStore

	mu       sync.Mutex
	state    State
	user     *client.User
	onChange []func(State)
}

// NewManager creates a session manager in the Initializing state
func NewManager(c *client.Client, store *CredentialStore) *Manager {
	return &Manager{
		client: c,
		store:  store,
		state:  StateInitializing,
	}
}

// OnChange registers a callback invoked synchronously after every state
// transition. Used to stop the badge poller when the session signs out.
func (m *Manager) OnChange(fn func(State)) {
	m.mu.Lock()
	m.onChange = append(m.onChange, fn)
	m.mu.Unlock()
}

// State returns the current authentication state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// User returns the authenticated profile, or nil when logged out
func (m *Manager) User() *client.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Authenticated reports whether a user is logged in
func (m *Manager) Authenticated() bool {
	return m.State() == StateAuthenticated
}

// setState transitions and fires callbacks outside the lock
func (m *Manager) setState(state State, user *client.User) {
	m.mu.Lock()
	m.state = state
	m.user = user
	callbacks := make([]func(State), len(m.onChange))
	copy(callbacks, m.onChange)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(state)
	}
}

// Init validates any stored credential against the backend. A missing
// credential or any validation failure (expired token, network error)
// lands in Unauthenticated; validation failures also discard the stored
// credential so the next start skips the round-trip.
func (m *Manager) Init(ctx context.Context) error {
	creds, err := m.store.Load()
	if err != nil || creds == nil {
		m.setState(StateUnauthenticated, nil)
		return nil
	}

	m.client.SetToken(creds.Access)
	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		m.store.Clear()
		m.client.ClearToken()
		m.setState(StateUnauthenticated, nil)
		return nil
	}

	m.setState(StateAuthenticated, user)
	return nil
}

// Login authenticates with the backend and persists the token pair.
// On any failure the session stays Unauthenticated and nothing is persisted.
func (m *Manager) Login(ctx context.Context, email, password string) (*client.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	tokens, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	m.client.SetToken(tokens.Access)
	user, err := m.client.CurrentUser(ctx)
	if err != nil {
		m.client.ClearToken()
		return nil, err
	}

	if err := m.store.Save(&Credentials{Access: tokens.Access, Refresh: tokens.Refresh}); err != nil {
		return nil, fmt.Errorf("failed to persist credentials: %w", err)
	}

	m.setState(StateAuthenticated, user)
	return user, nil
}

// Register creates an account then logs in with the same credentials.
// If creation succeeds but the follow-up login fails, the login error is
// surfaced as-is; the created account is not rolled back.
func (m *Manager) Register(ctx context.Context, email, username, password, fullName string) (*client.User, error) {
	switch {
	case strings.TrimSpace(email) == "":
		return nil, errors.New("email is required")
	case strings.TrimSpace(username) == "":
		return nil, errors.New("username is required")
	case strings.TrimSpace(fullName) == "":
		return nil, errors.New("full name is required")
	case len(password) < MinPasswordLen:
		return nil, fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}

	if _, err := m.client.Register(ctx, email, username, password, fullName); err != nil {
		return nil, err
	}

	return m.Login(ctx, email, password)
}

// HasViewedRequests reports whether the join-requests tab has been opened
// since the flag was last set. Gates the join-requests badge.
func (m *Manager) HasViewedRequests() bool {
	return m.store.HasViewedRequests()
}

// SetViewedRequests records that the join-requests tab has been opened
func (m *Manager) SetViewedRequests(viewed bool) error {
	return m.store.SetViewedRequests(viewed)
}

// Logout discards the credential and clears the in-memory user. It always
// succeeds and requires no backend round-trip.
func (m *Manager) Logout() {
	m.store.Clear()
	m.client.ClearToken()
	m.setState(StateUnauthenticated, nil)
}
