// Package session owns the single authoritative authentication state for the
// running process and mediates all transitions through the credential store
// and the auth endpoints.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/airmates/airmates-go/internal/api"
	"github.com/airmates/airmates-go/internal/model"
)

// Status is the authentication state of the running process.
type Status string

const (
	StatusChecking        Status = "checking"
	StatusAuthenticated   Status = "authenticated"
	StatusUnauthenticated Status = "unauthenticated"
)

// AuthAPI is the slice of the pipeline the manager drives.
type AuthAPI interface {
	// Login exchanges credentials for a token and the current user.
	Login(ctx context.Context, email, password string) (model.AuthResponse, error)
	// Refresh exchanges the currently stored token for a new one.
	Refresh(ctx context.Context) (model.AuthResponse, error)
}

// CredentialStore persists the bearer token between runs.
type CredentialStore interface {
	Save(token string)
	Load() (token string, ok bool)
	Delete()
}

// Manager is the session controller. Concurrent CheckAuth/Login calls are
// permitted; the last transition to complete wins.
type Manager struct {
	auth  AuthAPI
	creds CredentialStore
	log   *zap.Logger

	mu     sync.Mutex
	status Status
	user   *model.User
}

// NewManager returns a Manager in the Checking state.
func NewManager(auth AuthAPI, creds CredentialStore, log *zap.Logger) *Manager {
	return &Manager{auth: auth, creds: creds, log: log, status: StatusChecking}
}

// Bind registers the manager as the pipeline's unauthorized observer, so any
// 401 anywhere forces a logout. Call once at startup.
func (m *Manager) Bind(c *api.Client) {
	c.OnUnauthorized(m.Logout)
}

// CheckAuth validates the stored token on startup. With no token it settles
// on Unauthenticated without touching the network; otherwise it attempts a
// refresh. Refresh failure of any kind is never surfaced: the token is
// deleted and the user falls back to the login flow.
func (m *Manager) CheckAuth(ctx context.Context) {
	m.transition(StatusChecking, nil)

	if _, ok := m.creds.Load(); !ok {
		m.transition(StatusUnauthenticated, nil)
		return
	}

	resp, err := m.auth.Refresh(ctx)
	if err != nil {
		m.log.Info("token refresh failed, falling back to login", zap.Error(err))
		m.creds.Delete()
		m.transition(StatusUnauthenticated, nil)
		return
	}

	// Persist before reporting Authenticated so subsequent calls see the
	// new token.
	m.creds.Save(resp.Token)
	m.transition(StatusAuthenticated, &resp.User)
}

// Login authenticates with credentials. On failure the pipeline's typed
// error propagates unchanged and the state is left as it was.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	m.creds.Save(resp.Token)
	m.transition(StatusAuthenticated, &resp.User)
	return nil
}

// Logout deletes the stored token and clears the current user. Triggered by
// explicit user action or by the pipeline's 401 observer; idempotent.
func (m *Manager) Logout() {
	m.creds.Delete()
	m.transition(StatusUnauthenticated, nil)
}

// Status returns the current authentication state.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

// User returns a copy of the current user, if authenticated.
func (m *Manager) User() (model.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return model.User{}, false
	}
	return *m.user, true
}

// TokenExpiry reports the exp claim of the stored token, parsed without
// signature verification. Diagnostics only; the server remains the authority
// on token validity.
func (m *Manager) TokenExpiry() (time.Time, bool) {
	token, ok := m.creds.Load()
	if !ok {
		return time.Time{}, false
	}
	var claims jwt.RegisteredClaims
	_, _ = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) { return nil, nil },
		jwt.WithoutClaimsValidation(),
	)
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (m *Manager) transition(s Status, u *model.User) {
	m.mu.Lock()
	m.status = s
	m.user = u
	m.mu.Unlock()
	m.log.Info("auth state", zap.String("status", string(s)))
}
