// Package services contains the client-side stores and flows that sit between
// the view and the API client: the authentication session, the dashboard
// aggregation snapshot, and the stock movement flow.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/dcastanera/inventario/internal/client/api"
	"github.com/dcastanera/inventario/internal/client/models"
	"github.com/dcastanera/inventario/internal/logging"
)

// State enumerates the session lifecycle. Transitions:
//
//	UNINITIALIZED → LOADING → {AUTHENTICATED, ANONYMOUS}
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// TokenStore is the full credential lifecycle surface the session needs.
// It is a superset of api.TokenStore; *tokens.Store satisfies both.
type TokenStore interface {
	Access(ctx context.Context) (string, error)
	Save(ctx context.Context, accessToken, tokenType string) error
	Clear(ctx context.Context) error
}

// SessionStore is the process-wide owner of the authenticated identity.
// State changes only through its command methods; reads are copies.
type SessionStore struct {
	api    api.Client
	tokens TokenStore
	log    logging.Logger

	mu    sync.RWMutex
	state State
	user  *models.Profile
}

func NewSessionStore(client api.Client, tokens TokenStore, log logging.Logger) *SessionStore {
	return &SessionStore{api: client, tokens: tokens, log: log, state: StateUninitialized}
}

func (s *SessionStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Loading reports whether the initial session restore has not finished yet.
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateUninitialized || s.state == StateLoading
}

func (s *SessionStore) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// User returns a copy of the current identity, or nil when anonymous.
func (s *SessionStore) User() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *SessionStore) setState(state State, user *models.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}

// LoadUser restores the session from the persisted token, once at process
// start. Failure to restore is a normal condition, not an error: whatever
// goes wrong, the store lands in ANONYMOUS with the token cleared. Without a
// persisted token no network call is made at all.
func (s *SessionStore) LoadUser(ctx context.Context) {
	s.setState(StateLoading, nil)

	token, err := s.tokens.Access(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored token", "error", err)
		s.setState(StateAnonymous, nil)
		return
	}
	if token == "" {
		s.setState(StateAnonymous, nil)
		return
	}

	profile, err := s.api.GetCurrentUser(ctx)
	if err != nil || profile == nil {
		if err != nil {
			s.log.Warn(ctx, "session restore failed", "error", err)
		}
		if cerr := s.tokens.Clear(ctx); cerr != nil {
			s.log.Warn(ctx, "failed to clear stored token", "error", cerr)
		}
		s.setState(StateAnonymous, nil)
		return
	}

	s.setState(StateAuthenticated, profile)
}

// SignIn authenticates and, on success, persists the returned token and
// adopts the identity embedded in the login response. On failure nothing is
// committed and the error propagates for display.
func (s *SessionStore) SignIn(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.tokens.Save(ctx, resp.AccessToken, resp.TokenType); err != nil {
		return err
	}

	now := time.Now().UTC()
	s.setState(StateAuthenticated, &models.Profile{
		ID:        resp.User.ID,
		Email:     resp.User.Email,
		FullName:  resp.User.FullName,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return nil
}

// SignUp registers a new account. It deliberately does not authenticate the
// session; the caller signs in as a separate step.
func (s *SessionStore) SignUp(ctx context.Context, email, password, fullName string) (*models.LoginResponse, error) {
	return s.api.Register(ctx, email, password, fullName)
}

// SignOut calls the remote logout and, whatever its outcome, clears the
// persisted token and transitions to ANONYMOUS. The remote error, if any, is
// returned after the local sign-out has completed.
func (s *SessionStore) SignOut(ctx context.Context) error {
	defer func() {
		if err := s.tokens.Clear(ctx); err != nil {
			s.log.Warn(ctx, "failed to clear stored token", "error", err)
		}
		s.setState(StateAnonymous, nil)
	}()

	return s.api.Logout(ctx)
}
