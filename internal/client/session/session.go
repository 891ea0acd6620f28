// Package session holds the authenticated identity of the client: the
// bearer token and the profile of the logged-in user.
//
// The token lives in memory and in the local metadata store so that it
// survives restarts. RestoreFromStorage is the only place where a token is
// dropped without an explicit Logout.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/noteskeeper/internal/client/api"
	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
	"github.com/dmitrijs2005/noteskeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/noteskeeper/internal/logging"
)

// Transactor runs fn atomically against the metadata store.
type Transactor interface {
	InTx(ctx context.Context, fn func(repo metadata.Repository) error) error
}

type Session struct {
	client api.Client
	repo   metadata.Repository
	tx     Transactor
	log    logging.Logger

	mu    sync.RWMutex
	token string
	user  *models.User
}

func New(client api.Client, repo metadata.Repository, tx Transactor, log logging.Logger) *Session {
	if log == nil {
		log = logging.NewNop()
	}
	return &Session{client: client, repo: repo, tx: tx, log: log.With("component", "session")}
}

// AccessToken returns the current bearer token or "" when logged out.
// It implements api.TokenSource.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the profile of the logged-in user, if known.
func (s *Session) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Session) IsAuthenticated() bool {
	return s.AccessToken() != ""
}

// LastEmail returns the email of the last successful login, if any.
func (s *Session) LastEmail(ctx context.Context) string {
	v, _, err := s.repo.Get(ctx, metadata.KeyLastEmail)
	if err != nil {
		s.log.Warn(ctx, "failed to read last email", "error", err)
	}
	return v
}

// Login exchanges credentials for a token, persists it and loads the
// profile. When the profile request fails the token is kept and the error
// returned.
func (s *Session) Login(ctx context.Context, email, password string) error {
	res, err := s.client.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.log.Info(ctx, "login rejected", "email", email, "error", err)
		return err
	}

	err = s.tx.InTx(ctx, func(repo metadata.Repository) error {
		if err := repo.Set(ctx, metadata.KeyAccessToken, res.AccessToken); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyLastEmail, email)
	})
	if err != nil {
		return fmt.Errorf("save session error: %w", err)
	}

	s.mu.Lock()
	s.token = res.AccessToken
	s.user = nil
	s.mu.Unlock()

	if err := s.loadUser(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "logged in", "email", email)
	return nil
}

// Register creates the account and then logs in with the same credentials.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	err := s.client.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		s.log.Info(ctx, "registration rejected", "email", email, "error", err)
		return err
	}
	return s.Login(ctx, email, password)
}

// RestoreFromStorage loads a persisted token and validates it against the
// server. A token the server refuses is erased and the session reported as
// absent. On other failures the token is kept: the result is true and the
// error describes why the profile is unknown.
func (s *Session) RestoreFromStorage(ctx context.Context) (bool, error) {
	token, ok, err := s.repo.Get(ctx, metadata.KeyAccessToken)
	if err != nil {
		return false, fmt.Errorf("load session error: %w", err)
	}
	if !ok || token == "" {
		return false, nil
	}

	s.mu.Lock()
	s.token = token
	s.user = nil
	s.mu.Unlock()

	err = s.loadUser(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, api.ErrUnauthorized):
		s.log.Info(ctx, "stored token rejected, clearing session")
		if err := s.clear(ctx); err != nil {
			return false, err
		}
		return false, nil
	default:
		s.log.Warn(ctx, "failed to validate stored token", "error", err)
		return true, err
	}
}

// Logout forgets the token and the profile. The in-memory session is
// cleared even when the local store fails.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.clear(ctx); err != nil {
		return err
	}
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *Session) clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, metadata.KeyAccessToken); err != nil {
		return fmt.Errorf("clear session error: %w", err)
	}
	return nil
}

func (s *Session) loadUser(ctx context.Context) error {
	u, err := s.client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}
