package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
)

type SessionState int

const (
	SessionUninitialized SessionState = iota
	SessionLoading
	SessionAuthenticated
	SessionAnonymous
)

func (s SessionState) String() string {
	switch s {
	case SessionUninitialized:
		return "uninitialized"
	case SessionLoading:
		return "loading"
	case SessionAuthenticated:
		return "authenticated"
	case SessionAnonymous:
		return "anonymous"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// Session owns the signed-in identity and its persisted bearer token.
type Session struct {
	auth   ports.AuthAPI
	tokens ports.TokenStore
	logger *slog.Logger

	mu       sync.RWMutex
	state    SessionState
	identity *domain.Identity
}

func NewSession(auth ports.AuthAPI, tokens ports.TokenStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	return &Session{
		auth:   auth,
		tokens: tokens,
		logger: logger.With("component", "session"),
	}
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *Session) Identity() (domain.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

// Init resolves the startup state from the persisted token. A rejected token
// is purged and the session becomes anonymous without an error.
func (s *Session) Init(ctx context.Context) error {
	s.setState(SessionLoading, nil)

	identity, err := s.CurrentIdentity(ctx)
	switch {
	case err == nil:
		s.logger.Debug("session restored", "user_id", identity.ID)
		return nil
	case errors.Is(err, domain.ErrUnauthenticated):
		return nil
	default:
		s.setState(SessionAnonymous, nil)
		return fmt.Errorf("restore session: %w", err)
	}
}

// CurrentIdentity asks the backend who owns the stored token. Without a token
// no request is made.
func (s *Session) CurrentIdentity(ctx context.Context) (domain.Identity, error) {
	_, err := s.tokens.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			s.setState(SessionAnonymous, nil)
			return domain.Identity{}, domain.ErrUnauthenticated
		}
		return domain.Identity{}, fmt.Errorf("load access token: %w", err)
	}

	identity, err := s.auth.Me(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			s.logger.Info("stored token rejected, signing out")
			s.setState(SessionAnonymous, nil)
			if clearErr := s.tokens.Clear(ctx); clearErr != nil {
				return domain.Identity{}, fmt.Errorf("purge rejected token: %w", errors.Join(err, clearErr))
			}
			return domain.Identity{}, fmt.Errorf("fetch current user: %w", err)
		}
		return domain.Identity{}, fmt.Errorf("fetch current user: %w", err)
	}

	s.setState(SessionAuthenticated, &identity)
	return identity, nil
}

func (s *Session) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	creds := domain.Credentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		return domain.Identity{}, err
	}

	return s.authenticate(ctx, "login", func(ctx context.Context) (domain.AccessToken, error) {
		return s.auth.Login(ctx, creds)
	})
}

func (s *Session) Register(ctx context.Context, email, password, fullName string) (domain.Identity, error) {
	reg := domain.Registration{
		Credentials: domain.Credentials{Email: email, Password: password},
		FullName:    fullName,
	}
	if err := reg.Validate(); err != nil {
		return domain.Identity{}, err
	}

	return s.authenticate(ctx, "register", func(ctx context.Context) (domain.AccessToken, error) {
		return s.auth.Register(ctx, reg)
	})
}

func (s *Session) LoginWithFacebook(ctx context.Context, profile domain.FacebookProfile) (domain.Identity, error) {
	if err := profile.Validate(); err != nil {
		return domain.Identity{}, err
	}

	return s.authenticate(ctx, "facebook login", func(ctx context.Context) (domain.AccessToken, error) {
		return s.auth.LoginWithFacebook(ctx, profile)
	})
}

// Logout forgets the identity locally. The backend is not contacted.
func (s *Session) Logout(ctx context.Context) error {
	s.setState(SessionAnonymous, nil)

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear access token: %w", err)
	}

	s.logger.Debug("signed out")
	return nil
}

func (s *Session) authenticate(ctx context.Context, op string, exchange func(context.Context) (domain.AccessToken, error)) (domain.Identity, error) {
	token, err := exchange(ctx)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%s: %w", op, err)
	}
	if token.Value == "" {
		return domain.Identity{}, fmt.Errorf("%s: server returned an empty access token", op)
	}

	if err := s.tokens.Save(ctx, token.Value); err != nil {
		return domain.Identity{}, fmt.Errorf("store access token: %w", err)
	}

	identity, err := s.auth.Me(ctx)
	if err != nil {
		s.setState(SessionAnonymous, nil)
		if clearErr := s.tokens.Clear(ctx); clearErr != nil {
			return domain.Identity{}, fmt.Errorf("fetch current user and rollback stored token: %w", errors.Join(err, clearErr))
		}
		return domain.Identity{}, fmt.Errorf("fetch current user: %w", err)
	}

	s.setState(SessionAuthenticated, &identity)
	s.logger.Info("signed in", "op", op, "user_id", identity.ID)
	return identity, nil
}

func (s *Session) setState(state SessionState, identity *domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state
	s.identity = identity
}
