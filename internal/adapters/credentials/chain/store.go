package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/omp-cli/internal/domain"
	"github.com/bnema/omp-cli/internal/ports"
)

// Store prefers the primary backend and falls back to the secondary one when
// the primary cannot serve the request.
type Store struct {
	primary  ports.TokenStore
	fallback ports.TokenStore
}

var _ ports.TokenStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary token store is nil")
	errNilFallbackStore = errors.New("fallback token store is nil")
)

func NewStore(primary ports.TokenStore, fallback ports.TokenStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

func (s *Store) Save(ctx context.Context, token string) error {
	err := s.primary.Save(ctx, token)
	if err == nil {
		// A stale fallback copy would win after a later primary failure.
		if clearErr := s.fallback.Clear(ctx); clearErr != nil && !shouldSkipFallback(clearErr) {
			return fmt.Errorf("clear fallback token copy: %w", clearErr)
		}
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Save(ctx, token)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend save failed: %w; fallback backend save failed: %w", err, fallbackErr)
}

func (s *Store) Load(ctx context.Context) (string, error) {
	token, err := s.primary.Load(ctx)
	if err == nil {
		return token, nil
	}
	if shouldSkipFallback(err) {
		return "", err
	}

	fallbackToken, fallbackErr := s.fallback.Load(ctx)
	if fallbackErr == nil {
		return fallbackToken, nil
	}
	if errors.Is(fallbackErr, domain.ErrTokenNotFound) {
		if isAbsent(err) {
			return "", fallbackErr
		}
		// The primary error explains more than "not found" in the fallback.
		return "", fmt.Errorf("primary backend load failed: %w", err)
	}

	return "", fmt.Errorf("primary backend load failed: %w; fallback backend load failed: %w", err, fallbackErr)
}

func (s *Store) Clear(ctx context.Context) error {
	err := s.primary.Clear(ctx)
	if shouldSkipFallback(err) {
		return err
	}
	if isAbsent(err) {
		err = nil
	}

	// The token may live in either backend; both copies must go.
	fallbackErr := s.fallback.Clear(ctx)
	switch {
	case err == nil && fallbackErr == nil:
		return nil
	case err == nil:
		return fmt.Errorf("fallback backend clear failed: %w", fallbackErr)
	case fallbackErr == nil:
		return fmt.Errorf("primary backend clear failed: %w", err)
	default:
		return fmt.Errorf("primary backend clear failed: %w; fallback backend clear failed: %w", err, fallbackErr)
	}
}

// isAbsent reports a primary that holds no token, either because the entry
// does not exist or because the backend is not installed.
func isAbsent(err error) bool {
	return errors.Is(err, domain.ErrTokenNotFound) || errors.Is(err, domain.ErrStoreUnavailable)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
