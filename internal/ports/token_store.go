package ports

import "context"

// TokenStore persists the single bearer token of the signed-in user.
// Load returns domain.ErrTokenNotFound when no token is stored.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
