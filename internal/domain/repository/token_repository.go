package repository

import "context"

// TokenRepository persists the bearer token between runs
type TokenRepository interface {
	// Load returns the stored token, or "" when none is stored
	Load() (string, error)

	// Save stores token, replacing any previous one
	Save(token string) error

	// Clear removes the stored token
	Clear() error

	// Watch emits the current token whenever the underlying storage changes,
	// until ctx is cancelled
	Watch(ctx context.Context) (<-chan string, error)
}
