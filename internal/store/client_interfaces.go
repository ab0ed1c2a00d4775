package store

import "context"

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository is the durable single-slot storage of the session
// token. The token survives restarts and is removed on logout.
type LocalSessionRepository interface {
	// SaveToken replaces the stored token.
	SaveToken(ctx context.Context, token string) error

	// LoadToken returns the stored token or [ErrTokenNotFound].
	LoadToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored token. Deleting an empty slot is not an
	// error.
	DeleteToken(ctx context.Context) error
}
