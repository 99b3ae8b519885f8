package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalTokenRepository persists one session token per profile across
// restarts. Tokens are never deleted: staleness is only discovered when the
// API rejects one.
type LocalTokenRepository interface {
	// GetToken returns the cached token of the profile, or
	// [ErrTokenNotFound] when none was ever saved.
	GetToken(ctx context.Context, profileID int) (string, error)

	// SaveToken stores token for the profile, replacing any previous one.
	SaveToken(ctx context.Context, profileID int, token string) error
}
