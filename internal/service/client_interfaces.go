package service

import (
	"context"

	"github.com/MKhiriev/rate-keeper/models"
)

// ClientAuthService holds the mechanics of profile login: local code
// verification, the token cache and the PIN exchange.
type ClientAuthService interface {
	// VerifyCode checks the typed code against the profile's entry code.
	// Surrounding whitespace is ignored. It never touches the network.
	VerifyCode(profileID int, code string) error

	// CachedSession returns the session stored for the profile by a previous
	// run. ok is false when no usable token is cached; err additionally
	// reports a cache that could not be read ([ErrTokenCacheUnreadable]).
	CachedSession(ctx context.Context, profileID int) (session models.Session, ok bool, err error)

	// Exchange trades the entry code for a new token with exactly one API
	// call. The token is neither cached nor activated.
	Exchange(ctx context.Context, profileID int, code string) (models.Session, error)

	// Remember caches the session token for future runs.
	Remember(ctx context.Context, session models.Session) error

	// Activate makes session the only active one: its token is attached to
	// every subsequent API call.
	Activate(session models.Session)

	// Deactivate drops the active token. The cached copy is kept.
	Deactivate()
}

// ClientItemService manages items.
type ClientItemService interface {
	// Overview fetches the item list and the caller's summary concurrently.
	// A summary failure is logged and yields an empty summary; only a list
	// failure is returned.
	Overview(ctx context.Context) ([]models.Item, models.Summary, error)

	// Create validates and creates an item. The code is required.
	Create(ctx context.Context, code, name string) (models.Item, error)

	// Detail returns the detail payload of an item.
	Detail(ctx context.Context, itemID string) (models.ItemDetail, error)

	// Delete removes an item. Non-admin profiles get [ErrAdminOnly].
	Delete(ctx context.Context, itemID string) error
}

// ClientRatingService submits ratings.
type ClientRatingService interface {
	// Submit clamps scores and posts them as the caller's rating of the
	// item. A rejected early modification yields [ErrRatingCooldown].
	Submit(ctx context.Context, itemID string, scores models.Scores) error
}

// ClientRankingService reads rankings.
type ClientRankingService interface {
	// Rankings returns the rankings of every metric for mode. Each metric
	// is present in the result, possibly with no entries.
	Rankings(ctx context.Context, mode models.RankingMode) (models.Rankings, error)
}

// ClientHealthService probes the API.
type ClientHealthService interface {
	// Ping reports whether the API answers its liveness endpoint.
	Ping(ctx context.Context) error
}
