package service

import (
	"errors"
	"fmt"
)

// ErrValidationFailed is matched by every error produced by a local
// precondition check. Such errors never cause a network call.
var ErrValidationFailed = errors.New("validation failed")

// Validation errors.
var (
	// ErrIncorrectCode is returned when the typed entry code does not match
	// the selected profile.
	ErrIncorrectCode = fmt.Errorf("%w: incorrect entry code", ErrValidationFailed)

	// ErrUnknownProfile is returned for profile ids outside the fixed set.
	ErrUnknownProfile = fmt.Errorf("%w: unknown profile", ErrValidationFailed)

	// ErrItemCodeRequired is returned when an item is created with a blank code.
	ErrItemCodeRequired = fmt.Errorf("%w: item code is required", ErrValidationFailed)

	// ErrItemIDRequired is returned when an item operation gets a blank id.
	ErrItemIDRequired = fmt.Errorf("%w: item id is required", ErrValidationFailed)

	// ErrInvalidRankingMode is returned for modes other than mine and global.
	ErrInvalidRankingMode = fmt.Errorf("%w: invalid ranking mode", ErrValidationFailed)
)

// Business errors recognised in API failures. They wrap the original
// adapter error, so outcome sentinels still match.
var (
	// ErrRatingCooldown is returned when the caller modified its rating of
	// the item less than five minutes ago.
	ErrRatingCooldown = errors.New("rating cooldown")

	// ErrAdminOnly is returned when a non-admin profile attempts an
	// administrative action.
	ErrAdminOnly = errors.New("admin only")
)

// ErrTokenCacheUnreadable is returned when the local token cache fails for
// a reason other than a missing token.
var ErrTokenCacheUnreadable = errors.New("token cache unreadable")
