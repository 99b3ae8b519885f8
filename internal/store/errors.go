package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrTokenNotFound is returned when no token has been cached for the profile.
	ErrTokenNotFound = errors.New("token not found")

	// ErrUnknownProfile is returned for profile ids outside the fixed set.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrEmptyToken is returned when asked to cache a blank token.
	ErrEmptyToken = errors.New("empty token")

	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")
)
