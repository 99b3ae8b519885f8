package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated state of the running client.
//
// At most one Session is active at a time. The token is opaque to the client:
// it is never validated locally and its expiry is only discovered through an
// unauthorized response from the API.
type Session struct {
	// ProfileID is the profile the token was issued for.
	ProfileID int

	// Token is the bearer credential sent with every authenticated request.
	Token string
}

// IsZero reports whether the session carries no token.
func (s Session) IsZero() bool {
	return s.Token == ""
}

// Subject returns the "sub" claim of the token when the token happens to be a
// JWT. The signature is not verified; the value is used for display only.
// An empty string is returned for tokens that cannot be decoded.
func (s Session) Subject() string {
	if s.Token == "" {
		return ""
	}

	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return ""
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// PinExchangeRequest is the body of POST /auth/pin.
type PinExchangeRequest struct {
	// Profile is the profile id encoded as a decimal string.
	Profile string `json:"profile"`

	// Pin is the entry code typed by the user.
	Pin string `json:"pin"`
}

// PinExchangeResponse is the success body of POST /auth/pin.
type PinExchangeResponse struct {
	// AccessToken is the issued bearer token.
	AccessToken string `json:"access_token"`

	// TokenType is informational; the API always answers "bearer".
	TokenType string `json:"token_type,omitempty"`
}
