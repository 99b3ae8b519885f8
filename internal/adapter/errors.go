package adapter

import (
	"errors"
	"fmt"
)

// Outcome classifies a failed API call.
type Outcome int

const (
	// OutcomeUnavailable means no server response: timeout, abort or
	// transport failure.
	OutcomeUnavailable Outcome = iota + 1
	// OutcomeUnauthenticated means HTTP 401: the session is invalid or expired.
	OutcomeUnauthenticated
	// OutcomeForbidden means HTTP 403: the action is not permitted.
	OutcomeForbidden
	// OutcomeRequestFailed means any other non-2xx status or an undecodable
	// success body.
	OutcomeRequestFailed
)

// Sentinel errors matched by [APIError] through errors.Is.
var (
	// ErrUnavailable is matched by every [OutcomeUnavailable] failure.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthenticated is matched by every [OutcomeUnauthenticated] failure.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is matched by every [OutcomeForbidden] failure.
	ErrForbidden = errors.New("forbidden")
	// ErrRequestFailed is matched by every [OutcomeRequestFailed] failure.
	ErrRequestFailed = errors.New("request failed")
)

// Default details used when the response body carries no usable reason.
const (
	DefaultForbiddenDetail = "Forbidden"
	DefaultErrorDetail     = "Error"
	InvalidResponseDetail  = "invalid response"
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeUnauthenticated:
		return "unauthenticated"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeRequestFailed:
		return "request_failed"
	default:
		return "unknown"
	}
}

func (o Outcome) sentinel() error {
	switch o {
	case OutcomeUnavailable:
		return ErrUnavailable
	case OutcomeUnauthenticated:
		return ErrUnauthenticated
	case OutcomeForbidden:
		return ErrForbidden
	default:
		return ErrRequestFailed
	}
}

// APIError is the only error type returned by [ServerAdapter] methods.
type APIError struct {
	// Outcome is the classification of the failure.
	Outcome Outcome
	// StatusCode is the HTTP status, 0 when no response arrived.
	StatusCode int
	// Detail is the server-supplied reason or its default.
	// Empty for Unavailable and Unauthenticated.
	Detail string
	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *APIError) Error() string {
	msg := e.Outcome.sentinel().Error()
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (http %d)", msg, e.StatusCode)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the outcome sentinel and the underlying cause.
func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Outcome.sentinel()}
	}
	return []error{e.Outcome.sentinel(), e.Err}
}

// Detail returns the server-supplied reason carried by err, or "" when err
// is not an [APIError].
func Detail(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// OutcomeOf returns the outcome carried by err, or 0 when err is not an [APIError].
func OutcomeOf(err error) Outcome {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Outcome
	}
	return 0
}
