package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapTransportError classifies a call that produced no response.
func mapTransportError(err error) error {
	return &APIError{Outcome: OutcomeUnavailable, Err: err}
}

// mapHTTPError classifies a response by status code. It returns nil for 2xx.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	switch status {
	case http.StatusUnauthorized:
		return &APIError{Outcome: OutcomeUnauthenticated, StatusCode: status}
	case http.StatusForbidden:
		return &APIError{Outcome: OutcomeForbidden, StatusCode: status, Detail: extractDetail(resp.Body(), DefaultForbiddenDetail)}
	default:
		return &APIError{Outcome: OutcomeRequestFailed, StatusCode: status, Detail: extractDetail(resp.Body(), DefaultErrorDetail)}
	}
}

// extractDetail reads {"detail": "..."} from body. A body that is not JSON,
// lacks the field or carries a non-string detail yields fallback.
func extractDetail(body []byte, fallback string) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return fallback
	}

	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err != nil {
		return fallback
	}

	detail = strings.TrimSpace(detail)
	if detail == "" {
		return fallback
	}
	return detail
}
