package models

import "time"

// Item is a rateable entity created by one of the profiles.
type Item struct {
	// ID is the server-assigned identifier (a UUID string).
	ID string `json:"id"`

	// Code is the short mandatory label of the item.
	Code string `json:"code"`

	// Name is the optional long name.
	Name string `json:"name"`

	// CreatedAt is the creation timestamp reported by the API.
	// It is zero when the payload omits it (detail responses).
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SummaryEntry is the per-item aggregate scoped to the calling profile.
type SummaryEntry struct {
	// ID is the item identifier.
	ID string `json:"id"`

	// MyBestTotal is the best total the caller has given the item,
	// or nil when the caller has never rated it.
	MyBestTotal *float64 `json:"my_best_total"`
}

// Summary indexes summary entries by item id.
type Summary map[string]SummaryEntry

// NewSummary builds a [Summary] from the list returned by the API.
func NewSummary(entries []SummaryEntry) Summary {
	s := make(Summary, len(entries))
	for _, e := range entries {
		s[e.ID] = e
	}
	return s
}

// BestTotal returns the caller's best total for the item, if any.
func (s Summary) BestTotal(itemID string) (float64, bool) {
	e, ok := s[itemID]
	if !ok || e.MyBestTotal == nil {
		return 0, false
	}
	return *e.MyBestTotal, true
}
