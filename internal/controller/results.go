package controller

import "github.com/MKhiriev/rate-keeper/models"

// scopedResult ties a Result to the session epoch its Cmd was issued under.
type scopedResult struct {
	Result
	epoch uint64
}

type loginResult struct {
	profileID int
	session   models.Session
	err       error
}

type itemsResult struct {
	items   []models.Item
	summary models.Summary
	err     error
}

type detailResult struct {
	itemID string
	detail models.ItemDetail
	err    error
}

type createResult struct {
	item models.Item
	err  error
}

type deleteResult struct {
	itemID string
	err    error
}

type ratingResult struct {
	itemID string
	err    error
}

type rankingsResult struct {
	mode     models.RankingMode
	rankings models.Rankings
	err      error
}

func (r loginResult) failure() error { return r.err }
func (r itemsResult) failure() error { return r.err }
func (r detailResult) failure() error { return r.err }
func (r createResult) failure() error { return r.err }
func (r deleteResult) failure() error { return r.err }
func (r ratingResult) failure() error { return r.err }
func (r rankingsResult) failure() error { return r.err }
