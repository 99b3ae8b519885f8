// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's gateway to the rating API.
//
// [ServerAdapter] hides the HTTP transport from the service layer. Every call
// is bounded by its own timeout and every failure is classified into exactly
// one of four outcomes (see [Outcome]): callers match them with [errors.Is]
// against [ErrUnavailable], [ErrUnauthenticated], [ErrForbidden] and
// [ErrRequestFailed], and read the server-supplied reason with [Detail].
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/rate-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the rating API.
type ServerAdapter interface {
	// SetToken installs the bearer token attached to every subsequent
	// request. An empty token removes the Authorization header.
	SetToken(token string)

	// Token returns the bearer token currently installed, or "".
	Token() string

	// Request performs a raw call and returns the response body. A 204
	// response yields "{}". Failures are always *APIError values.
	Request(ctx context.Context, method, path string, body any) (json.RawMessage, error)

	// ExchangePIN trades a profile's entry code for a session token.
	// The token is returned, not installed.
	ExchangePIN(ctx context.Context, profileID int, pin string) (string, error)

	// ListItems returns every item visible to the caller.
	ListItems(ctx context.Context) ([]models.Item, error)

	// ItemsSummary returns the caller's all-time per-item aggregates.
	ItemsSummary(ctx context.Context) ([]models.SummaryEntry, error)

	// CreateItem creates a new item and returns it with its server id.
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)

	// ItemDetail returns the detail payload of one item.
	ItemDetail(ctx context.Context, itemID string) (models.ItemDetail, error)

	// SubmitRating creates or replaces the caller's rating of an item.
	// The API rejects a change made too soon after the previous one with
	// a RequestFailed outcome whose detail is "COOLDOWN_RATING_5MIN".
	SubmitRating(ctx context.Context, itemID string, scores models.Scores) error

	// Rankings returns the per-metric rankings for the given mode.
	Rankings(ctx context.Context, mode models.RankingMode) (models.Rankings, error)

	// DeleteItem removes an item. Only administrators may do so; others get
	// a Forbidden outcome.
	DeleteItem(ctx context.Context, itemID string) error

	// Health probes the API liveness endpoint.
	Health(ctx context.Context) error
}
