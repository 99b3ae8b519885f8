package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/config"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/internal/utils"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/go-resty/resty/v2"
)

const headerRequestID = "X-Request-ID"

var emptyObject = json.RawMessage("{}")

type idGenerator interface {
	Generate() string
}

type httpServerAdapter struct {
	client  *utils.HTTPClient
	timeout time.Duration
	ids     idGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// The base URL is normalised from adapterCfg.HTTPAddress; every call is
// bounded by adapterCfg.RequestTimeout.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	if adapterCfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("invalid adapter request timeout %s", adapterCfg.RequestTimeout)
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{
		client:  client,
		timeout: adapterCfg.RequestTimeout,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// authedRequest may run on several goroutines while the UI loop swaps the
// token, hence the lock in Token.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// do performs one API call under its own timeout. The response body is
// decoded into result when result is non-nil.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, result any) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	requestID := h.ids.Generate()
	log := h.logger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Logger()

	req := h.authedRequest(ctx).SetHeader(headerRequestID, requestID)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	started := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		log.Err(err).Dur("elapsed", time.Since(started)).Msg("api call got no response")
		return nil, mapTransportError(err)
	}

	log = log.With().Int("status", resp.StatusCode()).Dur("elapsed", time.Since(started)).Logger()
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Msg("api call failed")
		return nil, err
	}
	log.Debug().Msg("api call succeeded")

	raw := json.RawMessage(resp.Body())
	if resp.StatusCode() == http.StatusNoContent || len(raw) == 0 {
		raw = emptyObject
	}

	if result != nil {
		if err = json.Unmarshal(raw, result); err != nil {
			log.Err(err).Msg("api response could not be decoded")
			return nil, &APIError{
				Outcome:    OutcomeRequestFailed,
				StatusCode: resp.StatusCode(),
				Detail:     InvalidResponseDetail,
				Err:        err,
			}
		}
	}

	return raw, nil
}

// Request implements [ServerAdapter].
func (h *httpServerAdapter) Request(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	return h.do(ctx, method, path, body, nil)
}

// ExchangePIN implements [ServerAdapter]. It POSTs to /auth/pin.
func (h *httpServerAdapter) ExchangePIN(ctx context.Context, profileID int, pin string) (string, error) {
	var out models.PinExchangeResponse
	reqBody := models.PinExchangeRequest{Profile: strconv.Itoa(profileID), Pin: pin}

	if _, err := h.do(ctx, http.MethodPost, "/auth/pin", reqBody, &out); err != nil {
		return "", err
	}

	if strings.TrimSpace(out.AccessToken) == "" {
		return "", &APIError{Outcome: OutcomeRequestFailed, StatusCode: http.StatusOK, Detail: InvalidResponseDetail}
	}
	return out.AccessToken, nil
}

// ListItems implements [ServerAdapter]. It GETs /items.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if _, err := h.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ItemsSummary implements [ServerAdapter]. It GETs /items/summary?range=all.
func (h *httpServerAdapter) ItemsSummary(ctx context.Context) ([]models.SummaryEntry, error) {
	var entries []models.SummaryEntry
	if _, err := h.do(ctx, http.MethodGet, "/items/summary?range=all", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateItem implements [ServerAdapter]. It POSTs to /items.
func (h *httpServerAdapter) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	var item models.Item
	if _, err := h.do(ctx, http.MethodPost, "/items", req, &item); err != nil {
		return models.Item{}, err
	}
	if item.ID == "" {
		return models.Item{}, &APIError{Outcome: OutcomeRequestFailed, StatusCode: http.StatusOK, Detail: InvalidResponseDetail}
	}
	return item, nil
}

// ItemDetail implements [ServerAdapter]. It GETs /items/{id}/detail.
func (h *httpServerAdapter) ItemDetail(ctx context.Context, itemID string) (models.ItemDetail, error) {
	var detail models.ItemDetail
	if _, err := h.do(ctx, http.MethodGet, itemPath(itemID, "detail"), nil, &detail); err != nil {
		return models.ItemDetail{}, err
	}
	return detail, nil
}

// SubmitRating implements [ServerAdapter]. It POSTs to /items/{id}/ratings.
func (h *httpServerAdapter) SubmitRating(ctx context.Context, itemID string, scores models.Scores) error {
	_, err := h.do(ctx, http.MethodPost, itemPath(itemID, "ratings"), scores, nil)
	return err
}

// Rankings implements [ServerAdapter]. It GETs /rankings?mode=.
func (h *httpServerAdapter) Rankings(ctx context.Context, mode models.RankingMode) (models.Rankings, error) {
	query := url.Values{"mode": []string{string(mode)}}

	var rankings models.Rankings
	if _, err := h.do(ctx, http.MethodGet, "/rankings?"+query.Encode(), nil, &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}

// DeleteItem implements [ServerAdapter]. It sends DELETE /items/{id}.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, itemID string) error {
	_, err := h.do(ctx, http.MethodDelete, itemPath(itemID, ""), nil, nil)
	return err
}

// Health implements [ServerAdapter]. It GETs /health.
func (h *httpServerAdapter) Health(ctx context.Context) error {
	_, err := h.do(ctx, http.MethodGet, "/health", nil, nil)
	return err
}

func itemPath(itemID, suffix string) string {
	p := "/items/" + url.PathEscape(itemID)
	if suffix != "" {
		p += "/" + suffix
	}
	return p
}
