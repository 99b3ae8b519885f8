// Package testutil provides an in-memory fake of the rating API for tests.
//
// [FakeAPI] serves the same routes and error bodies as the real API on an
// httptest server. Tests seed it with items and ratings, count calls per
// route, inject failures and delays, and move its clock to exercise the
// rating cooldown.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/rate-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Route keys accepted by [FakeAPI.Calls], [FakeAPI.FailWith] and [FakeAPI.Delay].
const (
	RouteAuthPin      = "POST /auth/pin"
	RouteListItems    = "GET /items"
	RouteItemsSummary = "GET /items/summary"
	RouteCreateItem   = "POST /items"
	RouteItemDetail   = "GET /items/{id}/detail"
	RouteSubmitRating = "POST /items/{id}/ratings"
	RouteDeleteItem   = "DELETE /items/{id}"
	RouteRankings     = "GET /rankings"
	RouteHealth       = "GET /health"
)

// DefaultCooldown is the minimal interval between two modifications of the
// same rating.
const DefaultCooldown = 5 * time.Minute

// DefaultAdminProfile is the only profile allowed to delete items.
const DefaultAdminProfile = 1

var signingKey = []byte("fake-api-signing-key")

type failure struct {
	status int
	detail any
}

// FakeAPI is an in-memory rating API. All methods are safe for concurrent use.
type FakeAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	items    []models.Item
	ratings  map[string]map[int]models.Rating
	tokens   map[string]int
	calls    map[string]int
	failures map[string]failure
	delays   map[string]time.Duration
	requests []string
	total    int
	now      time.Time

	// Cooldown is the rating modification cooldown. Zero disables it.
	Cooldown time.Duration
	// AdminProfile may delete items.
	AdminProfile int
}

// NewFakeAPI starts a fake API server that is closed when the test ends.
func NewFakeAPI(t testing.TB) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		ratings:      make(map[string]map[int]models.Rating),
		tokens:       make(map[string]int),
		calls:        make(map[string]int),
		failures:     make(map[string]failure),
		delays:       make(map[string]time.Duration),
		now:          time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		Cooldown:     DefaultCooldown,
		AdminProfile: DefaultAdminProfile,
	}
	f.server = httptest.NewServer(f.Init())
	t.Cleanup(f.server.Close)

	return f
}

// URL returns the base URL of the server.
func (f *FakeAPI) URL() string {
	return f.server.URL
}

// Close stops the server. Later calls fail with connection errors.
func (f *FakeAPI) Close() {
	f.server.Close()
}

// IssueToken returns a valid token for the profile without counting a
// PIN exchange.
func (f *FakeAPI) IssueToken(profileID int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issueTokenLocked(profileID)
}

func (f *FakeAPI) issueTokenLocked(profileID int) string {
	claims := jwt.RegisteredClaims{
		Subject:  strconv.Itoa(profileID),
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(f.now),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingKey)
	if err != nil {
		panic(err)
	}
	f.tokens[token] = profileID
	return token
}

// RevokeTokens invalidates every issued token.
func (f *FakeAPI) RevokeTokens() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.tokens)
}

// AddItem seeds an item and returns it.
func (f *FakeAPI) AddItem(code, name string) models.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addItemLocked(code, name)
}

func (f *FakeAPI) addItemLocked(code, name string) models.Item {
	item := models.Item{
		ID:        uuid.NewString(),
		Code:      code,
		Name:      name,
		CreatedAt: f.now,
	}
	f.items = append(f.items, item)
	return item
}

// Items returns a copy of the stored items.
func (f *FakeAPI) Items() []models.Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.items)
}

// SetRating seeds the rating of an item by a profile at the current clock.
func (f *FakeAPI) SetRating(itemID string, profileID int, scores models.Scores) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setRatingLocked(itemID, profileID, scores)
}

func (f *FakeAPI) setRatingLocked(itemID string, profileID int, scores models.Scores) {
	byProfile, ok := f.ratings[itemID]
	if !ok {
		byProfile = make(map[int]models.Rating)
		f.ratings[itemID] = byProfile
	}
	byProfile[profileID] = models.Rating{Scores: scores, Total: scores.Total(), CreatedAt: f.now}
}

// Rating returns the stored rating of an item by a profile.
func (f *FakeAPI) Rating(itemID string, profileID int) (models.Rating, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.ratings[itemID][profileID]
	return r, ok
}

// Advance moves the server clock forward.
func (f *FakeAPI) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Calls returns how many requests reached route. Requests rejected by the
// authorization check are not counted here.
func (f *FakeAPI) Calls(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

// TotalCalls returns the number of requests received, rejected ones included.
func (f *FakeAPI) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total
}

// RequestIDs returns the X-Request-ID headers received so far.
func (f *FakeAPI) RequestIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.requests)
}

// FailWith makes route answer status with {"detail": detail} until
// [FakeAPI.Reset] is called. detail may be any JSON value; nil omits the body.
func (f *FakeAPI) FailWith(route string, status int, detail any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[route] = failure{status: status, detail: detail}
}

// Delay makes route wait d before answering.
func (f *FakeAPI) Delay(route string, d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delays[route] = d
}

// Reset clears injected failures, delays and call counters.
func (f *FakeAPI) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	clear(f.failures)
	clear(f.delays)
	clear(f.calls)
	f.total = 0
}

// injection returns what was configured for route.
func (f *FakeAPI) injection(route string) (failure, bool, time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fail, ok := f.failures[route]
	return fail, ok, f.delays[route]
}

func (f *FakeAPI) count(route string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[route]++
}

// withRequestCounter records every incoming request before routing.
func (f *FakeAPI) withRequestCounter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.total++
		if id := r.Header.Get("X-Request-ID"); id != "" {
			f.requests = append(f.requests, id)
		}
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
