package testutil

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type profileCtxKey struct{}

// Init builds the router of the fake API.
func (f *FakeAPI) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(f.withRequestCounter)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", f.route(RouteHealth, f.health))
		r.Post("/auth/pin", f.route(RouteAuthPin, f.authPin))
	})

	router.Group(func(r chi.Router) {
		r.Use(f.auth)

		r.Get("/items", f.route(RouteListItems, f.listItems))
		r.Post("/items", f.route(RouteCreateItem, f.createItem))
		r.Get("/items/summary", f.route(RouteItemsSummary, f.itemsSummary))
		r.Get("/items/{id}/detail", f.route(RouteItemDetail, f.itemDetail))
		r.Post("/items/{id}/ratings", f.route(RouteSubmitRating, f.submitRating))
		r.Delete("/items/{id}", f.route(RouteDeleteItem, f.deleteItem))
		r.Get("/rankings", f.route(RouteRankings, f.rankings))
	})

	return router
}

// route counts the call and applies injected delays and failures before
// handing over to h.
func (f *FakeAPI) route(key string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.count(key)

		fail, failing, delay := f.injection(key)
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		if failing {
			if fail.detail == nil {
				w.WriteHeader(fail.status)
				return
			}
			writeDetail(w, fail.status, fail.detail)
			return
		}

		h(w, r)
	}
}

// auth rejects requests without a token issued by this server.
func (f *FakeAPI) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "NOT_AUTHENTICATED")
			return
		}

		f.mu.Lock()
		profileID, known := f.tokens[token]
		f.mu.Unlock()
		if !known {
			writeDetail(w, http.StatusUnauthorized, "INVALID_TOKEN")
			return
		}

		ctx := context.WithValue(r.Context(), profileCtxKey{}, profileID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func profileFromRequest(r *http.Request) int {
	id, _ := r.Context().Value(profileCtxKey{}).(int)
	return id
}
