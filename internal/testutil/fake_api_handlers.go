package testutil

import (
	"cmp"
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/MKhiriev/rate-keeper/internal/utils"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	_, _ = utils.WriteJSON(w, v, status)
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

// validationDetail mimics the array-shaped detail of request validation errors.
func validationDetail(field, msg string) []map[string]any {
	return []map[string]any{{"loc": []string{"body", field}, "msg": msg, "type": "value_error"}}
}

func (f *FakeAPI) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (f *FakeAPI) authPin(w http.ResponseWriter, r *http.Request) {
	var req models.PinExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, validationDetail("profile", err.Error()))
		return
	}

	id, err := strconv.Atoi(req.Profile)
	profile, ok := models.LookupProfile(id)
	if err != nil || !ok {
		writeDetail(w, http.StatusUnprocessableEntity, validationDetail("profile", "unknown profile"))
		return
	}
	if req.Pin != profile.EntryCode {
		writeDetail(w, http.StatusUnauthorized, "INVALID_PIN")
		return
	}

	f.mu.Lock()
	token := f.issueTokenLocked(profile.ID)
	f.mu.Unlock()

	writeJSON(w, http.StatusOK, models.PinExchangeResponse{AccessToken: token, TokenType: "bearer"})
}

func (f *FakeAPI) listItems(w http.ResponseWriter, _ *http.Request) {
	f.mu.Lock()
	items := slices.Clone(f.items)
	f.mu.Unlock()

	if items == nil {
		items = []models.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (f *FakeAPI) itemsSummary(w http.ResponseWriter, r *http.Request) {
	profileID := profileFromRequest(r)

	f.mu.Lock()
	defer f.mu.Unlock()

	entries := make([]models.SummaryEntry, 0, len(f.items))
	for _, item := range f.items {
		entry := models.SummaryEntry{ID: item.ID}
		if rating, ok := f.ratings[item.ID][profileID]; ok {
			best := float64(rating.Total)
			entry.MyBestTotal = &best
		}
		entries = append(entries, entry)
	}
	writeJSON(w, http.StatusOK, entries)
}

func (f *FakeAPI) createItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, validationDetail("code", err.Error()))
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeDetail(w, http.StatusUnprocessableEntity, validationDetail("code", "field required"))
		return
	}

	f.mu.Lock()
	item := f.addItemLocked(req.Code, req.Name)
	f.mu.Unlock()

	writeJSON(w, http.StatusCreated, item)
}

func (f *FakeAPI) findItemLocked(id string) (models.Item, int) {
	idx := slices.IndexFunc(f.items, func(it models.Item) bool { return it.ID == id })
	if idx < 0 {
		return models.Item{}, -1
	}
	return f.items[idx], idx
}

func (f *FakeAPI) itemDetail(w http.ResponseWriter, r *http.Request) {
	profileID := profileFromRequest(r)
	id := chi.URLParam(r, "id")

	f.mu.Lock()
	defer f.mu.Unlock()

	item, idx := f.findItemLocked(id)
	if idx < 0 {
		writeDetail(w, http.StatusNotFound, "ITEM_NOT_FOUND")
		return
	}

	byProfile := f.ratings[id]
	own, rated := byProfile[profileID]

	detail := models.ItemDetail{
		Item:          models.Item{ID: item.ID, Code: item.Code, Name: item.Name},
		CanViewOthers: rated,
	}
	if rated {
		detail.MyRating = &own
	}
	for _, p := range models.Profiles() {
		entry := models.ProfileRating{Profile: strconv.Itoa(p.ID)}
		if rating, ok := byProfile[p.ID]; ok && (rated || p.ID == profileID) {
			entry.Rating = &rating
		}
		detail.RatingsByProfile = append(detail.RatingsByProfile, entry)
	}

	writeJSON(w, http.StatusOK, detail)
}

func (f *FakeAPI) submitRating(w http.ResponseWriter, r *http.Request) {
	profileID := profileFromRequest(r)
	id := chi.URLParam(r, "id")

	var scores models.Scores
	if err := json.NewDecoder(r.Body).Decode(&scores); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, validationDetail("a", err.Error()))
		return
	}
	if scores != scores.Clamp() {
		writeDetail(w, http.StatusUnprocessableEntity, validationDetail("a", "score out of range"))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, idx := f.findItemLocked(id); idx < 0 {
		writeDetail(w, http.StatusNotFound, "ITEM_NOT_FOUND")
		return
	}
	if prev, ok := f.ratings[id][profileID]; ok && f.Cooldown > 0 && f.now.Sub(prev.CreatedAt) < f.Cooldown {
		writeDetail(w, http.StatusTooManyRequests, "COOLDOWN_RATING_5MIN")
		return
	}

	f.setRatingLocked(id, profileID, scores)
	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeAPI) deleteItem(w http.ResponseWriter, r *http.Request) {
	if profileFromRequest(r) != f.AdminProfile {
		writeDetail(w, http.StatusForbidden, "ADMIN_ONLY")
		return
	}
	id := chi.URLParam(r, "id")

	f.mu.Lock()
	defer f.mu.Unlock()

	_, idx := f.findItemLocked(id)
	if idx < 0 {
		writeDetail(w, http.StatusNotFound, "ITEM_NOT_FOUND")
		return
	}
	f.items = slices.Delete(f.items, idx, idx+1)
	delete(f.ratings, id)

	w.WriteHeader(http.StatusNoContent)
}

func (f *FakeAPI) rankings(w http.ResponseWriter, r *http.Request) {
	profileID := profileFromRequest(r)
	mode := models.RankingMode(r.URL.Query().Get("mode"))
	if !mode.Valid() {
		writeDetail(w, http.StatusUnprocessableEntity, validationDetail("mode", "invalid mode"))
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	out := make(map[models.Metric][]models.RankingEntry, len(models.Metrics))
	for _, m := range models.Metrics {
		entries := []models.RankingEntry{}
		for _, item := range f.items {
			value, ok := f.metricValueLocked(item.ID, m, mode, profileID)
			if ok {
				entries = append(entries, models.RankingEntry{ItemID: item.ID, Code: item.Code, Value: value})
			}
		}
		slices.SortStableFunc(entries, func(a, b models.RankingEntry) int {
			return cmp.Compare(b.Value, a.Value)
		})
		out[m] = entries
	}

	writeJSON(w, http.StatusOK, out)
}

// metricValueLocked returns the caller's value in mine mode and the mean
// over every profile in global mode.
func (f *FakeAPI) metricValueLocked(itemID string, m models.Metric, mode models.RankingMode, profileID int) (float64, bool) {
	byProfile := f.ratings[itemID]
	if mode == models.RankingModeMine {
		rating, ok := byProfile[profileID]
		if !ok {
			return 0, false
		}
		return metricOf(rating, m), true
	}

	if len(byProfile) == 0 {
		return 0, false
	}
	var sum float64
	for _, rating := range byProfile {
		sum += metricOf(rating, m)
	}
	return sum / float64(len(byProfile)), true
}

func metricOf(r models.Rating, m models.Metric) float64 {
	switch m {
	case models.MetricA:
		return float64(r.A)
	case models.MetricB:
		return float64(r.B)
	case models.MetricC:
		return float64(r.C)
	case models.MetricD:
		return float64(r.D)
	case models.MetricN:
		return float64(r.N)
	default:
		return float64(r.Total)
	}
}
