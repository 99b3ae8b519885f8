package tui

import (
	"testing"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/controller"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderDetail(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	mine := &models.Rating{
		Scores:    models.Scores{A: 5, B: 5, C: 5, D: 5, N: 1},
		Total:     21,
		CreatedAt: now.Add(-3 * time.Minute),
	}

	st := controller.State{
		View: controller.ViewDetail,
		Detail: &models.ItemDetail{
			Item:          models.Item{ID: "i1", Code: "A1", Name: "Alpha"},
			CanViewOthers: true,
			RatingsByProfile: []models.ProfileRating{
				{Profile: "1", Rating: mine},
				{Profile: "2"},
			},
			MyRating: mine,
		},
		Editor: controller.NewEditor(mine),
	}

	out := renderDetail(st, now)

	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "rated 3 minutes ago")
	assert.Contains(t, out, "P1 | A 5 · B 5 · C 5 · D 5 · N 1 = 21")
	assert.Contains(t, out, "P2 | "+emptyValue)
	assert.Contains(t, out, "Total 21")
	assert.NotContains(t, out, app.MsgRateToSeeOthers)
}

func TestRenderDetail_HiddenRatings(t *testing.T) {
	st := controller.State{
		View: controller.ViewDetail,
		Detail: &models.ItemDetail{
			Item: models.Item{ID: "i1", Code: "A1"},
			RatingsByProfile: []models.ProfileRating{
				{Profile: "1"}, {Profile: "2"}, {Profile: "3"}, {Profile: "4"},
			},
		},
	}

	out := renderDetail(st, time.Now())

	assert.Contains(t, out, app.MsgRateToSeeOthers)
	assert.Contains(t, out, "P4 | "+emptyValue)
	assert.NotContains(t, out, "rated")
}

func TestRenderDetail_NoDetail(t *testing.T) {
	loading := renderDetail(controller.State{View: controller.ViewDetail, InFlight: 1}, time.Now())
	assert.Contains(t, loading, "Loading...")

	failed := renderDetail(controller.State{View: controller.ViewDetail}, time.Now())
	assert.Contains(t, failed, app.MsgNoData)
}

func TestRenderRankings(t *testing.T) {
	st := controller.State{
		View:         controller.ViewRankings,
		RankingsMode: models.RankingModeMine,
		Rankings: controller.BuildRankingSections(models.Rankings{
			models.MetricTotal: {
				{ItemID: "i2", Code: "B2", Value: 20},
				{ItemID: "i1", Code: "A1", Value: 12.3},
			},
		}),
		RankingsLoaded: true,
	}

	out := renderRankings(st, 1)

	assert.Contains(t, out, "[mine]")
	assert.Contains(t, out, "Top TOTAL")
	assert.Contains(t, out, " 1. B2")
	assert.Contains(t, out, "20.0")
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "12.3")
	assert.Contains(t, out, "Top N")
	assert.Contains(t, out, app.MsgNoData)
}

func TestRenderRankings_Loading(t *testing.T) {
	out := renderRankings(controller.State{RankingsMode: models.RankingModeGlobal}, 0)

	assert.Contains(t, out, "[global]")
	assert.Contains(t, out, "Loading...")
	assert.NotContains(t, out, "Top TOTAL")
}

func TestRenderItems(t *testing.T) {
	best := 17.0
	st := controller.State{
		View:        controller.ViewItems,
		Session:     models.Session{ProfileID: 3, Token: "opaque"},
		ItemsLoaded: true,
		Items: []models.Item{
			{ID: "i1", Code: "A1", Name: "Alpha"},
			{ID: "i2", Code: "B2"},
		},
		Summary: models.NewSummary([]models.SummaryEntry{{ID: "i1", MyBestTotal: &best}}),
	}

	out := renderItems(st, 0, newItemForm())

	assert.Contains(t, out, "ITEMS · P3")
	assert.Contains(t, out, "17.0")
	assert.Contains(t, out, emptyValue)
	assert.NotContains(t, out, "New item")

	empty := renderItems(controller.State{ItemsLoaded: true}, 0, newItemForm())
	assert.Contains(t, empty, app.MsgNoItems)

	loading := renderItems(controller.State{}, 0, newItemForm())
	assert.Contains(t, loading, "Loading...")
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "■■■□□□□□□□", scoreBar(3, 10))
	assert.Equal(t, "■■", scoreBar(2, 2))
	assert.Equal(t, "□□", scoreBar(0, 2))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "абвг...", fitText("абвгдежзий", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, clampIndex(-1, 3))
	assert.Equal(t, 2, clampIndex(5, 3))
	assert.Equal(t, 1, clampIndex(1, 3))
	assert.Equal(t, 0, clampIndex(4, 0))
}
