package controller

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/rate-keeper/internal/testutil"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRankingSections(t *testing.T) {
	r := models.Rankings{
		// deliberately not sorted by value
		models.MetricTotal: {
			{ItemID: "i2", Code: "B", Value: 1.5},
			{ItemID: "i1", Code: "A", Value: 30},
		},
		models.MetricC: {{ItemID: "i1", Code: "A", Value: 7}},
	}

	sections := BuildRankingSections(r)

	require.Len(t, sections, len(models.Metrics))
	for i, m := range models.Metrics {
		assert.Equal(t, m, sections[i].Metric)
	}
	assert.Equal(t, "Top TOTAL", sections[0].Title)
	assert.Equal(t, []RankingRow{
		{Rank: 1, ItemID: "i2", Code: "B", Value: 1.5},
		{Rank: 2, ItemID: "i1", Code: "A", Value: 30},
	}, sections[0].Rows)

	assert.True(t, sections[1].Empty())
	assert.False(t, sections[3].Empty())
	assert.True(t, sections[5].Empty())
}

func TestController_Rankings_ModeSwitchRebuildsSections(t *testing.T) {
	h := newHarness(t)
	a := h.api.AddItem("A", "")
	b := h.api.AddItem("B", "")
	// profile 1 prefers A, the others strongly prefer B
	h.api.SetRating(a.ID, 1, models.Scores{A: 10, B: 10})
	h.api.SetRating(b.ID, 1, models.Scores{A: 1})
	h.api.SetRating(b.ID, 2, models.Scores{A: 10, B: 10, C: 10, D: 10, N: 2})
	h.api.SetRating(b.ID, 3, models.Scores{A: 10, B: 10, C: 10, D: 10, N: 2})
	h.loginCached(1)

	h.do(OpenRankings())
	st := h.c.State()
	assert.Equal(t, ViewRankings, st.View)
	assert.Equal(t, models.RankingModeMine, st.RankingsMode)
	require.True(t, st.RankingsLoaded)
	require.Len(t, st.Rankings, len(models.Metrics))
	mine := st.Rankings[0]
	require.Len(t, mine.Rows, 2)
	assert.Equal(t, a.ID, mine.Rows[0].ItemID)

	h.do(ToggleRankingMode())
	st = h.c.State()
	assert.Equal(t, 2, h.api.Calls(testutil.RouteRankings))
	assert.Equal(t, models.RankingModeGlobal, st.RankingsMode)
	global := st.Rankings[0]
	assert.Equal(t, models.MetricTotal, global.Metric)
	require.Len(t, global.Rows, 2)
	assert.Equal(t, []string{b.ID, a.ID}, []string{global.Rows[0].ItemID, global.Rows[1].ItemID})
	assert.Equal(t, 1, global.Rows[0].Rank)
	assert.Equal(t, 2, global.Rows[1].Rank)
}

func TestController_Rankings_ModePersistsAcrossVisits(t *testing.T) {
	h := newHarness(t)
	h.loginCached(1)

	h.do(OpenRankings())
	h.do(ToggleRankingMode())
	h.do(Back())
	assert.Equal(t, ViewItems, h.c.State().View)

	h.do(OpenRankings())
	assert.Equal(t, models.RankingModeGlobal, h.c.State().RankingsMode)
}

func TestController_Rankings_StaleModeDiscarded(t *testing.T) {
	h := newHarness(t)
	h.loginCached(1)

	old := h.c.Dispatch(h.ctx, OpenRankings())
	h.do(ToggleRankingMode())
	h.drain(old)

	st := h.c.State()
	assert.Equal(t, models.RankingModeGlobal, st.RankingsMode)
	assert.True(t, st.RankingsLoaded)
}

func TestController_Rankings_Failure(t *testing.T) {
	h := newHarness(t)
	h.loginCached(1)
	h.api.FailWith(testutil.RouteRankings, http.StatusInternalServerError, "RANKINGS_DOWN")

	h.do(OpenRankings())

	st := h.c.State()
	assert.Equal(t, ViewRankings, st.View)
	assert.Nil(t, st.Rankings)
	assert.Equal(t, "RANKINGS_DOWN", h.notice())
}

func TestController_Rankings_EntryOpensDetail(t *testing.T) {
	h := newHarness(t)
	item := h.api.AddItem("A", "")
	h.api.SetRating(item.ID, 1, models.Scores{A: 3})
	h.loginCached(1)
	h.do(OpenRankings())

	row := h.c.State().Rankings[0].Rows[0]
	h.do(OpenRankingEntry(row.ItemID))

	st := h.c.State()
	assert.Equal(t, ViewDetail, st.View)
	require.NotNil(t, st.Detail)
	assert.Equal(t, item.ID, st.Detail.Item.ID)

	h.do(Back())
	assert.Equal(t, ViewItems, h.c.State().View)
}
