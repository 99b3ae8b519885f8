package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankingMode(t *testing.T) {
	assert.True(t, RankingModeMine.Valid())
	assert.True(t, RankingModeGlobal.Valid())
	assert.False(t, RankingMode("everyone").Valid())
	assert.False(t, RankingMode("").Valid())

	assert.Equal(t, RankingModeGlobal, RankingModeMine.Toggle())
	assert.Equal(t, RankingModeMine, RankingModeGlobal.Toggle())
}

func TestMetrics(t *testing.T) {
	assert.Equal(t, []Metric{MetricTotal, MetricA, MetricB, MetricC, MetricD, MetricN}, Metrics)
	assert.Equal(t, "TOTAL", MetricTotal.Title())
	assert.Equal(t, "N", MetricN.Title())
}

func TestRankings_Decode(t *testing.T) {
	payload := `{
		"total": [{"item_id": "i2", "code": "B2", "value": 20}, {"item_id": "i1", "code": "A1", "value": 12.5}],
		"a": []
	}`

	var r Rankings
	require.NoError(t, json.Unmarshal([]byte(payload), &r))

	require.Len(t, r[MetricTotal], 2)
	assert.Equal(t, "B2", r[MetricTotal][0].Code)
	assert.InDelta(t, 12.5, r[MetricTotal][1].Value, 1e-9)
	assert.Empty(t, r[MetricA])
	assert.Nil(t, r[MetricN])
}

func TestSummary(t *testing.T) {
	best := 18.0
	s := NewSummary([]SummaryEntry{
		{ID: "i1", MyBestTotal: &best},
		{ID: "i2"},
	})

	v, ok := s.BestTotal("i1")
	assert.True(t, ok)
	assert.InDelta(t, 18.0, v, 1e-9)

	_, ok = s.BestTotal("i2")
	assert.False(t, ok)

	_, ok = s.BestTotal("missing")
	assert.False(t, ok)

	var empty Summary
	_, ok = empty.BestTotal("i1")
	assert.False(t, ok)
}
