package controller

import (
	"context"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/models"
)

// RankingRow is one ranked item. Rank is 1-based.
type RankingRow struct {
	Rank   int
	ItemID string
	Code   string
	Value  float64
}

// RankingSection is the ranking of one metric.
type RankingSection struct {
	Metric models.Metric
	Title  string
	Rows   []RankingRow
}

// Empty reports whether the metric has no ranked items.
func (s RankingSection) Empty() bool {
	return len(s.Rows) == 0
}

// BuildRankingSections turns a rankings payload into one section per
// metric, in [models.Metrics] order. Rows keep the payload order.
func BuildRankingSections(r models.Rankings) []RankingSection {
	sections := make([]RankingSection, 0, len(models.Metrics))
	for _, m := range models.Metrics {
		entries := r[m]
		section := RankingSection{
			Metric: m,
			Title:  "Top " + m.Title(),
			Rows:   make([]RankingRow, 0, len(entries)),
		}
		for i, e := range entries {
			section.Rows = append(section.Rows, RankingRow{
				Rank:   i + 1,
				ItemID: e.ItemID,
				Code:   e.Code,
				Value:  e.Value,
			})
		}
		sections = append(sections, section)
	}
	return sections
}

func (c *Controller) openRankings(_ context.Context, _ Intent) Cmd {
	c.state.View = ViewRankings
	return c.fetchRankings()
}

func (c *Controller) toggleRankingMode(_ context.Context, _ Intent) Cmd {
	c.state.RankingsMode = c.state.RankingsMode.Toggle()
	return c.fetchRankings()
}

// fetchRankings discards the shown rankings and requests the current mode.
func (c *Controller) fetchRankings() Cmd {
	c.state.Rankings = nil
	c.state.RankingsLoaded = false

	rankings := c.services.RankingService
	mode := c.state.RankingsMode
	return func(ctx context.Context) Result {
		r, err := rankings.Rankings(ctx, mode)
		return rankingsResult{mode: mode, rankings: r, err: err}
	}
}

func (c *Controller) applyRankings(res rankingsResult) {
	if res.mode != c.state.RankingsMode {
		c.logger.Debug().Str("mode", string(res.mode)).Msg("discarding rankings of previous mode")
		return
	}

	c.state.RankingsLoaded = true
	if res.err != nil {
		c.logger.Err(res.err).Str("mode", string(res.mode)).Msg("rankings not loaded")
		c.state.Rankings = nil
		c.notifyError(res.err, app.MsgGenericError)
		return
	}

	c.state.Rankings = BuildRankingSections(res.rankings)
}
