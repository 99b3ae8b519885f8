package models

import "strings"

// RankingMode selects whose ratings feed the rankings.
type RankingMode string

const (
	// RankingModeMine aggregates only the caller's ratings.
	RankingModeMine RankingMode = "mine"
	// RankingModeGlobal aggregates the ratings of every profile.
	RankingModeGlobal RankingMode = "global"
)

// Valid reports whether m is one of the known modes.
func (m RankingMode) Valid() bool {
	return m == RankingModeMine || m == RankingModeGlobal
}

// Toggle returns the other mode.
func (m RankingMode) Toggle() RankingMode {
	if m == RankingModeGlobal {
		return RankingModeMine
	}
	return RankingModeGlobal
}

// Metric is one of the published ranking dimensions.
type Metric string

const (
	MetricTotal Metric = "total"
	MetricA     Metric = "a"
	MetricB     Metric = "b"
	MetricC     Metric = "c"
	MetricD     Metric = "d"
	MetricN     Metric = "n"
)

// Metrics lists the ranking metrics in the order they are presented.
var Metrics = []Metric{MetricTotal, MetricA, MetricB, MetricC, MetricD, MetricN}

// Title returns the upper-case title of the metric.
func (m Metric) Title() string {
	return strings.ToUpper(string(m))
}

// RankingEntry is one row of a ranking.
type RankingEntry struct {
	ItemID string  `json:"item_id"`
	Code   string  `json:"code"`
	Value  float64 `json:"value"`
}

// Rankings maps each metric to its entries in server order.
type Rankings map[Metric][]RankingEntry
