// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Sub-score bounds. A, B, C and D share the same range; N is narrower.
const (
	ScoreMin    = 0
	ScoreMax    = 10
	ScoreNMax   = 2
	ScoreFields = 5
)

// ScoreField identifies one of the five sub-scores.
type ScoreField int

const (
	ScoreA ScoreField = iota
	ScoreB
	ScoreC
	ScoreD
	ScoreN
)

// ScoreFieldsOrdered lists the sub-scores in display order.
var ScoreFieldsOrdered = []ScoreField{ScoreA, ScoreB, ScoreC, ScoreD, ScoreN}

// String returns the upper-case label of the field.
func (f ScoreField) String() string {
	switch f {
	case ScoreA:
		return "A"
	case ScoreB:
		return "B"
	case ScoreC:
		return "C"
	case ScoreD:
		return "D"
	case ScoreN:
		return "N"
	default:
		return "?"
	}
}

// Max returns the inclusive upper bound of the field.
func (f ScoreField) Max() int {
	if f == ScoreN {
		return ScoreNMax
	}
	return ScoreMax
}

// Scores holds the five sub-scores of a rating. It is also the body of
// POST /items/{id}/ratings.
type Scores struct {
	A int `json:"a"`
	B int `json:"b"`
	C int `json:"c"`
	D int `json:"d"`
	N int `json:"n"`
}

// Get returns the value of a single sub-score.
func (s Scores) Get(f ScoreField) int {
	switch f {
	case ScoreA:
		return s.A
	case ScoreB:
		return s.B
	case ScoreC:
		return s.C
	case ScoreD:
		return s.D
	case ScoreN:
		return s.N
	default:
		return 0
	}
}

// With returns a copy of s with field f set to v, clamped to the field bounds.
func (s Scores) With(f ScoreField, v int) Scores {
	v = clamp(v, ScoreMin, f.Max())
	switch f {
	case ScoreA:
		s.A = v
	case ScoreB:
		s.B = v
	case ScoreC:
		s.C = v
	case ScoreD:
		s.D = v
	case ScoreN:
		s.N = v
	}
	return s
}

// Clamp returns a copy of s with every sub-score forced into its bounds.
func (s Scores) Clamp() Scores {
	for _, f := range ScoreFieldsOrdered {
		s = s.With(f, s.Get(f))
	}
	return s
}

// Total is the sum of all five sub-scores.
func (s Scores) Total() int {
	return s.A + s.B + s.C + s.D + s.N
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// Rating is a profile's rating of an item as embedded in a detail payload.
type Rating struct {
	Scores

	// Total is the server-computed sum of the sub-scores.
	Total int `json:"total"`

	// CreatedAt is the time of the last modification.
	CreatedAt time.Time `json:"created_at"`
}

// ProfileRating pairs a profile with its rating of the item.
// Rating is nil when the profile has not rated the item or when the
// caller is not allowed to see it.
type ProfileRating struct {
	// Profile is the profile id encoded as a decimal string.
	Profile string `json:"profile"`

	Rating *Rating `json:"rating"`
}

// ItemDetail is the payload of GET /items/{id}/detail.
type ItemDetail struct {
	// Item carries the item metadata.
	Item Item `json:"item"`

	// CanViewOthers reports whether the caller may see the other profiles'
	// ratings. It is only valid for this response.
	CanViewOthers bool `json:"can_view_others"`

	// RatingsByProfile lists one entry per profile.
	RatingsByProfile []ProfileRating `json:"ratings_by_profile"`

	// MyRating is the caller's own rating, or nil.
	MyRating *Rating `json:"my_rating"`
}
