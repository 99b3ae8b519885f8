// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"github.com/MKhiriev/rate-keeper/models"
)

// View identifies the screen the controller is on.
type View int

const (
	ViewLogin View = iota
	ViewItems
	ViewDetail
	ViewRankings
)

func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewItems:
		return "items"
	case ViewDetail:
		return "detail"
	case ViewRankings:
		return "rankings"
	default:
		return "unknown"
	}
}

// LoginPhase is the step of the login flow.
type LoginPhase int

const (
	// LoginUnselected waits for a profile to be picked.
	LoginUnselected LoginPhase = iota
	// LoginPendingCode waits for the entry code of the picked profile.
	LoginPendingCode
)

type LoginState struct {
	Phase     LoginPhase
	ProfileID int
	// Code is the last submitted entry code. Cancel clears it.
	Code string
	// Exchanging is true while the PIN exchange call is in flight.
	Exchanging bool
}

// NoticeKind selects how a notice is styled.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeError
)

// Notice is a transient message. Seq identifies it for dismissal.
type Notice struct {
	Seq  uint64
	Kind NoticeKind
	Text string
}

// State is everything the renderer needs to draw the client.
type State struct {
	View  View
	Login LoginState

	// Session is the active session. Zero outside the authenticated views.
	Session models.Session

	Items       []models.Item
	ItemsLoaded bool
	Summary     models.Summary

	DetailItemID string
	// Detail is nil until the detail of DetailItemID is loaded, and stays
	// nil when loading failed.
	Detail *models.ItemDetail
	Editor Editor

	RankingsMode   models.RankingMode
	Rankings       []RankingSection
	RankingsLoaded bool

	Notice *Notice

	// InFlight counts commands handed out but not yet applied.
	InFlight int
}

// Busy reports whether any command is still running.
func (s State) Busy() bool {
	return s.InFlight > 0
}

func initialState() State {
	return State{
		View:         ViewLogin,
		RankingsMode: models.RankingModeMine,
		Summary:      models.Summary{},
	}
}
