// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package controller

import (
	"context"
	"errors"
	"slices"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/internal/service"
)

// Cmd is deferred network work. It must not touch controller state.
type Cmd func(ctx context.Context) Result

// Result is the outcome of a [Cmd], applied with [Controller.Apply].
type Result interface {
	failure() error
}

type intentHandler struct {
	// views lists where the intent is accepted; empty means everywhere.
	views []View
	fn    func(ctx context.Context, in Intent) Cmd
}

type Controller struct {
	state    State
	services *service.ClientServices
	handlers map[IntentKind]intentHandler
	noticeID uint64
	// epoch changes whenever a session starts or ends.
	epoch uint64

	logger *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *Controller {
	c := &Controller{
		state:    initialState(),
		services: services,
		logger:   logger.Component("controller"),
	}

	c.handlers = map[IntentKind]intentHandler{
		IntentSelectProfile:     {views: []View{ViewLogin}, fn: c.selectProfile},
		IntentSubmitCode:        {views: []View{ViewLogin}, fn: c.submitCode},
		IntentCancel:            {views: []View{ViewLogin}, fn: c.cancelLogin},
		IntentOpenItem:          {views: []View{ViewItems}, fn: c.openItem},
		IntentCreateItem:        {views: []View{ViewItems}, fn: c.createItem},
		IntentDeleteItem:        {views: []View{ViewItems}, fn: c.deleteItem},
		IntentBack:              {views: []View{ViewLogin, ViewDetail, ViewRankings}, fn: c.back},
		IntentOpenRankings:      {views: []View{ViewItems}, fn: c.openRankings},
		IntentToggleRankingMode: {views: []View{ViewRankings}, fn: c.toggleRankingMode},
		IntentOpenRankingEntry:  {views: []View{ViewRankings}, fn: c.openItem},
		IntentSelectScore:       {views: []View{ViewDetail}, fn: c.selectScore},
		IntentMoveCursor:        {views: []View{ViewDetail}, fn: c.moveCursor},
		IntentAdjustScore:       {views: []View{ViewDetail}, fn: c.adjustScore},
		IntentSetScore:          {views: []View{ViewDetail}, fn: c.setScore},
		IntentSubmitRating:      {views: []View{ViewDetail}, fn: c.submitRating},
		IntentRefresh:           {views: []View{ViewItems, ViewDetail, ViewRankings}, fn: c.refresh},
		IntentLogout:            {views: []View{ViewItems}, fn: c.logout},
		IntentDismissNotice:     {fn: c.dismissNotice},
	}

	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// Dispatch routes in to its handler. Intents not accepted on the current
// view are ignored. The returned Cmd, if any, must be run and its Result
// passed to [Controller.Apply].
func (c *Controller) Dispatch(ctx context.Context, in Intent) Cmd {
	h, ok := c.handlers[in.Kind]
	if !ok {
		c.logger.Warn().Int("intent", int(in.Kind)).Msg("no handler for intent")
		return nil
	}
	if len(h.views) > 0 && !slices.Contains(h.views, c.state.View) {
		c.logger.Debug().
			Stringer("intent", in.Kind).
			Stringer("view", c.state.View).
			Msg("intent ignored in current view")
		return nil
	}

	return c.track(h.fn(ctx, in))
}

// Apply folds the result of a finished Cmd into the state and may return a
// follow-up Cmd. It must run on the same goroutine as Dispatch.
func (c *Controller) Apply(ctx context.Context, r Result) Cmd {
	if c.state.InFlight > 0 {
		c.state.InFlight--
	}
	if r == nil {
		return nil
	}

	if sr, ok := r.(scopedResult); ok {
		r = sr.Result
		// login results carry their own staleness checks
		if _, isLogin := r.(loginResult); !isLogin && sr.epoch != c.epoch {
			c.logger.Debug().Type("result", r).Err(r.failure()).Msg("stale result from previous session discarded")
			return nil
		}
	}

	// login failures are reported by the login flow itself
	if _, isLogin := r.(loginResult); !isLogin && errors.Is(r.failure(), adapter.ErrUnauthenticated) {
		c.logger.Warn().Err(r.failure()).Msg("session rejected by server")
		c.expireSession()
		return nil
	}

	var next Cmd
	switch res := r.(type) {
	case loginResult:
		next = c.applyLogin(ctx, res)
	case itemsResult:
		c.applyItems(res)
	case detailResult:
		c.applyDetail(res)
	case createResult:
		next = c.applyCreate(res)
	case deleteResult:
		next = c.applyDelete(res)
	case ratingResult:
		next = c.applyRating(res)
	case rankingsResult:
		c.applyRankings(res)
	default:
		c.logger.Warn().Type("result", r).Msg("unexpected result")
	}

	return c.track(next)
}

// track counts cmd as in flight and stamps its result with the current epoch.
func (c *Controller) track(cmd Cmd) Cmd {
	if cmd == nil {
		return nil
	}
	c.state.InFlight++

	epoch := c.epoch
	return func(ctx context.Context) Result {
		r := cmd(ctx)
		if r == nil {
			return nil
		}
		return scopedResult{Result: r, epoch: epoch}
	}
}

func (c *Controller) notify(kind NoticeKind, text string) {
	c.noticeID++
	c.state.Notice = &Notice{Seq: c.noticeID, Kind: kind, Text: text}
}

func (c *Controller) notifyError(err error, fallback string) {
	c.notify(NoticeError, errorText(err, fallback))
}

// errorText picks the notice text for a failed call.
func errorText(err error, fallback string) string {
	if errors.Is(err, adapter.ErrUnavailable) {
		return app.MsgServerUnavailable
	}
	if detail := adapter.Detail(err); detail != "" {
		return detail
	}
	return fallback
}

func (c *Controller) dismissNotice(_ context.Context, in Intent) Cmd {
	if c.state.Notice != nil && c.state.Notice.Seq == in.Seq {
		c.state.Notice = nil
	}
	return nil
}

// expireSession drops the session and returns to profile selection.
func (c *Controller) expireSession() {
	c.epoch++
	c.services.AuthService.Deactivate()
	c.resetToLogin()
	c.notify(NoticeError, app.MsgSessionExpired)
}

func (c *Controller) resetToLogin() {
	mode := c.state.RankingsMode
	inFlight := c.state.InFlight
	notice := c.state.Notice

	c.state = initialState()
	c.state.RankingsMode = mode
	c.state.InFlight = inFlight
	c.state.Notice = notice
}

func (c *Controller) refresh(_ context.Context, _ Intent) Cmd {
	switch c.state.View {
	case ViewItems:
		return c.enterItems()
	case ViewDetail:
		return c.enterDetail(c.state.DetailItemID)
	case ViewRankings:
		return c.fetchRankings()
	}
	return nil
}

func (c *Controller) back(ctx context.Context, in Intent) Cmd {
	switch c.state.View {
	case ViewLogin:
		return c.cancelLogin(ctx, in)
	case ViewDetail, ViewRankings:
		return c.enterItems()
	}
	return nil
}
