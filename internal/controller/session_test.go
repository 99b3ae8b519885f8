package controller

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/testutil"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_UnauthenticatedFromAnyViewReturnsToLogin(t *testing.T) {
	tests := []struct {
		name string
		// setup brings the controller to the view under test
		setup func(h *harness, itemID string)
		// trigger is the intent whose API call gets rejected
		trigger func(itemID string) Intent
	}{
		{
			name:    "items refresh",
			setup:   func(*harness, string) {},
			trigger: func(string) Intent { return Refresh() },
		},
		{
			name:    "open detail",
			setup:   func(*harness, string) {},
			trigger: OpenItem,
		},
		{
			name: "submit rating",
			setup: func(h *harness, itemID string) {
				h.do(OpenItem(itemID))
				h.do(SetScore(models.ScoreA, 3))
			},
			trigger: func(string) Intent { return SubmitRating() },
		},
		{
			name:    "create item",
			setup:   func(*harness, string) {},
			trigger: func(string) Intent { return CreateItem("NEW", "") },
		},
		{
			name:    "open rankings",
			setup:   func(*harness, string) {},
			trigger: func(string) Intent { return OpenRankings() },
		},
		{
			name:    "toggle rankings mode",
			setup:   func(h *harness, _ string) { h.do(OpenRankings()) },
			trigger: func(string) Intent { return ToggleRankingMode() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			item := h.api.AddItem("A1", "")
			h.loginCached(2)
			tt.setup(h, item.ID)

			h.api.RevokeTokens()
			h.do(tt.trigger(item.ID))

			st := h.c.State()
			assert.Equal(t, ViewLogin, st.View)
			assert.Equal(t, LoginUnselected, st.Login.Phase)
			assert.True(t, st.Session.IsZero())
			assert.Empty(t, h.adapter.Token())
			assert.Equal(t, app.MsgSessionExpired, h.notice())
			assert.Nil(t, st.Detail)
			assert.Empty(t, st.Items)
		})
	}
}

func TestController_SessionExpiryKeepsRankingsMode(t *testing.T) {
	h := newHarness(t)
	h.loginCached(1)
	h.do(OpenRankings())
	h.do(ToggleRankingMode())
	assert.Equal(t, models.RankingModeGlobal, h.c.State().RankingsMode)

	h.api.RevokeTokens()
	h.do(Back())

	assert.Equal(t, ViewLogin, h.c.State().View)
	assert.Equal(t, models.RankingModeGlobal, h.c.State().RankingsMode)
}

func TestController_RejectionFromPreviousSessionIgnored(t *testing.T) {
	h := newHarness(t)
	h.loginCached(1)

	h.api.FailWith(testutil.RouteRankings, http.StatusUnauthorized, "INVALID_TOKEN")
	cmd := h.c.Dispatch(h.ctx, OpenRankings())
	require.NotNil(t, cmd)
	res := cmd(h.ctx)
	h.api.Reset()

	h.do(Back())
	h.do(Logout())
	h.loginCached(2)
	h.drain(h.c.Apply(h.ctx, res))

	st := h.c.State()
	assert.Equal(t, ViewItems, st.View)
	assert.Equal(t, 2, st.Session.ProfileID)
	assert.NotEmpty(t, h.adapter.Token())
	assert.NotEqual(t, app.MsgSessionExpired, h.notice())
	assert.False(t, st.Busy())
}

func TestController_RejectionFromCurrentSessionExpires(t *testing.T) {
	h := newHarness(t)
	h.loginCached(1)

	h.api.FailWith(testutil.RouteRankings, http.StatusUnauthorized, "INVALID_TOKEN")
	cmd := h.c.Dispatch(h.ctx, OpenRankings())
	require.NotNil(t, cmd)
	res := cmd(h.ctx)

	h.drain(h.c.Apply(h.ctx, res))

	assert.Equal(t, ViewLogin, h.c.State().View)
	assert.Equal(t, app.MsgSessionExpired, h.notice())
}

func TestController_NoticeDismissal(t *testing.T) {
	h := newHarness(t)
	h.do(SelectProfile(1))
	h.do(SubmitCode("0000"))
	first := h.c.State().Notice
	assert.NotNil(t, first)

	h.do(SubmitCode("1111"))
	second := h.c.State().Notice
	assert.NotNil(t, second)
	assert.Greater(t, second.Seq, first.Seq)

	// an expired timer of the first notice must not hide the second
	h.do(DismissNotice(first.Seq))
	assert.Equal(t, second, h.c.State().Notice)

	h.do(DismissNotice(second.Seq))
	assert.Nil(t, h.c.State().Notice)
}

func TestController_IntentsOutsideTheirViewAreIgnored(t *testing.T) {
	h := newHarness(t)

	for _, in := range []Intent{
		OpenItem("x"),
		CreateItem("X", ""),
		SubmitRating(),
		OpenRankings(),
		ToggleRankingMode(),
		Logout(),
		Refresh(),
	} {
		assert.Nil(t, h.c.Dispatch(h.ctx, in), in.Kind.String())
	}
	assert.Equal(t, ViewLogin, h.c.State().View)
	assert.Equal(t, 0, h.api.TotalCalls())
}

func TestController_InFlightCounter(t *testing.T) {
	h := newHarness(t)
	h.loginCached(1)
	assert.False(t, h.c.State().Busy())

	cmd := h.c.Dispatch(h.ctx, OpenRankings())
	assert.True(t, h.c.State().Busy())

	h.drain(cmd)
	assert.False(t, h.c.State().Busy())
}
