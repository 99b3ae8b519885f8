package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/adapter"
	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/config"
	"github.com/MKhiriev/rate-keeper/internal/controller"
	"github.com/MKhiriev/rate-keeper/internal/logger"
	"github.com/MKhiriev/rate-keeper/internal/mock"
	"github.com/MKhiriev/rate-keeper/internal/service"
	"github.com/MKhiriev/rate-keeper/internal/store"
	"github.com/MKhiriev/rate-keeper/internal/testutil"
	"github.com/MKhiriev/rate-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// modelHarness drives the root model with key presses. Controller commands
// are queued instead of being handed to bubbletea and run synchronously by
// settle, so timers never fire.
type modelHarness struct {
	t       *testing.T
	ctx     context.Context
	api     *testutil.FakeAPI
	m       rootModel
	queue   []controller.Cmd
	lastCmd tea.Cmd
	copied  []string
}

func newModelHarness(t *testing.T) *modelHarness {
	t.Helper()

	api := testutil.NewFakeAPI(t)
	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    api.URL(),
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	tokens := mock.NewMockLocalTokenRepository(gomock.NewController(t))
	tokens.EXPECT().GetToken(gomock.Any(), gomock.Any()).Return("", store.ErrTokenNotFound).AnyTimes()
	tokens.EXPECT().SaveToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	services := service.NewClientServices(tokens, serverAdapter, logger.Nop())
	ctrl := controller.New(services, logger.Nop())

	h := &modelHarness{t: t, ctx: context.Background(), api: api}
	h.m = newRootModel(h.ctx, ctrl, models.NewAppBuildInfo("1.4.0", "2026-10-01", "abc1234"), time.Hour)
	h.m.exec = func(cmd controller.Cmd) tea.Cmd {
		h.queue = append(h.queue, cmd)
		return nil
	}
	h.m.copyText = func(s string) error {
		h.copied = append(h.copied, s)
		return nil
	}
	return h
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (h *modelHarness) send(msg tea.Msg) {
	h.t.Helper()
	next, cmd := h.m.Update(msg)
	h.m = next.(rootModel)
	h.lastCmd = cmd
	h.settle()
}

func (h *modelHarness) press(keys ...string) {
	h.t.Helper()
	for _, k := range keys {
		h.send(keyPress(k))
	}
}

func (h *modelHarness) settle() {
	for len(h.queue) > 0 {
		cmd := h.queue[0]
		h.queue = h.queue[1:]
		next, _ := h.m.Update(resultMsg{result: cmd(h.ctx)})
		h.m = next.(rootModel)
	}
}

func (h *modelHarness) state() controller.State {
	return h.m.ctrl.State()
}

// loginAs picks the profile from the list and types its entry code.
func (h *modelHarness) loginAs(profileID int) {
	h.t.Helper()
	p, ok := models.LookupProfile(profileID)
	require.True(h.t, ok)

	h.press(string(rune('0'+profileID)), p.EntryCode, "enter")
	require.Equal(h.t, controller.ViewItems, h.state().View)
}

func TestModel_LoginWithListSelection(t *testing.T) {
	h := newModelHarness(t)

	assert.Contains(t, h.m.View(), "Choose a profile")

	h.press("down", "up", "enter")
	assert.Equal(t, controller.LoginPendingCode, h.state().Login.Phase)
	assert.Equal(t, 1, h.state().Login.ProfileID)
	assert.Contains(t, h.m.View(), "Profile P1")

	h.press("3221", "enter")

	assert.Equal(t, controller.ViewItems, h.state().View)
	assert.Equal(t, 1, h.api.Calls(testutil.RouteAuthPin))
	assert.Contains(t, h.m.View(), "ITEMS · P1")
}

func TestModel_WrongCodeShowsNotice(t *testing.T) {
	h := newModelHarness(t)

	h.press("3", "0000", "enter")

	assert.Equal(t, controller.ViewLogin, h.state().View)
	assert.Zero(t, h.api.TotalCalls())
	assert.Contains(t, h.m.View(), app.MsgIncorrectCode)
	assert.Empty(t, h.m.pinInput.Value())

	n := h.state().Notice
	require.NotNil(t, n)
	h.send(noticeExpiredMsg{seq: n.Seq})
	assert.Nil(t, h.state().Notice)
	assert.NotContains(t, h.m.View(), app.MsgIncorrectCode)
}

func TestModel_EscReturnsToProfileList(t *testing.T) {
	h := newModelHarness(t)

	h.press("2", "69")
	h.press("esc")

	assert.Equal(t, controller.LoginUnselected, h.state().Login.Phase)
	assert.Empty(t, h.m.pinInput.Value())
	assert.Contains(t, h.m.View(), "Choose a profile")
}

func TestModel_ItemsListShowsBestTotals(t *testing.T) {
	h := newModelHarness(t)
	rated := h.api.AddItem("A1", "Alpha")
	h.api.AddItem("B2", "Beta")
	h.api.SetRating(rated.ID, 1, models.Scores{A: 5, B: 5, C: 5, D: 5, N: 1})

	h.loginAs(1)

	view := h.m.View()
	assert.Contains(t, view, "A1")
	assert.Contains(t, view, "21.0")
	assert.Contains(t, view, "B2")
	assert.Contains(t, view, emptyValue)
}

func TestModel_CreateItemOpensDetail(t *testing.T) {
	h := newModelHarness(t)
	h.loginAs(2)

	h.press("n")
	require.True(t, h.m.form.active)
	assert.Contains(t, h.m.View(), "New item")

	h.press("Z9", "tab", "Zeta", "enter")

	assert.False(t, h.m.form.active)
	assert.Equal(t, controller.ViewDetail, h.state().View)
	require.Len(t, h.api.Items(), 1)
	assert.Equal(t, "Z9", h.api.Items()[0].Code)
	assert.Equal(t, "Zeta", h.api.Items()[0].Name)
	assert.Contains(t, h.m.View(), "Z9")
}

func TestModel_RateItemFromKeys(t *testing.T) {
	h := newModelHarness(t)
	item := h.api.AddItem("A1", "Alpha")
	h.loginAs(1)

	h.press("enter")
	require.Equal(t, controller.ViewDetail, h.state().View)
	assert.Contains(t, h.m.View(), app.MsgRateToSeeOthers)

	h.press("9", "down", "right", "right", "down", "down", "down", "7", "enter")

	r, ok := h.api.Rating(item.ID, 1)
	require.True(t, ok)
	assert.Equal(t, models.Scores{A: 9, B: 2, N: 2}, r.Scores)
	assert.Contains(t, h.m.View(), app.MsgSaved)
	assert.NotContains(t, h.m.View(), app.MsgRateToSeeOthers)
}

func TestModel_CopyCode(t *testing.T) {
	h := newModelHarness(t)
	h.api.AddItem("A1", "Alpha")
	h.loginAs(1)
	h.press("enter")

	h.press("c")
	require.NotNil(t, h.lastCmd)
	h.send(h.lastCmd())

	assert.Equal(t, []string{"A1"}, h.copied)
	assert.Contains(t, h.m.View(), app.MsgCodeCopied)

	h.send(clearStatusMsg{})
	assert.NotContains(t, h.m.View(), app.MsgCodeCopied)
}

func TestModel_CopyCodeWithoutClipboard(t *testing.T) {
	h := newModelHarness(t)
	h.api.AddItem("A1", "Alpha")
	h.m.copyText = func(string) error { return errors.New("no clipboard utility") }
	h.loginAs(1)
	h.press("enter")

	h.press("c")
	require.NotNil(t, h.lastCmd)
	h.send(h.lastCmd())

	assert.Contains(t, h.m.View(), app.MsgClipboardError)
}

func TestModel_DeleteNeedsConfirmation(t *testing.T) {
	h := newModelHarness(t)
	h.api.AddItem("A1", "Alpha")
	h.loginAs(1)

	h.press("d")
	assert.Contains(t, h.m.View(), `Delete "A1"?`)
	h.press("n")
	assert.False(t, h.m.confirm.active())
	assert.Len(t, h.api.Items(), 1)

	h.press("d", "y")
	assert.Empty(t, h.api.Items())
	assert.Contains(t, h.m.View(), app.MsgItemDeleted)
	assert.Contains(t, h.m.View(), app.MsgNoItems)
}

func TestModel_Rankings(t *testing.T) {
	h := newModelHarness(t)
	item := h.api.AddItem("A1", "Alpha")
	h.api.SetRating(item.ID, 1, models.Scores{A: 4, B: 4, C: 4, D: 4, N: 2})
	h.api.SetRating(item.ID, 2, models.Scores{A: 2, B: 2, C: 2, D: 2, N: 0})
	h.loginAs(1)

	h.press("r")
	view := h.m.View()
	assert.Contains(t, view, "RANKINGS")
	assert.Contains(t, view, "[mine]")
	assert.Contains(t, view, "Top TOTAL")
	assert.Contains(t, view, "18.0")

	h.press("m")
	assert.Equal(t, models.RankingModeGlobal, h.state().RankingsMode)
	view = h.m.View()
	assert.Contains(t, view, "[global]")
	assert.Contains(t, view, "13.0")

	h.press("enter")
	assert.Equal(t, controller.ViewDetail, h.state().View)
	assert.Equal(t, item.ID, h.state().DetailItemID)

	h.press("esc")
	assert.Equal(t, controller.ViewItems, h.state().View)
}

func TestModel_LogoutResetsCursors(t *testing.T) {
	h := newModelHarness(t)
	h.api.AddItem("A1", "Alpha")
	h.api.AddItem("B2", "Beta")
	h.loginAs(1)

	h.press("down")
	assert.Equal(t, 1, h.m.itemIdx)

	h.press("l")
	assert.Equal(t, controller.ViewLogin, h.state().View)
	assert.Zero(t, h.m.itemIdx)
	assert.True(t, h.state().Session.IsZero())
}

func TestModel_BuildInfoOverlay(t *testing.T) {
	h := newModelHarness(t)

	h.press("v")
	view := h.m.View()
	assert.Contains(t, view, "rate-keeper")
	assert.Contains(t, view, "1.4.0")
	assert.Contains(t, view, "abc1234")

	// keys are swallowed by the overlay
	h.press("1")
	assert.Equal(t, controller.LoginUnselected, h.state().Login.Phase)

	h.press("esc")
	assert.False(t, h.m.showBuildInfo)
	assert.Contains(t, h.m.View(), "Choose a profile")
}

func TestModel_CtrlCQuits(t *testing.T) {
	h := newModelHarness(t)

	h.press("ctrl+c")
	require.NotNil(t, h.lastCmd)
	_, ok := h.lastCmd().(tea.QuitMsg)
	assert.True(t, ok)
}
