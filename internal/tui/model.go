package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/controller"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

// rootModel adapts the controller to bubbletea. It keeps only
// presentation state: cursors, text inputs and overlays.
type rootModel struct {
	ctx       context.Context
	ctrl      *controller.Controller
	buildInfo models.AppBuildInfo
	noticeTTL time.Duration

	now      func() time.Time
	copyText func(string) error
	// exec turns a controller command into a bubbletea command.
	exec func(controller.Cmd) tea.Cmd

	spinner  spinner.Model
	pinInput textinput.Model
	form     itemForm
	confirm  confirmModel

	profileIdx int
	itemIdx    int
	rankIdx    int

	showBuildInfo bool
	status        string
	lastNotice    uint64
}

func newRootModel(ctx context.Context, ctrl *controller.Controller, buildInfo models.AppBuildInfo, noticeTTL time.Duration) rootModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	pin := textinput.New()
	pin.Placeholder = "code"
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '•'
	pin.CharLimit = 16
	pin.Width = 16

	return rootModel{
		ctx:       ctx,
		ctrl:      ctrl,
		buildInfo: buildInfo,
		noticeTTL: noticeTTL,
		now:       time.Now,
		copyText:  clipboard.WriteAll,
		exec: func(cmd controller.Cmd) tea.Cmd {
			return func() tea.Msg {
				return resultMsg{result: cmd(ctx)}
			}
		},
		spinner:   s,
		pinInput:  pin,
		form:      newItemForm(),
	}
}

func (m rootModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.confirm.active() {
			return m.updateConfirm(msg)
		}

		switch m.ctrl.State().View {
		case controller.ViewLogin:
			return m.updateLogin(msg)
		case controller.ViewItems:
			return m.updateItems(msg)
		case controller.ViewDetail:
			return m.updateDetail(msg)
		case controller.ViewRankings:
			return m.updateRankings(msg)
		}
		return m, nil

	case resultMsg:
		next := m.ctrl.Apply(m.ctx, msg.result)
		cmd := m.afterController(next)
		return m, cmd

	case noticeExpiredMsg:
		m.ctrl.Dispatch(m.ctx, controller.DismissNotice(msg.seq))
		return m, nil

	case copiedMsg:
		m.status = app.MsgCodeCopied
		if msg.err != nil {
			m.status = app.MsgClipboardError
		}
		return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.State().Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// cursor blink and other input housekeeping
	var cmd tea.Cmd
	if m.form.active {
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	m.pinInput, cmd = m.pinInput.Update(msg)
	return m, cmd
}

// dispatch sends in to the controller and schedules what it returns.
func (m rootModel) dispatch(in controller.Intent) (rootModel, tea.Cmd) {
	next := m.ctrl.Dispatch(m.ctx, in)
	cmd := m.afterController(next)
	return m, cmd
}

// afterController runs next off the event loop and arms the dismissal
// timer of a freshly raised notice.
func (m *rootModel) afterController(next controller.Cmd) tea.Cmd {
	var cmds []tea.Cmd
	if next != nil {
		cmds = append(cmds, m.exec(next), m.spinner.Tick)
	}

	if n := m.ctrl.State().Notice; n != nil && n.Seq != m.lastNotice {
		m.lastNotice = n.Seq
		seq := n.Seq
		cmds = append(cmds, tea.Tick(m.noticeTTL, func(time.Time) tea.Msg {
			return noticeExpiredMsg{seq: seq}
		}))
	}

	return tea.Batch(cmds...)
}

func (m rootModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		itemID := m.confirm.itemID
		m.confirm = confirmModel{}
		return m.dispatch(controller.DeleteItem(itemID))
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m rootModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	st := m.ctrl.State()

	var page string
	switch st.View {
	case controller.ViewLogin:
		page = renderLogin(st, m.profileIdx, m.pinInput.View())
	case controller.ViewItems:
		page = renderItems(st, m.itemIdx, m.form)
	case controller.ViewDetail:
		page = renderDetail(st, m.now())
	case controller.ViewRankings:
		page = renderRankings(st, m.rankIdx)
	}

	if m.confirm.active() {
		page += "\n\n" + m.confirm.View()
	}

	footer := renderFooter(st, m.spinner.View(), m.status)
	if footer != "" {
		page += "\n\n" + footer
	}
	return appStyle.Render(page)
}

func renderFooter(st controller.State, spin, status string) string {
	var parts []string
	if st.Busy() {
		parts = append(parts, spin)
	}
	if n := renderNotice(st.Notice); n != "" {
		parts = append(parts, n)
	}
	if status != "" {
		parts = append(parts, infoStyle.Render(status))
	}

	return strings.Join(parts, "  ")
}
