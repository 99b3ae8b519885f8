package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/rate-keeper/internal/app"
	"github.com/MKhiriev/rate-keeper/internal/controller"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// itemForm collects the code and name of a new item.
type itemForm struct {
	active bool
	focus  int
	code   textinput.Model
	name   textinput.Model
}

func newItemForm() itemForm {
	code := textinput.New()
	code.Placeholder = "required"
	code.CharLimit = 32
	code.Width = 32

	name := textinput.New()
	name.Placeholder = "optional"
	name.CharLimit = 128
	name.Width = 40

	return itemForm{code: code, name: name}
}

func (f itemForm) open() (itemForm, tea.Cmd) {
	f = newItemForm()
	f.active = true
	return f, f.code.Focus()
}

func (f itemForm) switchFocus() (itemForm, tea.Cmd) {
	f.focus = 1 - f.focus
	if f.focus == 0 {
		f.name.Blur()
		return f, f.code.Focus()
	}
	f.code.Blur()
	return f, f.name.Focus()
}

func (f itemForm) update(msg tea.Msg) (itemForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.code, cmd = f.code.Update(msg)
	} else {
		f.name, cmd = f.name.Update(msg)
	}
	return f, cmd
}

func (f itemForm) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("New item"))
	b.WriteString("\n")
	b.WriteString("Code: ")
	b.WriteString(f.code.View())
	b.WriteString("\n")
	b.WriteString("Name: ")
	b.WriteString(f.name.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab switch  enter create  esc cancel"))
	return b.String()
}

func (m rootModel) updateItems(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form.active {
		var cmd tea.Cmd
		switch {
		case key.Matches(msg, keys.esc):
			m.form = newItemForm()
			return m, nil
		case key.Matches(msg, keys.tab):
			m.form, cmd = m.form.switchFocus()
			return m, cmd
		case key.Matches(msg, keys.enter):
			code, name := m.form.code.Value(), m.form.name.Value()
			m.form = newItemForm()
			return m.dispatch(controller.CreateItem(code, name))
		}
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}

	st := m.ctrl.State()
	m.itemIdx = clampIndex(m.itemIdx, len(st.Items))

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.itemIdx = clampIndex(m.itemIdx-1, len(st.Items))
	case key.Matches(msg, keys.down):
		m.itemIdx = clampIndex(m.itemIdx+1, len(st.Items))
	case key.Matches(msg, keys.enter):
		if len(st.Items) > 0 {
			return m.dispatch(controller.OpenItem(st.Items[m.itemIdx].ID))
		}
	case key.Matches(msg, keys.newItem):
		var cmd tea.Cmd
		m.form, cmd = m.form.open()
		return m, cmd
	case key.Matches(msg, keys.delete):
		if len(st.Items) > 0 {
			item := st.Items[m.itemIdx]
			m.confirm = confirmModel{itemID: item.ID, label: item.Code}
		}
	case key.Matches(msg, keys.rankings):
		m.rankIdx = 0
		return m.dispatch(controller.OpenRankings())
	case key.Matches(msg, keys.refresh):
		return m.dispatch(controller.Refresh())
	case key.Matches(msg, keys.logout):
		m.itemIdx, m.profileIdx = 0, 0
		return m.dispatch(controller.Logout())
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	}
	return m, nil
}

func renderItems(st controller.State, itemIdx int, form itemForm) string {
	var b strings.Builder

	switch {
	case !st.ItemsLoaded:
		b.WriteString(mutedStyle.Render("Loading..."))
		b.WriteString("\n")
	case len(st.Items) == 0:
		b.WriteString(app.MsgNoItems)
		b.WriteString("\n")
	default:
		idx := clampIndex(itemIdx, len(st.Items))
		for i, item := range st.Items {
			best := emptyValue
			if v, ok := st.Summary.BestTotal(item.ID); ok {
				best = formatValue(v)
			}
			line := fmt.Sprintf("%s%-12s %-28s %6s", cursorMark(i == idx), fitText(item.Code, 12), fitText(item.Name, 28), best)
			if i == idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if form.active {
		b.WriteString("\n")
		b.WriteString(form.View())
		b.WriteString("\n")
	}

	return renderPage(
		"ITEMS · "+sessionLabel(st),
		b.String(),
		"enter open  n new  d delete  r rankings  ctrl+r refresh  l logout  v about  q quit",
	)
}

// sessionLabel names the signed-in profile, with the token subject when
// the token carries one.
func sessionLabel(st controller.State) string {
	label := fmt.Sprintf("P%d", st.Session.ProfileID)
	if sub := st.Session.Subject(); sub != "" && sub != fmt.Sprint(st.Session.ProfileID) {
		label += " (" + sub + ")"
	}
	return label
}
