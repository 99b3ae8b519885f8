package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/rate-keeper/internal/controller"
	"github.com/MKhiriev/rate-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m rootModel) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.ctrl.State()

	if st.Login.Phase == controller.LoginUnselected {
		profiles := models.Profiles()
		switch {
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
			return m, nil
		case key.Matches(msg, keys.up):
			m.profileIdx = clampIndex(m.profileIdx-1, len(profiles))
			return m, nil
		case key.Matches(msg, keys.down):
			m.profileIdx = clampIndex(m.profileIdx+1, len(profiles))
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.selectProfile(profiles[clampIndex(m.profileIdx, len(profiles))].ID)
		}

		if id, err := strconv.Atoi(msg.String()); err == nil {
			if _, ok := models.LookupProfile(id); ok {
				m.profileIdx = id - 1
				return m.selectProfile(id)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.pinInput.Reset()
		m.pinInput.Blur()
		return m.dispatch(controller.Cancel())
	case key.Matches(msg, keys.enter):
		code := m.pinInput.Value()
		m.pinInput.Reset()
		return m.dispatch(controller.SubmitCode(code))
	}

	var cmd tea.Cmd
	m.pinInput, cmd = m.pinInput.Update(msg)
	return m, cmd
}

func (m rootModel) selectProfile(profileID int) (tea.Model, tea.Cmd) {
	m.pinInput.Reset()
	focus := m.pinInput.Focus()

	m, cmd := m.dispatch(controller.SelectProfile(profileID))
	return m, tea.Batch(focus, cmd)
}

func renderLogin(st controller.State, profileIdx int, pinView string) string {
	var b strings.Builder

	if st.Login.Phase == controller.LoginUnselected {
		b.WriteString("Choose a profile\n\n")
		for i, p := range models.Profiles() {
			line := cursorMark(i == profileIdx) + p.Label()
			if i == profileIdx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		return renderPage("RATE KEEPER", b.String(), "↑/↓ move  enter select  1-4 quick pick  v about  q quit")
	}

	profile, _ := models.LookupProfile(st.Login.ProfileID)
	fmt.Fprintf(&b, "Profile %s\n\n", profile.Label())
	b.WriteString("Entry code: ")
	b.WriteString(pinView)
	if st.Login.Exchanging {
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("signing in..."))
	}

	return renderPage("RATE KEEPER", b.String(), "enter sign in  esc back")
}
